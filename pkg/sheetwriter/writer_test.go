package sheetwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvo/sqlexport/pkg/exportconfig"
)

func sampleConfig() exportconfig.ExportConfig {
	keys := []string{"Company_Name_Display", "Market_Cap_Curr_Display", "Day_Change_Pct_Display"}
	sample := map[string]interface{}{
		"Company_Name_Display":    "Tata Steel",
		"Market_Cap_Curr_Display": 1.5e11,
		"Day_Change_Pct_Display":  1.25,
	}
	return exportconfig.BuildConfig(keys, sample, "top_gainers")
}

func TestWriterBuild(t *testing.T) {
	rows := []map[string]interface{}{
		{"Company_Name_Display": "Tata Steel", "Market_Cap_Curr_Display": 1.5e11, "Day_Change_Pct_Display": 1.25},
		{"Company_Name_Display": "JSW Steel", "Market_Cap_Curr_Display": 9.1e10, "Day_Change_Pct_Display": nil},
	}

	data, err := New().ToBytes(sampleConfig(), rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Top Gainers")

	title, err := f.GetCellValue("Top Gainers", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Top Gainers", title)

	header, err := f.GetCellValue("Top Gainers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Company Name", header)

	header, err = f.GetCellValue("Top Gainers", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Market Cap", header)

	name, err := f.GetCellValue("Top Gainers", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Tata Steel", name)

	// The nil percentage cell renders as empty text.
	empty, err := f.GetCellValue("Top Gainers", "C4")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestWriterEmptyColumnSet(t *testing.T) {
	cfg := exportconfig.ExportConfig{TitleName: "Empty", SheetName: "Empty"}
	data, err := New().ToBytes(cfg, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestWriterLongSheetNameAlreadyTruncated(t *testing.T) {
	cfg := exportconfig.BuildConfig(
		[]string{"remarks"},
		map[string]interface{}{"remarks": "x"},
		"quarterly_sector_wise_institutional_holding_breakdown",
	)
	data, err := New().ToBytes(cfg, []map[string]interface{}{{"remarks": "x"}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Len(t, sheets[0], exportconfig.SheetNameLimit)
}
