// Package sheetwriter renders an export configuration plus row data into an
// xlsx workbook. It owns all excelize interaction; the configuration engine
// stays free of rendering concerns.
package sheetwriter

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/locvo/sqlexport/pkg/exportconfig"
)

const (
	defaultColWidth = 20.0
	headerFillColor = "BBDEFB"
	titleFillColor  = "1976D2"
	titleFontColor  = "FFFFFF"
	fallbackSheet   = "Sheet1"
	titleRow        = 1
	headerRow       = 2
	firstDataRow    = 3
)

// Writer builds workbooks from (config, rows) pairs. It caches style IDs and
// column names per instance; a Writer is not safe for concurrent use, create
// one per request or guard it.
type Writer struct {
	styleCache   map[string]int
	colNameCache map[int]string
}

func New() *Writer {
	return &Writer{
		styleCache:   make(map[string]int),
		colNameCache: make(map[int]string),
	}
}

// Build renders the workbook: a merged title row, a styled header row, then
// one row per data row with per-cell number formats from the cell formatter.
func (w *Writer) Build(cfg exportconfig.ExportConfig, rows []map[string]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = fallbackSheet
	} else {
		f.SetSheetName(fallbackSheet, sheet)
	}

	if len(cfg.Columns) == 0 {
		return f, nil
	}

	if err := w.writeTitle(f, sheet, cfg); err != nil {
		return nil, err
	}
	if err := w.writeHeader(f, sheet, cfg.Columns); err != nil {
		return nil, err
	}

	for i, row := range rows {
		rowNum := firstDataRow + i
		for j, col := range cfg.Columns {
			cell := w.cellAddress(j+1, rowNum)
			val := row[col.OriginalName]
			cf := exportconfig.FormatCell(col.Style, val)
			styleID, err := w.dataStyle(f, cf)
			if err != nil {
				return nil, fmt.Errorf("data style for %s: %w", col.OriginalName, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return nil, err
			}
			if val == nil {
				continue
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("cell %s: %w", cell, err)
			}
		}
	}

	// Keep title and header visible while scrolling.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: w.cellAddress(1, firstDataRow),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	return f, nil
}

// ToBytes renders the workbook into an in-memory byte slice.
func (w *Writer) ToBytes(cfg exportconfig.ExportConfig, rows []map[string]interface{}) ([]byte, error) {
	f, err := w.Build(cfg, rows)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *Writer) writeTitle(f *excelize.File, sheet string, cfg exportconfig.ExportConfig) error {
	start := w.cellAddress(1, titleRow)
	if err := f.SetCellValue(sheet, start, cfg.TitleName); err != nil {
		return err
	}
	styleID, err := w.createStyle(f, styleSpec{
		bold:      true,
		fontColor: titleFontColor,
		fillColor: titleFillColor,
		align:     "center",
	})
	if err != nil {
		return err
	}
	if len(cfg.Columns) > 1 {
		end := w.cellAddress(len(cfg.Columns), titleRow)
		if err := f.MergeCell(sheet, start, end); err != nil {
			return err
		}
		return f.SetCellStyle(sheet, start, end, styleID)
	}
	return f.SetCellStyle(sheet, start, start, styleID)
}

func (w *Writer) writeHeader(f *excelize.File, sheet string, cols []exportconfig.ColumnDescriptor) error {
	styleID, err := w.createStyle(f, styleSpec{
		bold:      true,
		fillColor: headerFillColor,
		align:     "center",
	})
	if err != nil {
		return err
	}
	for i, col := range cols {
		cell := w.cellAddress(i+1, headerRow)
		if err := f.SetCellValue(sheet, cell, col.DisplayName); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return err
		}
		name := w.colName(i + 1)
		if err := f.SetColWidth(sheet, name, name, defaultColWidth); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) dataStyle(f *excelize.File, cf exportconfig.CellFormat) (int, error) {
	return w.createStyle(f, styleSpec{
		align:  cf.Alignment,
		numFmt: cf.NumberFormat,
	})
}

// styleSpec is the cacheable subset of excelize styling this writer uses.
type styleSpec struct {
	bold      bool
	fontColor string
	fillColor string
	align     string
	numFmt    string
}

func (s styleSpec) key() string {
	return fmt.Sprintf("b:%v|fc:%s|fl:%s|a:%s|n:%s", s.bold, s.fontColor, s.fillColor, s.align, s.numFmt)
}

func (w *Writer) createStyle(f *excelize.File, spec styleSpec) (int, error) {
	key := spec.key()
	if id, ok := w.styleCache[key]; ok {
		return id, nil
	}

	style := &excelize.Style{}
	if spec.bold || spec.fontColor != "" {
		style.Font = &excelize.Font{Bold: spec.bold, Color: spec.fontColor}
	}
	if spec.fillColor != "" {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{spec.fillColor}, Pattern: 1}
	}
	if spec.align != "" {
		style.Alignment = &excelize.Alignment{Horizontal: spec.align, Vertical: "center"}
	}
	if spec.numFmt != "" {
		numFmt := spec.numFmt
		style.CustomNumFmt = &numFmt
	}

	id, err := f.NewStyle(style)
	if err == nil {
		w.styleCache[key] = id
	}
	return id, err
}

func (w *Writer) colName(col int) string {
	if name, ok := w.colNameCache[col]; ok {
		return name
	}
	name, _ := excelize.ColumnNumberToName(col)
	w.colNameCache[col] = name
	return name
}

func (w *Writer) cellAddress(col, row int) string {
	return fmt.Sprintf("%s%d", w.colName(col), row)
}
