package exportconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumnsIncludeExcludeOrder(t *testing.T) {
	all := []string{"a", "b", "c", "d"}

	t.Run("IncludeThenOrder", func(t *testing.T) {
		cols := ResolveColumns(all, nil, DisplayOptions{
			IncludeColumns: []string{"b", "d"},
			ColumnOrder:    []string{"d", "b"},
		})
		require.Len(t, cols, 2)
		assert.Equal(t, "d", cols[0].OriginalName)
		assert.Equal(t, "b", cols[1].OriginalName)
	})

	t.Run("IncludePreservesOriginalOrder", func(t *testing.T) {
		cols := ResolveColumns(all, nil, DisplayOptions{
			IncludeColumns: []string{"d", "a"},
		})
		require.Len(t, cols, 2)
		assert.Equal(t, "a", cols[0].OriginalName)
		assert.Equal(t, "d", cols[1].OriginalName)
	})

	t.Run("Exclude", func(t *testing.T) {
		cols := ResolveColumns(all, nil, DisplayOptions{
			ExcludeColumns: []string{"c"},
		})
		require.Len(t, cols, 3)
		assert.Equal(t, "a", cols[0].OriginalName)
		assert.Equal(t, "b", cols[1].OriginalName)
		assert.Equal(t, "d", cols[2].OriginalName)
	})

	t.Run("OrderLeftoversKeepRelativeOrder", func(t *testing.T) {
		cols := ResolveColumns(all, nil, DisplayOptions{
			ColumnOrder: []string{"c"},
		})
		require.Len(t, cols, 4)
		assert.Equal(t, "c", cols[0].OriginalName)
		assert.Equal(t, "a", cols[1].OriginalName)
		assert.Equal(t, "b", cols[2].OriginalName)
		assert.Equal(t, "d", cols[3].OriginalName)
	})

	t.Run("FilteredNamesInOrderAreIgnored", func(t *testing.T) {
		cols := ResolveColumns(all, nil, DisplayOptions{
			IncludeColumns: []string{"a", "b"},
			ColumnOrder:    []string{"d", "b", "missing"},
		})
		require.Len(t, cols, 2)
		assert.Equal(t, "b", cols[0].OriginalName)
		assert.Equal(t, "a", cols[1].OriginalName)
	})
}

func TestResolveColumnsIdempotent(t *testing.T) {
	all := []string{"symbol", "last_price", "listed_on"}
	rows := []map[string]interface{}{
		{"symbol": "HDFC", "last_price": 1680.4, "listed_on": "2001-03-12"},
	}
	opts := DisplayOptions{ColumnOrder: []string{"last_price"}}

	first := ResolveColumns(all, rows, opts)
	second := ResolveColumns(all, rows, opts)
	assert.Equal(t, first, second)
}

func TestResolveColumnsTypeDetection(t *testing.T) {
	all := []string{"symbol", "last_price", "listed_on", "employees", "member_id"}
	rows := []map[string]interface{}{
		{
			"symbol":     "ITC",
			"last_price": 445.1,
			"listed_on":  "1996-08-26",
			"employees":  int64(23000),
			"member_id":  int64(77),
		},
	}

	cols := ResolveColumns(all, rows, DisplayOptions{})
	require.Len(t, cols, 5)

	byName := make(map[string]ColumnDescriptor)
	for _, c := range cols {
		byName[c.OriginalName] = c
	}

	assert.Equal(t, StyleDefault, byName["symbol"].Style)
	assert.Equal(t, StyleCurrency, byName["last_price"].Style)
	assert.True(t, byName["last_price"].IsValueColumn)
	assert.Equal(t, StyleDate, byName["listed_on"].Style)
	assert.Equal(t, StyleCountGrouped, byName["employees"].Style)
	assert.False(t, byName["employees"].IsValueColumn)
	// "id" in the name keeps numeric identifiers unformatted.
	assert.Equal(t, StyleDefault, byName["member_id"].Style)
}

func TestResolveColumnsNoRows(t *testing.T) {
	cols := ResolveColumns([]string{"remarks"}, nil, DisplayOptions{})
	require.Len(t, cols, 1)
	assert.Equal(t, StyleDefault, cols[0].Style)
	assert.Equal(t, "Remarks", cols[0].DisplayName)
}

func TestResolveColumnsEmptyInput(t *testing.T) {
	assert.Empty(t, ResolveColumns(nil, nil, DisplayOptions{}))
}
