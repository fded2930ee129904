package exportconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCell(t *testing.T) {
	t.Run("Currency", func(t *testing.T) {
		cf := FormatCell(StyleCurrency, 1499.5)
		assert.Equal(t, "#,##0.00", cf.NumberFormat)
		assert.Equal(t, AlignRight, cf.Alignment)
	})

	t.Run("Percentage", func(t *testing.T) {
		cf := FormatCell(StylePercentage, 12.5)
		assert.Equal(t, `0.00"%"`, cf.NumberFormat)
		assert.Equal(t, AlignRight, cf.Alignment)
	})

	t.Run("CountIntegerValue", func(t *testing.T) {
		cf := FormatCell(StyleCountGrouped, int64(120000))
		assert.Equal(t, "#,##0", cf.NumberFormat)
		assert.Equal(t, AlignRight, cf.Alignment)
	})

	t.Run("CountFractionalValue", func(t *testing.T) {
		cf := FormatCell(StyleCountGrouped, 120000.75)
		assert.Equal(t, "#,##0.00", cf.NumberFormat)
	})

	t.Run("CountWholeFloatIsInteger", func(t *testing.T) {
		cf := FormatCell(StyleCountGrouped, 42.0)
		assert.Equal(t, "#,##0", cf.NumberFormat)
	})

	t.Run("Date", func(t *testing.T) {
		cf := FormatCell(StyleDate, "2024-02-01")
		assert.Equal(t, "dd-mm-yyyy", cf.NumberFormat)
		assert.Equal(t, AlignLeft, cf.Alignment)
	})

	t.Run("Decimal", func(t *testing.T) {
		cf := FormatCell(StyleDecimal, 1.85)
		assert.Equal(t, "0.00", cf.NumberFormat)
	})

	t.Run("TextAndDefault", func(t *testing.T) {
		for _, style := range []FormatStyle{StyleText, StyleDefault} {
			cf := FormatCell(style, "hello")
			assert.Empty(t, cf.NumberFormat)
			assert.Equal(t, AlignLeft, cf.Alignment)
		}
	})
}

// A nil value renders as empty text for every style: no pattern, no panic.
func TestFormatCellNilValue(t *testing.T) {
	styles := []FormatStyle{
		StyleDefault, StyleCurrency, StyleCountGrouped,
		StylePercentage, StyleDecimal, StyleDate, StyleText,
	}
	for _, style := range styles {
		cf := FormatCell(style, nil)
		assert.Empty(t, cf.NumberFormat, style.String())
		assert.Equal(t, AlignLeft, cf.Alignment, style.String())
	}
}
