package exportconfig

// Number format patterns handed to the rendering layer. Percentages from the
// SQL layer are already scaled (12.5 means 12.5%), so the pattern quotes the
// percent sign instead of using the multiplying % token.
const (
	fmtCurrency = "#,##0.00"
	fmtInteger  = "#,##0"
	fmtGrouped  = "#,##0.00"
	fmtPercent  = `0.00"%"`
	fmtDecimal  = "0.00"
	fmtDate     = "dd-mm-yyyy"
)

const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// CellFormat describes the presentation of a single cell.
type CellFormat struct {
	NumberFormat string
	Alignment    string
}

// FormatCell decides number format and alignment for one cell. A nil value is
// rendered as empty text whatever the declared style, so it gets no numeric
// pattern.
func FormatCell(style FormatStyle, value interface{}) CellFormat {
	if value == nil {
		return CellFormat{Alignment: AlignLeft}
	}
	switch style {
	case StyleCurrency:
		return CellFormat{NumberFormat: fmtCurrency, Alignment: AlignRight}
	case StylePercentage:
		return CellFormat{NumberFormat: fmtPercent, Alignment: AlignRight}
	case StyleCountGrouped:
		if isIntegral(value) {
			return CellFormat{NumberFormat: fmtInteger, Alignment: AlignRight}
		}
		return CellFormat{NumberFormat: fmtGrouped, Alignment: AlignRight}
	case StyleDate:
		return CellFormat{NumberFormat: fmtDate, Alignment: AlignLeft}
	case StyleDecimal:
		return CellFormat{NumberFormat: fmtDecimal, Alignment: AlignRight}
	default:
		return CellFormat{Alignment: AlignLeft}
	}
}
