package exportconfig

import "strings"

// =============================================================================
// Constants & Types
// =============================================================================

const (
	// DisplayMarker is the trailing tag on a column alias that marks the column
	// for export. Matching is case-sensitive: the SQL conventions in the queries
	// directory spell it exactly like this.
	DisplayMarker = "_Display"

	// ReservedTotalKey carries the window total-row-count in each row. It is
	// bookkeeping for pagination and is never exported as a column.
	ReservedTotalKey = "total_count"

	// SheetNameLimit is the hard cap on worksheet names in the xlsx format.
	SheetNameLimit = 31
)

// FormatStyle is the semantic rendering type of a column. Exactly one style
// applies per column.
type FormatStyle int

const (
	StyleDefault FormatStyle = iota
	StyleCurrency
	StyleCountGrouped
	StylePercentage
	StyleDecimal
	StyleDate
	StyleText
)

func (s FormatStyle) String() string {
	switch s {
	case StyleCurrency:
		return "currency"
	case StyleCountGrouped:
		return "count"
	case StylePercentage:
		return "percentage"
	case StyleDecimal:
		return "decimal"
	case StyleDate:
		return "date"
	case StyleText:
		return "text"
	default:
		return "default"
	}
}

// ColumnDescriptor is the resolved view of one result-set column.
type ColumnDescriptor struct {
	OriginalName  string      `json:"original_name"`
	DisplayName   string      `json:"display_name"`
	Style         FormatStyle `json:"style"`
	IsValueColumn bool        `json:"is_value_column"`
}

// ExportConfig is the full presentation plan for one export request. It is
// rebuilt from a sample row on every request and never persisted.
type ExportConfig struct {
	TitleName       string
	SheetName       string
	Columns         []ColumnDescriptor
	HighlightStyles map[string]FormatStyle
}

// ConfigFor assembles an ExportConfig around an already-resolved column list.
// The sheet name is the title truncated to the xlsx limit; truncation is
// policy, not an error.
func ConfigFor(title string, cols []ColumnDescriptor) ExportConfig {
	highlights := make(map[string]FormatStyle)
	for _, col := range cols {
		if col.Style != StyleDefault {
			highlights[col.OriginalName] = col.Style
		}
	}
	return ExportConfig{
		TitleName:       title,
		SheetName:       TruncateSheetName(title),
		Columns:         cols,
		HighlightStyles: highlights,
	}
}

// TruncateSheetName enforces the worksheet name limit. The limit counts
// characters, so truncation works on runes to never split a multibyte one.
func TruncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) > SheetNameLimit {
		return string(runes[:SheetNameLimit])
	}
	return name
}

// SnakeToTitle converts a snake_case identifier to a spaced title,
// e.g. "top_gainers_by_market_cap" -> "Top Gainers By Market Cap".
func SnakeToTitle(s string) string {
	return joinTitleTokens(strings.Split(s, "_"))
}

func joinTitleTokens(tokens []string) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(tok[:1])+strings.ToLower(tok[1:]))
	}
	return strings.Join(parts, " ")
}
