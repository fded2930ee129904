package exportconfig

import "strings"

// Suffix keywords understood by the alias grammar. The keyword is the last
// underscore token before the display marker, matched case-insensitively.
const (
	aliasCurrency = "curr"
	aliasCount    = "num"
	aliasPercent  = "pct"
	aliasDecimal  = "dec"
)

// ParseAlias resolves one marker-suffixed column name into a descriptor.
// "Market_Cap_Curr_Display" -> header "Market Cap", currency, value column.
// Unknown suffix keywords are not errors: the name falls through to the
// keyword heuristic and may end up with the default style.
func ParseAlias(name string) ColumnDescriptor {
	stripped := strings.TrimSuffix(name, DisplayMarker)
	tokens := strings.Split(stripped, "_")

	desc := ColumnDescriptor{OriginalName: name}

	last := strings.ToLower(tokens[len(tokens)-1])
	switch last {
	case aliasCurrency:
		desc.Style = StyleCurrency
		desc.IsValueColumn = true
		tokens = tokens[:len(tokens)-1]
	case aliasCount:
		desc.Style = StyleCountGrouped
		tokens = tokens[:len(tokens)-1]
	case aliasPercent:
		desc.Style = StylePercentage
		desc.IsValueColumn = true
		tokens = tokens[:len(tokens)-1]
	case aliasDecimal:
		desc.Style = StyleDecimal
		tokens = tokens[:len(tokens)-1]
	default:
		if style, ok := DetectByName(stripped); ok {
			desc.Style = style
			desc.IsValueColumn = style == StylePercentage
		}
	}

	desc.DisplayName = joinTitleTokens(tokens)
	return desc
}
