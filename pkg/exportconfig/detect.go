package exportconfig

import "strings"

// keywordGroup binds a format style to the name substrings that imply it.
type keywordGroup struct {
	style    FormatStyle
	keywords []string
}

// The group order is load-bearing: the first matching group wins, so a name
// containing both "price" and "percent" resolves to currency. Keep these as
// ordered slices, never a map.
var nameGroups = []keywordGroup{
	{StyleCurrency, []string{"price", "amount", "ltp", "close", "mcap", "market_cap"}},
	{StyleCountGrouped, []string{"volume", "quantity", "count", "qty"}},
	{StylePercentage, []string{"percent", "pct", "return", "change", "growth"}},
	{StyleDecimal, []string{"ratio", "pe", "pb", "debt"}},
}

// richGroups extends the base table for the value-aware detector.
var richGroups = []keywordGroup{
	{StyleCurrency, []string{"price", "amount", "ltp", "close", "mcap", "market_cap", "revenue", "cost"}},
	{StyleCountGrouped, []string{"volume", "quantity", "count", "qty"}},
	{StylePercentage, []string{"percent", "pct", "return", "change", "growth", "rate"}},
	{StyleDecimal, []string{"ratio", "pe", "pb", "debt"}},
}

func matchGroups(groups []keywordGroup, name string) (FormatStyle, bool) {
	lower := strings.ToLower(name)
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.style, true
			}
		}
	}
	return StyleDefault, false
}

// DetectByName guesses a format style from a column name alone. The second
// return is false when no keyword group matches; the caller keeps the default
// style in that case.
func DetectByName(name string) (FormatStyle, bool) {
	return matchGroups(nameGroups, name)
}

// DetectWithValue is the richer detector: the keyword table is extended with
// revenue/cost and rate, and when no keyword matches, the sample value's
// runtime shape is consulted. A date-shaped value yields StyleDate; a numeric
// value yields plain grouped-number formatting unless the name contains "id"
// (identifiers stay unformatted even when numeric).
func DetectWithValue(name string, sample interface{}) (FormatStyle, bool) {
	if style, ok := matchGroups(richGroups, name); ok {
		return style, true
	}
	if isDateLike(sample) {
		return StyleDate, true
	}
	if IsNumericLike(sample) && !strings.Contains(strings.ToLower(name), "id") {
		return StyleCountGrouped, true
	}
	return StyleDefault, false
}
