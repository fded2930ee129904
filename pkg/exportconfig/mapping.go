package exportconfig

import "strings"

// MappingMode tags which column-resolution strategy produced a mapping.
type MappingMode int

const (
	// ModeConvention: at least one sample-row key carried the display marker,
	// and only marker-suffixed keys were mapped.
	ModeConvention MappingMode = iota
	// ModeFallback: no key carried the marker, so every non-reserved key was
	// mapped with naive snake-to-title headers.
	ModeFallback
)

// ColumnMapping is the tagged result of MapColumns. The two modes are mutually
// exclusive: a mapping never mixes convention and fallback columns.
type ColumnMapping struct {
	Mode    MappingMode
	Columns []ColumnDescriptor
}

// MapColumns derives the descriptor list from one sample row. keys must be the
// column order reported by the SQL layer; Go map iteration is randomized, so
// ordering cannot come from the row itself. The reserved total-count key is
// skipped in both modes.
func MapColumns(keys []string, sample map[string]interface{}) ColumnMapping {
	convention := make([]ColumnDescriptor, 0, len(keys))
	for _, key := range keys {
		if key == ReservedTotalKey {
			continue
		}
		if strings.HasSuffix(key, DisplayMarker) {
			convention = append(convention, ParseAlias(key))
		}
	}
	if len(convention) > 0 {
		return ColumnMapping{Mode: ModeConvention, Columns: convention}
	}

	// Atomic fallback: the convention yielded nothing, so take every column.
	fallback := make([]ColumnDescriptor, 0, len(keys))
	for _, key := range keys {
		if key == ReservedTotalKey {
			continue
		}
		desc := ColumnDescriptor{
			OriginalName:  key,
			DisplayName:   SnakeToTitle(key),
			IsValueColumn: IsNumericLike(sample[key]),
		}
		if style, ok := DetectByName(key); ok {
			desc.Style = style
		}
		fallback = append(fallback, desc)
	}
	return ColumnMapping{Mode: ModeFallback, Columns: fallback}
}

// BuildConfig is the convention-path entry point: it maps the sample row and
// derives the export title and sheet name from the originating query
// identifier. It is total over well-formed inputs; an empty key set yields a
// config with no columns, not an error.
func BuildConfig(keys []string, sample map[string]interface{}, sourceID string) ExportConfig {
	mapping := MapColumns(keys, sample)
	return ConfigFor(SnakeToTitle(sourceID), mapping.Columns)
}
