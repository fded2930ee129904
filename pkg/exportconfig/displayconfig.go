package exportconfig

// DisplayOptions is the caller-declared column control used by the configured
// export path. All fields are optional; yaml tags match the query sidecar
// files in the queries directory.
type DisplayOptions struct {
	Title          string   `yaml:"title"`
	IncludeColumns []string `yaml:"include_columns"`
	ExcludeColumns []string `yaml:"exclude_columns"`
	ColumnOrder    []string `yaml:"column_order"`
}

// ResolveColumns transforms the raw column set into the final ordered
// descriptor list for the caller-configured path:
//
//  1. keep only IncludeColumns when non-empty, preserving allColumns order;
//  2. drop ExcludeColumns;
//  3. move ColumnOrder survivors to the front in the given order, appending
//     leftovers in their original relative order; order names filtered out in
//     steps 1-2 are silently ignored;
//  4. build descriptors with snake-to-title headers and the value-aware type
//     detector keyed off the first data row.
//
// The function is pure and idempotent; it never derives styles from the
// display-suffix convention.
func ResolveColumns(allColumns []string, rows []map[string]interface{}, opts DisplayOptions) []ColumnDescriptor {
	surviving := make([]string, 0, len(allColumns))

	include := toSet(opts.IncludeColumns)
	exclude := toSet(opts.ExcludeColumns)
	for _, name := range allColumns {
		if len(include) > 0 && !include[name] {
			continue
		}
		if exclude[name] {
			continue
		}
		surviving = append(surviving, name)
	}

	if len(opts.ColumnOrder) > 0 {
		present := toSet(surviving)
		front := make([]string, 0, len(surviving))
		moved := make(map[string]bool, len(opts.ColumnOrder))
		for _, name := range opts.ColumnOrder {
			if present[name] && !moved[name] {
				front = append(front, name)
				moved[name] = true
			}
		}
		for _, name := range surviving {
			if !moved[name] {
				front = append(front, name)
			}
		}
		surviving = front
	}

	var sample map[string]interface{}
	if len(rows) > 0 {
		sample = rows[0]
	}

	cols := make([]ColumnDescriptor, 0, len(surviving))
	for _, name := range surviving {
		desc := ColumnDescriptor{
			OriginalName: name,
			DisplayName:  SnakeToTitle(name),
		}
		if style, ok := DetectWithValue(name, sample[name]); ok {
			desc.Style = style
			desc.IsValueColumn = style == StyleCurrency || style == StylePercentage
		}
		cols = append(cols, desc)
	}
	return cols
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
