package domain

import (
	"context"
	"errors"

	"github.com/locvo/sqlexport/pkg/exportconfig"
)

// ErrNoData is returned when a query produced zero rows: headers cannot be
// derived without a sample row, so the export surfaces a failure instead of
// rendering an empty file.
var ErrNoData = errors.New("query returned no rows")

// ErrUnknownQuery is returned for names not registered at startup.
var ErrUnknownQuery = errors.New("unknown query")

// ErrMissingParam is returned when a request omits a declared parameter.
var ErrMissingParam = errors.New("missing parameter")

// QueryDefinition is one registered query: a .sql file from the queries
// directory plus its optional sidecar configuration.
type QueryDefinition struct {
	Name    string
	SQL     string
	Params  []string
	Display *exportconfig.DisplayOptions
}

// ResultSet is the shape the SQL collaborator hands to the export engine:
// ordered column names, rows as name->value maps, and the total row count
// (taken from the reserved total_count column when present).
type ResultSet struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
	Total   int                      `json:"total"`
}

// QueryRepository runs a registered query with positional arguments.
type QueryRepository interface {
	Run(ctx context.Context, def QueryDefinition, args []interface{}) (*ResultSet, error)
}
