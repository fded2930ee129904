package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/locvo/sqlexport/internal/domain"
	"github.com/locvo/sqlexport/pkg/exportconfig"
)

type queryRepository struct {
	db *sql.DB
}

func NewQueryRepository(db *sql.DB) domain.QueryRepository {
	return &queryRepository{db: db}
}

// Run executes the definition's SQL with positional arguments and materializes
// the result as ordered columns plus name->value row maps. Driver-specific
// byte slices are normalized to strings so downstream formatting sees plain
// scan values.
func (r *queryRepository) Run(ctx context.Context, def domain.QueryDefinition, args []interface{}) (*domain.ResultSet, error) {
	rows, err := r.db.QueryContext(ctx, def.SQL, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s failed: %w", def.Name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query %s columns: %w", def.Name, err)
	}

	rs := &domain.ResultSet{Columns: cols}
	values := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("query %s scan: %w", def.Name, err)
		}
		row := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			row[col] = normalizeValue(values[i])
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s rows: %w", def.Name, err)
	}

	rs.Total = totalOf(rs.Rows)
	return rs, nil
}

// normalizeValue maps driver scan values onto the small set the export engine
// understands. lib/pq hands text columns back as []byte.
func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case []byte:
		return string(t)
	default:
		return v
	}
}

// totalOf prefers the reserved window-count column over the page length.
func totalOf(rows []map[string]interface{}) int {
	if len(rows) == 0 {
		return 0
	}
	if v, ok := rows[0][exportconfig.ReservedTotalKey]; ok {
		switch t := v.(type) {
		case int64:
			return int(t)
		case float64:
			return int(t)
		case string:
			if n, err := strconv.Atoi(t); err == nil {
				return n
			}
		}
	}
	return len(rows)
}
