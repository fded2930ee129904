package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/locvo/sqlexport/internal/domain"
	"github.com/locvo/sqlexport/internal/logger"
	"github.com/locvo/sqlexport/pkg/exportconfig"
	"github.com/locvo/sqlexport/pkg/sheetwriter"
)

// ExportFile is a rendered spreadsheet ready for download.
type ExportFile struct {
	Filename string
	Content  []byte
}

type ExportService interface {
	// Queries lists the registered definitions in registration order.
	Queries() []domain.QueryDefinition
	// RunJSON executes a query and returns the raw result set.
	RunJSON(ctx context.Context, name string, params map[string]string) (*domain.ResultSet, error)
	// ExportExcel renders a spreadsheet on the naming-convention path: the
	// export configuration is derived from the sample row.
	ExportExcel(ctx context.Context, name string, params map[string]string) (*ExportFile, error)
	// ExportExcelConfigured renders a spreadsheet on the caller-configured
	// path: the sidecar display options, optionally overridden per request,
	// drive column selection and ordering.
	ExportExcelConfigured(ctx context.Context, name string, params map[string]string, override *exportconfig.DisplayOptions) (*ExportFile, error)
}

type exportService struct {
	repo domain.QueryRepository
	defs map[string]domain.QueryDefinition
	list []domain.QueryDefinition
}

func NewExportService(repo domain.QueryRepository, defs []domain.QueryDefinition) ExportService {
	byName := make(map[string]domain.QueryDefinition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}
	return &exportService{repo: repo, defs: byName, list: defs}
}

func (s *exportService) Queries() []domain.QueryDefinition {
	return s.list
}

func (s *exportService) RunJSON(ctx context.Context, name string, params map[string]string) (*domain.ResultSet, error) {
	_, rs, err := s.run(ctx, name, params)
	return rs, err
}

func (s *exportService) ExportExcel(ctx context.Context, name string, params map[string]string) (*ExportFile, error) {
	def, rs, err := s.run(ctx, name, params)
	if err != nil {
		return nil, err
	}
	if len(rs.Rows) == 0 {
		return nil, domain.ErrNoData
	}

	cfg := exportconfig.BuildConfig(rs.Columns, rs.Rows[0], def.Name)
	logger.DebugLog(ctx, "export %s: %d columns, %d rows", def.Name, len(cfg.Columns), len(rs.Rows))

	return s.render(cfg, rs.Rows, def.Name)
}

func (s *exportService) ExportExcelConfigured(ctx context.Context, name string, params map[string]string, override *exportconfig.DisplayOptions) (*ExportFile, error) {
	def, rs, err := s.run(ctx, name, params)
	if err != nil {
		return nil, err
	}
	if len(rs.Rows) == 0 {
		return nil, domain.ErrNoData
	}

	opts := mergeDisplay(def.Display, override)
	title := opts.Title
	if title == "" {
		title = exportconfig.SnakeToTitle(def.Name)
	}

	cols := exportconfig.ResolveColumns(rs.Columns, rs.Rows, opts)
	cfg := exportconfig.ConfigFor(title, cols)

	return s.render(cfg, rs.Rows, def.Name)
}

func (s *exportService) run(ctx context.Context, name string, params map[string]string) (domain.QueryDefinition, *domain.ResultSet, error) {
	def, ok := s.defs[name]
	if !ok {
		return domain.QueryDefinition{}, nil, fmt.Errorf("%w: %s", domain.ErrUnknownQuery, name)
	}

	args := make([]interface{}, 0, len(def.Params))
	for _, p := range def.Params {
		v, ok := params[p]
		if !ok {
			return def, nil, fmt.Errorf("%w: %s requires %q", domain.ErrMissingParam, name, p)
		}
		args = append(args, v)
	}

	rs, err := s.repo.Run(ctx, def, args)
	if err != nil {
		return def, nil, err
	}
	return def, rs, nil
}

func (s *exportService) render(cfg exportconfig.ExportConfig, rows []map[string]interface{}, name string) (*ExportFile, error) {
	content, err := sheetwriter.New().ToBytes(cfg, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return &ExportFile{
		Filename: fmt.Sprintf("%s_%s.xlsx", name, uuid.NewString()[:8]),
		Content:  content,
	}, nil
}

// mergeDisplay layers a per-request override over the sidecar defaults.
// Only non-empty override fields replace their base counterpart.
func mergeDisplay(base, override *exportconfig.DisplayOptions) exportconfig.DisplayOptions {
	var opts exportconfig.DisplayOptions
	if base != nil {
		opts = *base
	}
	if override == nil {
		return opts
	}
	if override.Title != "" {
		opts.Title = override.Title
	}
	if len(override.IncludeColumns) > 0 {
		opts.IncludeColumns = override.IncludeColumns
	}
	if len(override.ExcludeColumns) > 0 {
		opts.ExcludeColumns = override.ExcludeColumns
	}
	if len(override.ColumnOrder) > 0 {
		opts.ColumnOrder = override.ColumnOrder
	}
	return opts
}
