package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/locvo/sqlexport/internal/domain"
	"github.com/locvo/sqlexport/internal/logger"
	"github.com/locvo/sqlexport/internal/service"
	"github.com/locvo/sqlexport/internal/service/serviceutils"
	"github.com/locvo/sqlexport/pkg/exportconfig"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// controlParams are query-string keys consumed by the configured export route
// itself. They never reach parameter binding.
var controlParams = map[string]bool{
	"title":   true,
	"include": true,
	"exclude": true,
	"order":   true,
}

type ExportHandler struct {
	svc service.ExportService
}

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

type queryInfo struct {
	Name   string   `json:"name"`
	Params []string `json:"params,omitempty"`
	Routes []string `json:"routes"`
}

// ListQueriesHandler reports every registered query and its routes.
func (h *ExportHandler) ListQueriesHandler(c echo.Context) error {
	defs := h.svc.Queries()
	infos := make([]queryInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, queryInfo{
			Name:   def.Name,
			Params: def.Params,
			Routes: []string{
				"/query/" + def.Name,
				"/export/" + def.Name + ".xlsx",
				"/export/v2/" + def.Name + ".xlsx",
			},
		})
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "queries retrieved", infos)
}

// QueryJSONHandler serves one query's result set as JSON. An empty result is
// a success with zero rows, not an error.
func (h *ExportHandler) QueryJSONHandler(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		rs, err := h.svc.RunJSON(c.Request().Context(), name, requestParams(c, false))
		if err != nil {
			return h.errorResponse(c, name, err)
		}
		return serviceutils.ResponseSuccess(c, http.StatusOK, "query executed", rs)
	}
}

// ExportExcelHandler serves the naming-convention spreadsheet for one query.
func (h *ExportHandler) ExportExcelHandler(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		file, err := h.svc.ExportExcel(c.Request().Context(), name, requestParams(c, false))
		if err != nil {
			return h.errorResponse(c, name, err)
		}
		return h.download(c, file)
	}
}

// ExportConfiguredHandler serves the display-configured spreadsheet. The
// title, include, exclude and order query parameters override the sidecar
// defaults; include/exclude/order take comma-separated column names.
func (h *ExportHandler) ExportConfiguredHandler(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		override := &exportconfig.DisplayOptions{
			Title:          c.QueryParam("title"),
			IncludeColumns: splitCSV(c.QueryParam("include")),
			ExcludeColumns: splitCSV(c.QueryParam("exclude")),
			ColumnOrder:    splitCSV(c.QueryParam("order")),
		}
		file, err := h.svc.ExportExcelConfigured(c.Request().Context(), name, requestParams(c, true), override)
		if err != nil {
			return h.errorResponse(c, name, err)
		}
		return h.download(c, file)
	}
}

func (h *ExportHandler) download(c echo.Context, file *service.ExportFile) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", file.Filename))
	c.Response().Header().Set(echo.HeaderContentLength, fmt.Sprintf("%d", len(file.Content)))
	return c.Blob(http.StatusOK, xlsxContentType, file.Content)
}

func (h *ExportHandler) errorResponse(c echo.Context, name string, err error) error {
	logger.ErrorLog(c.Request().Context(), "query %s: %v", name, err)
	switch {
	case errors.Is(err, domain.ErrUnknownQuery):
		return serviceutils.ResponseError(c, http.StatusNotFound, "unknown query", err)
	case errors.Is(err, domain.ErrNoData):
		return serviceutils.ResponseError(c, http.StatusUnprocessableEntity, "no data to export", err)
	case errors.Is(err, domain.ErrMissingParam):
		return serviceutils.ResponseError(c, http.StatusBadRequest, "missing parameter", err)
	default:
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "query failed", err)
	}
}

// requestParams flattens the query string to first values. On the configured
// route the control keys are stripped so they are not mistaken for bind
// parameters.
func requestParams(c echo.Context, stripControl bool) map[string]string {
	params := map[string]string{}
	for key, vals := range c.QueryParams() {
		if stripControl && controlParams[key] {
			continue
		}
		if len(vals) > 0 {
			params[key] = vals[0]
		}
	}
	return params
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
