package serviceutils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvo/sqlexport/internal/service/serviceutils"
)

func TestResponseSuccess(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, serviceutils.ResponseSuccess(c, http.StatusOK, "done", map[string]int{"rows": 3}))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body serviceutils.GenericResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "done", body.Message)
	assert.Empty(t, body.Error)
}

func TestResponseError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, serviceutils.ResponseError(c, http.StatusNotFound, "unknown query", errors.New("no such query")))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body serviceutils.GenericResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "unknown query", body.Message)
	assert.Equal(t, "no such query", body.Error)
}

func TestResponseErrorNilError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, serviceutils.ResponseError(c, http.StatusInternalServerError, "query failed", nil))

	var body serviceutils.GenericResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Empty(t, body.Error)
}
