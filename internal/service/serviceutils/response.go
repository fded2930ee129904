package serviceutils

import (
	"github.com/labstack/echo/v4"
)

// GenericResponse is the envelope for every JSON endpoint.
type GenericResponse struct {
	Success bool
	Message string
	Data    interface{}
	Error   string
}

func ResponseSuccess(c echo.Context, code int, msg string, data interface{}) error {
	return c.JSON(code, GenericResponse{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func ResponseError(c echo.Context, code int, msg string, err error) error {
	resp := GenericResponse{
		Success: false,
		Message: msg,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(code, resp)
}
