// Package response renders handler results.
package response

import (
	"net/http"

	domainerrors "allserve/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success is the `{success}` body of operations that return nothing else
type Success struct {
	Success bool `json:"success"`
}

// OK writes data as the JSON body of a 200 response
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Done writes `{"success": true}`
func Done(c echo.Context) error {
	return OK(c, Success{Success: true})
}

// PlainError writes the `{error}` body used by plain HTTP endpoints
func PlainError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.PlainErrorResponse{Error: message})
}
