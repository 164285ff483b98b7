// Package handler holds the echo handlers of the API server.
package handler

import (
	"net/http"

	deliverycontext "allserve/internal/delivery/context"
	domainerrors "allserve/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// callerUID returns the authenticated caller, or an unauthenticated error.
func callerUID(c echo.Context) (string, error) {
	uid := deliverycontext.CallerUIDFromContext(c.Request().Context())
	if uid == "" {
		return "", domainerrors.ErrUnauthenticated
	}

	return uid, nil
}

// bindAndValidate decodes the JSON body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewInvalidArgument("Malformed request body")
	}

	return c.Validate(req)
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
