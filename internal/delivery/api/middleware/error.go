// Package middleware holds the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "allserve/internal/delivery/context"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalMessage = "Internal error, please try again later"

// ErrorMiddleware renders errors in the callable protocol format
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := m.render(err, c)
	body.Meta = &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}
	_ = c.JSON(status, body)
}

func (m *ErrorMiddleware) render(err error, c echo.Context) (int, *domainerrors.CallableErrorResponse) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Kind() != domainerrors.KindInternal {
		callable := &domainerrors.CallableError{
			Status:  appErr.Kind().Status(),
			Message: appErr.Message(),
			Code:    appErr.ErrorCode(),
		}
		if details := appErr.Details(); details != "" {
			callable.Details = details
		}

		return appErr.HTTPCode(), &domainerrors.CallableErrorResponse{Error: callable}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		kind := domainerrors.KindInvalidArgument
		switch httpErr.Code {
		case http.StatusUnauthorized:
			kind = domainerrors.KindUnauthenticated
		case http.StatusForbidden:
			kind = domainerrors.KindPermissionDenied
		case http.StatusNotFound:
			kind = domainerrors.KindNotFound
		}

		return httpErr.Code, &domainerrors.CallableErrorResponse{Error: &domainerrors.CallableError{
			Status:  kind.Status(),
			Message: message,
		}}
	}

	// Internal failures are logged in full and surfaced with a fixed message
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return http.StatusInternalServerError, &domainerrors.CallableErrorResponse{Error: &domainerrors.CallableError{
		Status:  domainerrors.KindInternal.Status(),
		Message: internalMessage,
	}}
}
