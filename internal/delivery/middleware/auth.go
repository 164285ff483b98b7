package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "allserve/internal/delivery/context"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token of callable requests into the caller uid
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.TokenVerifier
	Logger   *slog.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Authenticate stores the verified uid in the request context.
// Requests without a token continue anonymously and every callable operation
// rejects them; a malformed or invalid token is rejected here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || token == "" {
			return domainerrors.ErrUnauthenticated
		}

		ctx := c.Request().Context()
		uid, err := m.verifier.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		ctx = deliverycontext.WithCallerUID(ctx, uid)
		ctx = deliverycontext.WithLogger(ctx, deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("caller_uid", uid)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
