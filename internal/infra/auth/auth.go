// Package auth provides concrete implementations of the TokenVerifier domain service.
package auth

import (
	"context"
	"log/slog"

	"allserve/config"
	"allserve/internal/domain/constants"
	"allserve/internal/domain/service"
	"allserve/internal/errors"
	"allserve/internal/infra/firebaseapp"

	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the TokenVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Firebase firebaseapp.Loader
	Logger   *slog.Logger
}

// NewTokenVerifier creates the TokenVerifier selected by auth.provider
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	cfg := params.Config.Auth

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		app, err := params.Firebase()
		if err != nil {
			return nil, err
		}
		client, err := app.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firebase Auth client")
		}
		params.Logger.Info("Verifying bearer tokens with Firebase Authentication")

		return NewFirebaseVerifier(client), nil

	case constants.AuthProviderJWT:
		params.Logger.Warn("Verifying bearer tokens with a shared HS256 secret, use for development only")

		return NewJWTVerifier(cfg.JWTSecret)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenVerifier),
)
