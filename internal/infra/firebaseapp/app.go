// Package firebaseapp bootstraps the Firebase Admin SDK app shared by
// Firestore, Authentication and Cloud Messaging clients.
package firebaseapp

import (
	"context"
	"log/slog"
	"sync"

	"allserve/config"
	"allserve/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Loader returns the shared Firebase app, initializing it on first call.
// Deployments that use no Firebase backend never trigger initialization.
type Loader func() (*firebase.App, error)

// Params defines the parameters required for the Firebase app
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Loader for the app described by the firebase config section.
// An empty credentials path falls back to application default credentials.
func New(params Params) Loader {
	return sync.OnceValues(func() (*firebase.App, error) {
		cfg := params.Config.Firebase

		var opts []option.ClientOption
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}

		app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize Firebase app")
		}

		params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

		return app, nil
	})
}
