// Package persistence selects the document store backend and exposes its repositories to the application.
package persistence

import (
	"context"
	"log/slog"

	"allserve/config"
	"allserve/internal/domain/constants"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
	"allserve/internal/infra/firebaseapp"
	"allserve/internal/infra/persistence/firestoredb"
	"allserve/internal/infra/persistence/memory"

	"go.uber.org/fx"
)

// Params holds dependencies for the store, injected by Fx
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Firebase firebaseapp.Loader
	Logger   *slog.Logger
}

// Repositories are the repositories of one store backend, provided to Fx as separate values.
type Repositories struct {
	fx.Out

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	ProviderRepo     repository.ProviderRepository
	BookingRepo      repository.BookingRepository
	ReviewRepo       repository.ReviewRepository
	AnnouncementRepo repository.AnnouncementRepository
	AuditLogRepo     repository.AuditLogRepository
}

// New builds the repositories of the backend selected by store.driver.
func New(params Params) (Repositories, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger.With(slog.String("store", driver))

	switch driver {
	case constants.StoreDriverFirestore:
		app, err := params.Firebase()
		if err != nil {
			return Repositories{}, err
		}
		client, err := firestoredb.NewClient(params.Ctx, params.Lc, app, logger)
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using Firestore document store")

		return Repositories{
			TxManager:        firestoredb.NewTransactionManager(client),
			UserRepo:         firestoredb.NewUserRepository(client),
			ProviderRepo:     firestoredb.NewProviderRepository(client),
			BookingRepo:      firestoredb.NewBookingRepository(client),
			ReviewRepo:       firestoredb.NewReviewRepository(client),
			AnnouncementRepo: firestoredb.NewAnnouncementRepository(client),
			AuditLogRepo:     firestoredb.NewAuditLogRepository(client),
		}, nil

	case constants.StoreDriverMemory:
		logger.Warn("Using in-memory document store, data is lost on restart")
		store := memory.NewStore()
		if path := params.Config.Store.SeedPath; path != "" {
			seed, err := memory.LoadSeed(store, path)
			if err != nil {
				return Repositories{}, err
			}
			logger.Info("Seeded in-memory document store", slog.String("path", path), slog.Int("documents", seed.Len()))
		}

		return NewMemoryRepositories(store), nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// NewMemoryRepositories wires every repository to one in-memory store.
func NewMemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		TxManager:        memory.NewTransactionManager(store),
		UserRepo:         memory.NewUserRepository(store),
		ProviderRepo:     memory.NewProviderRepository(store),
		BookingRepo:      memory.NewBookingRepository(store),
		ReviewRepo:       memory.NewReviewRepository(store),
		AnnouncementRepo: memory.NewAnnouncementRepository(store),
		AuditLogRepo:     memory.NewAuditLogRepository(store),
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
