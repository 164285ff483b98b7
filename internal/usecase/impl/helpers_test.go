package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"allserve/config"
	"allserve/internal/domain/entity"
	"allserve/internal/infra/persistence/memory"
	mockUsecase "allserve/internal/mocks/usecase"

	"github.com/stretchr/testify/mock"
)

const (
	customerUID = "customer-1"
	ownerUID    = "owner-1"
	adminUID    = "admin-1"
	providerID  = "provider-1"
	serviceID   = "svc-plumbing"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Notification: &config.NotificationConfig{
			Mode:        "inline",
			Timeout:     time.Second,
			ErrorBuffer: 4,
		},
		Search: &config.SearchConfig{
			DefaultRadiusKm: 10,
			MaxRadiusKm:     50,
			MaxResults:      20,
		},
	}
}

// newSeededStore holds one bookable provider owned by ownerUID, a customer and an admin.
func newSeededStore() *memory.Store {
	store := memory.NewStore()
	store.PutUser(&entity.UserProfile{ID: customerUID, Role: entity.RoleCustomer, DeviceTokens: []string{"customer-token"}})
	store.PutUser(&entity.UserProfile{ID: ownerUID, Role: entity.RoleProvider, DeviceTokens: []string{"owner-token"}})
	store.PutUser(&entity.UserProfile{ID: adminUID, Role: entity.RoleAdmin})
	store.PutProvider(&entity.Provider{
		ID:                 providerID,
		OwnerUID:           ownerUID,
		Name:               "Quick Fix Plumbing",
		CategoryID:         "plumbing",
		Status:             entity.ProviderStatusActive,
		Verified:           true,
		VerificationStatus: entity.VerificationApproved,
		Services:           []entity.ProviderService{{ServiceID: serviceID, Name: "Pipe repair", Price: 80}},
	})

	return store
}

// newAcceptingDispatcher expects any number of dispatches.
func newAcceptingDispatcher(t *testing.T) *mockUsecase.MockDispatcher {
	dispatcher := mockUsecase.NewMockDispatcher(t)
	dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return().Maybe()

	return dispatcher
}
