package impl

import (
	"context"
	"testing"

	"allserve/internal/domain/entity"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/domain/service"
	"allserve/internal/infra/persistence/memory"
	mockUsecase "allserve/internal/mocks/usecase"
	"allserve/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T, store *memory.Store) (usecase.AdminUsecase, *mockUsecase.MockDispatcher) {
	dispatcher := mockUsecase.NewMockDispatcher(t)

	svc := NewAdminService(AdminServiceParams{
		TxManager:        memory.NewTransactionManager(store),
		UserRepo:         memory.NewUserRepository(store),
		AnnouncementRepo: memory.NewAnnouncementRepository(store),
		Dispatcher:       dispatcher,
		Logger:           newDiscardLogger(),
	})

	return svc, dispatcher
}

func TestAdminService_ApproveProvider_Approve(t *testing.T) {
	store := newSeededStore()
	store.PutProvider(&entity.Provider{ID: "pending-1", OwnerUID: "owner-2", Status: entity.ProviderStatusActive, VerificationStatus: entity.VerificationPending})
	svc, dispatcher := createTestAdminService(t, store)
	ctx := context.Background()

	dispatcher.EXPECT().Dispatch(ctx, mock.MatchedBy(func(e *service.PushEvent) bool {
		return e.UserID == "owner-2" &&
			e.Title == "Account Approved!" &&
			e.Priority == entity.PriorityHigh &&
			e.Data["type"] == entity.NotificationTypeProviderApproved
	})).Return().Once()

	err := svc.ApproveProvider(ctx, adminUID, &usecase.ApproveProviderInput{ProviderID: "pending-1", Approve: true, Notes: "documents ok"})

	require.NoError(t, err)

	provider, err := memory.NewProviderRepository(store).FindProviderByID(ctx, "pending-1")
	require.NoError(t, err)
	assert.True(t, provider.Verified)
	assert.Equal(t, entity.VerificationApproved, provider.VerificationStatus)
	assert.Equal(t, adminUID, provider.VerifiedBy)
	assert.NotNil(t, provider.VerifiedAt)
	assert.Equal(t, "documents ok", provider.AdminNotes)

	logs := store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionApproveProvider, logs[0].Action)
	assert.Equal(t, adminUID, logs[0].ActorUID)
	assert.Equal(t, "pending-1", logs[0].Detail["providerId"])
}

func TestAdminService_ApproveProvider_RejectWithNotes(t *testing.T) {
	store := newSeededStore()
	svc, dispatcher := createTestAdminService(t, store)
	ctx := context.Background()

	dispatcher.EXPECT().Dispatch(ctx, mock.MatchedBy(func(e *service.PushEvent) bool {
		return e.UserID == ownerUID &&
			e.Body == "Your provider verification was not approved. Reason: blurry license" &&
			e.Data["type"] == entity.NotificationTypeProviderRejected
	})).Return().Once()

	err := svc.ApproveProvider(ctx, adminUID, &usecase.ApproveProviderInput{ProviderID: providerID, Approve: false, Notes: "blurry license"})

	require.NoError(t, err)

	provider, err := memory.NewProviderRepository(store).FindProviderByID(ctx, providerID)
	require.NoError(t, err)
	assert.False(t, provider.Verified)
	assert.Equal(t, entity.VerificationRejected, provider.VerificationStatus)

	logs := store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionRejectProvider, logs[0].Action)
}

func TestAdminService_ApproveProvider_Errors(t *testing.T) {
	tests := []struct {
		name     string
		caller   string
		input    usecase.ApproveProviderInput
		wantKind domainerrors.Kind
	}{
		{name: "anonymous", caller: "", input: usecase.ApproveProviderInput{ProviderID: providerID, Approve: true}, wantKind: domainerrors.KindUnauthenticated},
		{name: "not an admin", caller: customerUID, input: usecase.ApproveProviderInput{ProviderID: providerID, Approve: true}, wantKind: domainerrors.KindPermissionDenied},
		{name: "no profile", caller: "nobody", input: usecase.ApproveProviderInput{ProviderID: providerID, Approve: true}, wantKind: domainerrors.KindPermissionDenied},
		{name: "missing provider id", caller: adminUID, input: usecase.ApproveProviderInput{Approve: true}, wantKind: domainerrors.KindInvalidArgument},
		{name: "unknown provider", caller: adminUID, input: usecase.ApproveProviderInput{ProviderID: "ghost", Approve: true}, wantKind: domainerrors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSeededStore()
			svc, _ := createTestAdminService(t, store)

			err := svc.ApproveProvider(context.Background(), tt.caller, &tt.input)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
			assert.Empty(t, store.AuditLogs())
		})
	}
}

func TestAdminService_SendAnnouncement(t *testing.T) {
	store := newSeededStore()
	svc, dispatcher := createTestAdminService(t, store)
	ctx := context.Background()

	dispatcher.EXPECT().Dispatch(ctx, mock.MatchedBy(func(e *service.PushEvent) bool {
		return e.Target == service.PushTargetAudience &&
			e.Audience == entity.AudienceProviders &&
			e.Title == "Maintenance" &&
			e.Data["type"] == entity.NotificationTypeAnnouncement
	})).Return().Once()

	id, err := svc.SendAnnouncement(ctx, adminUID, &usecase.AnnouncementInput{
		Title:    " Maintenance ",
		Message:  "The app is offline Sunday 2am",
		Audience: entity.AudienceProviders,
	})

	require.NoError(t, err)
	require.NotEmpty(t, id)

	announcements := store.Announcements()
	require.Len(t, announcements, 1)
	assert.Equal(t, id, announcements[0].ID)
	assert.Equal(t, "Maintenance", announcements[0].Title)
	assert.Equal(t, adminUID, announcements[0].CreatedBy)
}

func TestAdminService_SendAnnouncement_Errors(t *testing.T) {
	tests := []struct {
		name     string
		caller   string
		input    usecase.AnnouncementInput
		wantKind domainerrors.Kind
	}{
		{name: "not an admin", caller: ownerUID, input: usecase.AnnouncementInput{Title: "t", Message: "m", Audience: entity.AudienceAll}, wantKind: domainerrors.KindPermissionDenied},
		{name: "missing title", caller: adminUID, input: usecase.AnnouncementInput{Message: "m", Audience: entity.AudienceAll}, wantKind: domainerrors.KindInvalidArgument},
		{name: "blank message", caller: adminUID, input: usecase.AnnouncementInput{Title: "t", Message: "  ", Audience: entity.AudienceAll}, wantKind: domainerrors.KindInvalidArgument},
		{name: "unknown audience", caller: adminUID, input: usecase.AnnouncementInput{Title: "t", Message: "m", Audience: "everyone"}, wantKind: domainerrors.KindInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSeededStore()
			svc, _ := createTestAdminService(t, store)

			id, err := svc.SendAnnouncement(context.Background(), tt.caller, &tt.input)

			require.Error(t, err)
			assert.Empty(t, id)
			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
			assert.Empty(t, store.Announcements())
		})
	}
}
