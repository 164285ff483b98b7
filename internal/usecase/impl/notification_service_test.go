package impl

import (
	"context"
	"fmt"
	"testing"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/service"
	"allserve/internal/errors"
	"allserve/internal/infra/persistence/memory"
	mockSvc "allserve/internal/mocks/service"
	"allserve/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T, store *memory.Store) (usecase.NotificationUsecase, *mockSvc.MockNotificationService) {
	gateway := mockSvc.NewMockNotificationService(t)

	svc := NewNotificationService(NotificationServiceParams{
		UserRepo: memory.NewUserRepository(store),
		Gateway:  gateway,
		Logger:   newDiscardLogger(),
	})

	return svc, gateway
}

func testNotification() *usecase.Notification {
	return &usecase.Notification{
		Title:    "Booking Accepted",
		Body:     "Your booking has been accepted!",
		Data:     map[string]string{"type": entity.NotificationTypeBookingAccepted},
		Priority: entity.PriorityHigh,
	}
}

func TestNotificationService_NotifyUser_PrunesStaleTokens(t *testing.T) {
	store := memory.NewStore()
	store.PutUser(&entity.UserProfile{ID: customerUID, DeviceTokens: []string{"good", "stale"}})
	svc, gateway := createTestNotificationService(t, store)
	ctx := context.Background()

	gateway.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"good", "stale"}, msg.Tokens) &&
				msg.Title == "Booking Accepted" &&
				msg.Priority == entity.PriorityHigh &&
				msg.Data["type"] == entity.NotificationTypeBookingAccepted &&
				msg.Data["timestamp"] != ""
		})).
		Return(&service.BatchResult{SuccessCount: 1, FailureCount: 1, FailedTokens: []string{"stale"}}, nil).
		Once()

	report, err := svc.NotifyUser(ctx, customerUID, testNotification())

	require.NoError(t, err)
	assert.Equal(t, &usecase.DeliveryReport{Requested: 2, Sent: 1, Failed: 1, Pruned: 1}, report)

	profile, err := memory.NewUserRepository(store).FindUserByID(ctx, customerUID)
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, profile.DeviceTokens)
}

func TestNotificationService_NotifyUser_MissingProfile(t *testing.T) {
	svc, _ := createTestNotificationService(t, memory.NewStore())

	report, err := svc.NotifyUser(context.Background(), "ghost", testNotification())

	require.NoError(t, err)
	assert.Equal(t, &usecase.DeliveryReport{}, report)
}

func TestNotificationService_NotifyUser_NoTokens(t *testing.T) {
	store := memory.NewStore()
	store.PutUser(&entity.UserProfile{ID: customerUID})
	svc, _ := createTestNotificationService(t, store)

	report, err := svc.NotifyUser(context.Background(), customerUID, testNotification())

	require.NoError(t, err)
	assert.Zero(t, report.Requested)
}

func TestNotificationService_Send_ChunksAndDedupes(t *testing.T) {
	svc, gateway := createTestNotificationService(t, memory.NewStore())
	ctx := context.Background()

	tokens := make([]string, 0, 1203)
	for i := range 1200 {
		tokens = append(tokens, fmt.Sprintf("token-%04d", i))
	}
	tokens = append(tokens, "token-0000", "", "token-0001")

	var sizes []int
	gateway.EXPECT().
		SendBatchNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, msg *entity.PushMessage) (*service.BatchResult, error) {
			sizes = append(sizes, len(msg.Tokens))

			return &service.BatchResult{SuccessCount: len(msg.Tokens)}, nil
		}).
		Times(3)

	report, err := svc.Send(ctx, tokens, testNotification())

	require.NoError(t, err)
	assert.Equal(t, []int{500, 500, 200}, sizes)
	assert.Equal(t, 1200, report.Requested)
	assert.Equal(t, 1200, report.Sent)
	assert.Zero(t, report.Pruned)
}

func TestNotificationService_Send_BatchErrorCountsAsFailed(t *testing.T) {
	store := memory.NewStore()
	store.PutUser(&entity.UserProfile{ID: customerUID, DeviceTokens: []string{"a", "b"}})
	svc, gateway := createTestNotificationService(t, store)
	ctx := context.Background()

	gateway.EXPECT().
		SendBatchNotification(ctx, mock.Anything).
		Return(nil, errors.New("gateway unavailable")).
		Once()

	report, err := svc.Send(ctx, []string{"a", "b"}, testNotification())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Failed)
	assert.Zero(t, report.Pruned, "a rejected batch does not mark its tokens stale")

	profile, err := memory.NewUserRepository(store).FindUserByID(ctx, customerUID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, profile.DeviceTokens)
}

func TestNotificationService_Send_WithoutGateway(t *testing.T) {
	svc := NewNotificationService(NotificationServiceParams{
		UserRepo: memory.NewUserRepository(memory.NewStore()),
		Logger:   newDiscardLogger(),
	})

	report, err := svc.Send(context.Background(), []string{"a"}, testNotification())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Requested)
	assert.Zero(t, report.Sent)
}

func TestNotificationService_NotifyAudience(t *testing.T) {
	store := newSeededStore()
	store.PutUser(&entity.UserProfile{ID: "customer-2", Role: entity.RoleCustomer, DeviceTokens: []string{"customer-token", "second-token"}})
	svc, gateway := createTestNotificationService(t, store)
	ctx := context.Background()

	gateway.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return assert.ElementsMatch(t, []string{"customer-token", "second-token"}, msg.Tokens)
		})).
		Return(&service.BatchResult{SuccessCount: 2}, nil).
		Once()

	report, err := svc.NotifyAudience(ctx, entity.AudienceCustomers, testNotification())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Requested)
	assert.Equal(t, 2, report.Sent)
}

func TestNotificationService_Deliver(t *testing.T) {
	store := newSeededStore()
	svc, gateway := createTestNotificationService(t, store)
	ctx := context.Background()

	gateway.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"owner-token"}, msg.Tokens)
		})).
		Return(&service.BatchResult{SuccessCount: 1}, nil).
		Once()

	report, err := svc.Deliver(ctx, &service.PushEvent{
		Target: service.PushTargetUser,
		UserID: ownerUID,
		Title:  "New Booking Request",
		Body:   "You have a new booking request",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)

	_, err = svc.Deliver(ctx, &service.PushEvent{Target: "carrier-pigeon"})
	require.Error(t, err)
	assert.False(t, usecase.IsRetryableError(err))
}
