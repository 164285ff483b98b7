package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"allserve/config"
	deliverycontext "allserve/internal/delivery/context"
	"allserve/internal/domain/constants"
	"allserve/internal/domain/service"
	"allserve/internal/errors"
	"allserve/internal/infra/pubsub"
	mockUsecase "allserve/internal/mocks/usecase"
	"allserve/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notifier := mockUsecase.NewMockNotificationUsecase(t)
	if cfg == nil {
		cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: notifier,
	})

	return h, notifier
}

func pushBody(t *testing.T, event *service.PushEvent) string {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event, "projects/p/subscriptions/push")
	require.NoError(t, err)

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DeliversEvent(t *testing.T) {
	h, notifier := createTestPushHandler(t, nil)

	notifier.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(e *service.PushEvent) bool {
			return e.EventID == "evt-1" && e.Target == service.PushTargetUser && e.UserID == "owner-1"
		})).
		Run(func(ctx context.Context, _ *service.PushEvent) {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.DeliveryReport{Requested: 1, Sent: 1}, nil)

	rec := servePush(h, pushBody(t, &service.PushEvent{
		EventID:   "evt-1",
		RequestID: "req-42",
		Target:    service.PushTargetUser,
		UserID:    "owner-1",
		Title:     "New Booking Request",
	}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailure(t *testing.T) {
	h, notifier := createTestPushHandler(t, nil)
	notifier.EXPECT().
		Deliver(mock.Anything, mock.Anything).
		Return(nil, usecase.NewRetryableError(errors.New("firestore unavailable")))

	rec := servePush(h, pushBody(t, &service.PushEvent{EventID: "evt-1", Target: service.PushTargetAudience}), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PermanentFailureIsAcked(t *testing.T) {
	h, notifier := createTestPushHandler(t, nil)
	notifier.EXPECT().
		Deliver(mock.Anything, mock.Anything).
		Return(nil, errors.New(`unknown push target "fax"`))

	rec := servePush(h, pushBody(t, &service.PushEvent{EventID: "evt-1", Target: "fax"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadEnvelope(t *testing.T) {
	h, _ := createTestPushHandler(t, nil)

	rec := servePush(h, `{"message":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, `{"message":{"data":"not base64!"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGooglePushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	tests := []struct {
		name     string
		header   http.Header
		payload  *idtoken.Payload
		tokenErr error
		wantCode int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "invalid token", header: http.Header{"Authorization": {"Bearer bad"}}, tokenErr: errors.New("signature"), wantCode: http.StatusUnauthorized},
		{name: "wrong issuer", header: http.Header{"Authorization": {"Bearer ok"}}, payload: &idtoken.Payload{Issuer: "evil.example.com"}, wantCode: http.StatusUnauthorized},
		{name: "valid token", header: http.Header{"Authorization": {"Bearer ok"}}, payload: &idtoken.Payload{Issuer: "https://accounts.google.com"}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifier := createTestPushHandler(t, cfg)
			h.validateToken = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.example.com/push", audience)

				return tt.payload, tt.tokenErr
			}
			if tt.wantCode == http.StatusOK {
				notifier.EXPECT().Deliver(mock.Anything, mock.Anything).Return(&usecase.DeliveryReport{}, nil)
			}

			rec := servePush(h, pushBody(t, &service.PushEvent{EventID: "evt-1", Target: service.PushTargetTokens}), tt.header)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
