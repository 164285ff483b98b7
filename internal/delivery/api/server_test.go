package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"allserve/config"
	"allserve/internal/delivery/api/router"
	"allserve/internal/delivery/api/router/handler"
	"allserve/internal/delivery/middleware"
	"allserve/internal/domain/entity"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/errors"
	mockSvc "allserve/internal/mocks/service"
	mockUsecase "allserve/internal/mocks/usecase"
	"allserve/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo     *echo.Echo
	verifier *mockSvc.MockTokenVerifier
	booking  *mockUsecase.MockBookingUsecase
	review   *mockUsecase.MockReviewUsecase
	admin    *mockUsecase.MockAdminUsecase
	search   *mockUsecase.MockSearchUsecase
}

func newTestServer(t *testing.T) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	ts := &testServer{
		verifier: mockSvc.NewMockTokenVerifier(t),
		booking:  mockUsecase.NewMockBookingUsecase(t),
		review:   mockUsecase.NewMockReviewUsecase(t),
		admin:    mockUsecase.NewMockAdminUsecase(t),
		search:   mockUsecase.NewMockSearchUsecase(t),
	}

	ts.echo = NewEcho(cfg, logger, router.RouterParams{
		BookingHandler: handler.NewBookingHandler(handler.BookingHandlerParams{BookingUC: ts.booking, Logger: logger}),
		ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: ts.review, Logger: logger}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: ts.admin, Logger: logger}),
		SearchHandler:  handler.NewSearchHandler(handler.SearchHandlerParams{SearchUC: ts.search, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Verifier: ts.verifier, Logger: logger}),
	})

	return ts
}

func (ts *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

// signIn makes token resolve to uid.
func (ts *testServer) signIn(token, uid string) {
	ts.verifier.EXPECT().VerifyToken(mock.Anything, token).Return(uid, nil)
}

func decodeCallableError(t *testing.T, rec *httptest.ResponseRecorder) *domainerrors.CallableErrorResponse {
	t.Helper()

	var body domainerrors.CallableErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return &body
}

func TestServer_HealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_CreateBooking(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "customer-1")

	ts.booking.EXPECT().
		CreateBooking(mock.Anything, "customer-1", mock.MatchedBy(func(in *usecase.CreateBookingInput) bool {
			return in.ProviderID == "p1" &&
				in.ServiceID == "s1" &&
				in.ScheduledAt.Equal(time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC))
		})).
		Return(&usecase.CreateBookingOutput{BookingID: "b1", Status: entity.BookingStatusRequested}, nil)

	rec := ts.do(http.MethodPost, "/v1/createBooking",
		`{"providerId":"p1","serviceId":"s1","scheduledAt":"2026-11-02T17:00:00+08:00","address":"12 Harbour Rd"}`, "good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookingId":"b1","status":"requested"}`, rec.Body.String())
}

func TestServer_CreateBooking_Anonymous(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/createBooking", `{"providerId":"p1","serviceId":"s1","scheduledAt":"2026-11-02T09:00:00Z"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeCallableError(t, rec)
	assert.Equal(t, "UNAUTHENTICATED", body.Error.Status)
	assert.Equal(t, "User must be authenticated", body.Error.Message)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestServer_InvalidToken(t *testing.T) {
	ts := newTestServer(t)
	ts.verifier.EXPECT().VerifyToken(mock.Anything, "expired").Return("", errors.New("token expired"))

	rec := ts.do(http.MethodPost, "/v1/flagReview", `{"reviewId":"r1","reason":"spam"}`, "expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeCallableError(t, rec).Error.Status)
}

func TestServer_ValidationFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "customer-1")

	rec := ts.do(http.MethodPost, "/v1/createBooking", `{"providerId":"p1"}`, "good")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeCallableError(t, rec)
	assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status)
	assert.Contains(t, body.Error.Message, "serviceId")
}

func TestServer_BadTimestamp(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "customer-1")

	rec := ts.do(http.MethodPost, "/v1/createBooking", `{"providerId":"p1","serviceId":"s1","scheduledAt":"next tuesday"}`, "good")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeCallableError(t, rec).Error.Status)
}

func TestServer_MalformedBody(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "customer-1")

	rec := ts.do(http.MethodPost, "/v1/updateBookingStatus", `{"bookingId":`, "good")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed request body", decodeCallableError(t, rec).Error.Message)
}

func TestServer_UsecaseErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{name: "failed precondition", err: domainerrors.ErrBookingNotCancellable, wantCode: http.StatusBadRequest, wantStatus: "FAILED_PRECONDITION"},
		{name: "permission denied", err: domainerrors.NewPermissionDenied("Only customer can cancel bookings"), wantCode: http.StatusForbidden, wantStatus: "PERMISSION_DENIED"},
		{name: "not found", err: domainerrors.ErrBookingNotFound, wantCode: http.StatusNotFound, wantStatus: "NOT_FOUND"},
		{name: "already exists", err: errors.Wrap(domainerrors.ErrSlotAlreadyBooked, "tx"), wantCode: http.StatusConflict, wantStatus: "ALREADY_EXISTS"},
		{name: "internal", err: errors.New("firestore: deadline exceeded"), wantCode: http.StatusInternalServerError, wantStatus: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.signIn("good", "customer-1")
			ts.booking.EXPECT().
				UpdateBookingStatus(mock.Anything, "customer-1", "b1", "cancel").
				Return("", tt.err)

			rec := ts.do(http.MethodPost, "/v1/updateBookingStatus", `{"bookingId":"b1","action":"cancel"}`, "good")

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeCallableError(t, rec)
			assert.Equal(t, tt.wantStatus, body.Error.Status)
			if tt.wantStatus == "INTERNAL" {
				assert.Equal(t, "Internal error, please try again later", body.Error.Message)
				assert.NotContains(t, rec.Body.String(), "firestore")
			}
		})
	}
}

func TestServer_UpdateBookingStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "owner-1")
	ts.booking.EXPECT().
		UpdateBookingStatus(mock.Anything, "owner-1", "b1", "accept").
		Return(entity.BookingStatusAccepted, nil)

	rec := ts.do(http.MethodPost, "/v1/updateBookingStatus", `{"bookingId":"b1","action":"accept"}`, "good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"status":"accepted"}`, rec.Body.String())
}

func TestServer_PostReview(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "customer-1")
	ts.review.EXPECT().
		PostReview(mock.Anything, "customer-1", &usecase.PostReviewInput{BookingID: "b1", Rating: 5, Comment: "great"}).
		Return("r1", nil)

	rec := ts.do(http.MethodPost, "/v1/postReview", `{"bookingId":"b1","rating":5,"comment":"great"}`, "good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reviewId":"r1","success":true}`, rec.Body.String())
}

func TestServer_PostReview_RatingOutOfRange(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "customer-1")

	rec := ts.do(http.MethodPost, "/v1/postReview", `{"bookingId":"b1","rating":7}`, "good")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeCallableError(t, rec).Error.Status)
}

func TestServer_FlagReview_AcceptsLegacyReasonField(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "owner-1")
	ts.review.EXPECT().FlagReview(mock.Anything, "owner-1", "r1", "fake review").Return(nil)

	rec := ts.do(http.MethodPost, "/v1/flagReview", `{"reviewId":"r1","flagReason":"fake review"}`, "good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestServer_AdminOperations(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("admin", "admin-1")
	ts.admin.EXPECT().
		ApproveProvider(mock.Anything, "admin-1", &usecase.ApproveProviderInput{ProviderID: "p1", Approve: true, Notes: "ok"}).
		Return(nil)
	ts.admin.EXPECT().
		SendAnnouncement(mock.Anything, "admin-1", &usecase.AnnouncementInput{Title: "Hi", Message: "Hello", Audience: entity.AudienceAll}).
		Return("a1", nil)

	rec := ts.do(http.MethodPost, "/v1/adminApproveProvider", `{"providerId":"p1","approve":true,"notes":"ok"}`, "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = ts.do(http.MethodPost, "/v1/sendAnnouncement", `{"title":"Hi","message":"Hello","audience":"all"}`, "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestServer_AdminRequired(t *testing.T) {
	ts := newTestServer(t)
	ts.signIn("good", "customer-1")
	ts.admin.EXPECT().
		SendAnnouncement(mock.Anything, "customer-1", mock.Anything).
		Return("", domainerrors.ErrAdminRequired)

	rec := ts.do(http.MethodPost, "/v1/sendAnnouncement", `{}`, "good")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeCallableError(t, rec)
	assert.Equal(t, "PERMISSION_DENIED", body.Error.Status)
	assert.Equal(t, "Admin access required", body.Error.Message)
}

func TestServer_FetchProvidersNearby(t *testing.T) {
	ts := newTestServer(t)
	ts.search.EXPECT().
		SearchNearby(mock.Anything, &usecase.NearbyQuery{Lat: 0, Lng: 0, RadiusKm: 10}).
		Return([]*usecase.NearbyProvider{
			{Provider: &entity.Provider{ID: "p1", Name: "Near", Status: "active", Verified: true, Lat: 0.05}, DistanceKm: 5.56},
		}, nil)

	rec := ts.do(http.MethodPost, "/fetchProvidersNearby", `{"lat":0,"lng":0,"radiusKm":10}`, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.NearbyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Providers, 1)
	assert.Equal(t, "p1", body.Providers[0].ID)
	assert.InDelta(t, 5.56, body.Providers[0].Distance, 1e-9)
}

func TestServer_FetchProvidersNearby_Errors(t *testing.T) {
	t.Run("missing coordinates", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/fetchProvidersNearby", `{"lat":25.0}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Latitude and longitude are required"}`, rec.Body.String())
	})

	t.Run("wrong method", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/fetchProvidersNearby", "", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.search.EXPECT().SearchNearby(mock.Anything, mock.Anything).Return(nil, errors.New("unavailable"))

		rec := ts.do(http.MethodPost, "/fetchProvidersNearby", `{"lat":1,"lng":2}`, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch providers"}`, rec.Body.String())
	})

	t.Run("invalid radius", func(t *testing.T) {
		ts := newTestServer(t)
		ts.search.EXPECT().
			SearchNearby(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewInvalidArgument("radiusKm is out of range"))

		rec := ts.do(http.MethodPost, "/fetchProvidersNearby", `{"lat":1,"lng":2,"radiusKm":500}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"radiusKm is out of range"}`, rec.Body.String())
	})
}
