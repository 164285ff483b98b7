package firestoredb

import (
	"testing"
	"time"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
	"allserve/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(status.Error(codes.NotFound, "no document")), repository.ErrNotFound)

	err := mapError(status.Error(codes.Aborted, "contention"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrNotFound))
	assert.Equal(t, codes.Aborted, status.Code(errors.Unwrap(err)))
}

func TestStoredTime(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	in := time.Date(2026, 3, 1, 18, 30, 0, 123456789, loc)

	got := storedTime(in)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 123456000, got.Nanosecond())
	assert.True(t, got.Equal(in.Truncate(time.Microsecond)))
}

func TestBookingMapping(t *testing.T) {
	scheduled := time.Date(2026, 5, 2, 9, 0, 0, 999, time.UTC)
	booking := &entity.Booking{
		CustomerID:  "cust-1",
		ProviderID:  "prov-1",
		ServiceID:   "svc-1",
		Address:     "1 Main St",
		ScheduledAt: scheduled,
		Status:      entity.BookingStatusRequested,
	}

	m := fromBookingDomain(booking)
	assert.Equal(t, "requested", m.Status)
	assert.Equal(t, 0, m.ScheduledAt.Nanosecond())

	back := toBookingDomain("bk-1", m)
	assert.Equal(t, "bk-1", back.ID)
	assert.Equal(t, entity.BookingStatusRequested, back.Status)
	assert.Equal(t, booking.ProviderID, back.ProviderID)
}

func TestProviderMapping(t *testing.T) {
	m := &model.ProviderModel{
		OwnerUID:           "owner-1",
		Name:               "Quick Fix",
		Status:             entity.ProviderStatusActive,
		Verified:           true,
		VerificationStatus: "approved",
		Services:           []model.ProviderServiceModel{{ServiceID: "svc-1", Name: "Plumbing", Price: 40}},
		RatingAvg:          4.5,
		RatingCount:        2,
	}

	p := toProviderDomain("prov-1", m)
	assert.Equal(t, "prov-1", p.ID)
	assert.Equal(t, entity.VerificationApproved, p.VerificationStatus)
	assert.True(t, p.IsBookable())
	assert.True(t, p.OffersService("svc-1"))
	assert.Equal(t, 2, p.RatingCount)
}

func TestReviewMapping_KeepsID(t *testing.T) {
	review := &entity.Review{ID: "rv-1", BookingID: "bk-1", Rating: 4}
	m := fromReviewDomain(review)
	assert.Equal(t, "rv-1", m.ReviewID)
	assert.Equal(t, "rv-1", toReviewDomain("rv-1", m).ID)
}
