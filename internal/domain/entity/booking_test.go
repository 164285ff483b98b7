package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusRequested, BookingStatusAccepted, true},
		{BookingStatusRequested, BookingStatusRejected, true},
		{BookingStatusRequested, BookingStatusCancelled, true},
		{BookingStatusRequested, BookingStatusCompleted, false},
		{BookingStatusAccepted, BookingStatusCompleted, true},
		{BookingStatusAccepted, BookingStatusCancelled, true},
		{BookingStatusAccepted, BookingStatusRejected, false},
		{BookingStatusAccepted, BookingStatusAccepted, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusRejected, BookingStatusAccepted, false},
		{BookingStatusCancelled, BookingStatusRequested, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseBookingAction(t *testing.T) {
	for _, raw := range []string{"accept", "reject", "complete", "cancel"} {
		action, ok := ParseBookingAction(raw)
		assert.True(t, ok, raw)
		assert.NotEmpty(t, action.TargetStatus(), raw)
	}

	_, ok := ParseBookingAction("archive")
	assert.False(t, ok)

	_, ok = ParseBookingAction("")
	assert.False(t, ok)
}

func TestBookingStatus_IsActive(t *testing.T) {
	assert.True(t, BookingStatusRequested.IsActive())
	assert.True(t, BookingStatusAccepted.IsActive())
	assert.False(t, BookingStatusCompleted.IsActive())
	assert.False(t, BookingStatusRejected.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())
}

func TestProvider_Helpers(t *testing.T) {
	provider := &Provider{
		ID:       "prov-1",
		OwnerUID: "owner-1",
		Status:   ProviderStatusActive,
		Verified: true,
		Services: []ProviderService{{ServiceID: "svc-1", Name: "Plumbing"}},
	}

	assert.True(t, provider.IsBookable())
	assert.True(t, provider.OffersService("svc-1"))
	assert.False(t, provider.OffersService("svc-2"))
	assert.True(t, provider.IsOwnedBy("owner-1"))
	assert.True(t, provider.IsOwnedBy("prov-1"))
	assert.False(t, provider.IsOwnedBy(""))

	provider.Verified = false
	assert.False(t, provider.IsBookable())
}

func TestAudience_Role(t *testing.T) {
	assert.Nil(t, AudienceAll.Role())
	assert.Equal(t, RoleCustomer, *AudienceCustomers.Role())
	assert.Equal(t, RoleProvider, *AudienceProviders.Role())
	assert.Equal(t, RoleAdmin, *AudienceAdmins.Role())
	assert.False(t, Audience("everyone").IsValid())
}
