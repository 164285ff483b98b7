package memory

import (
	"maps"
	"slices"
	"time"

	"allserve/internal/domain/entity"
)

func cloneUser(u *entity.UserProfile) *entity.UserProfile {
	c := *u
	c.DeviceTokens = slices.Clone(u.DeviceTokens)

	return &c
}

func cloneProvider(p *entity.Provider) *entity.Provider {
	c := *p
	c.Services = slices.Clone(p.Services)
	c.VerifiedAt = cloneTime(p.VerifiedAt)

	return &c
}

func cloneBooking(b *entity.Booking) *entity.Booking {
	c := *b

	return &c
}

func cloneReview(r *entity.Review) *entity.Review {
	c := *r
	c.FlaggedAt = cloneTime(r.FlaggedAt)

	return &c
}

func cloneAuditLog(a *entity.AdminAuditLog) *entity.AdminAuditLog {
	c := *a
	c.Detail = maps.Clone(a.Detail)

	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t

	return &c
}
