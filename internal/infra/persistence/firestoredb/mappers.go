package firestoredb

import (
	"time"

	"allserve/internal/domain/entity"
	"allserve/internal/infra/persistence/model"
)

// storedTime truncates t to the precision Firestore keeps, so equality filters on stored timestamps match.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func toUserDomain(id string, m *model.UserModel) *entity.UserProfile {
	return &entity.UserProfile{
		ID:           id,
		Role:         entity.Role(m.Role),
		Name:         m.Name,
		Email:        m.Email,
		DeviceTokens: m.DeviceTokens,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toProviderDomain(id string, m *model.ProviderModel) *entity.Provider {
	services := make([]entity.ProviderService, 0, len(m.Services))
	for _, s := range m.Services {
		services = append(services, entity.ProviderService{ServiceID: s.ServiceID, Name: s.Name, Price: s.Price})
	}

	return &entity.Provider{
		ID:                 id,
		OwnerUID:           m.OwnerUID,
		Name:               m.Name,
		CategoryID:         m.CategoryID,
		Status:             m.Status,
		Verified:           m.Verified,
		VerificationStatus: entity.VerificationStatus(m.VerificationStatus),
		VerifiedAt:         m.VerifiedAt,
		VerifiedBy:         m.VerifiedBy,
		AdminNotes:         m.AdminNotes,
		Lat:                m.Lat,
		Lng:                m.Lng,
		Services:           services,
		RatingAvg:          m.RatingAvg,
		RatingCount:        m.RatingCount,
	}
}

func toBookingDomain(id string, m *model.BookingModel) *entity.Booking {
	return &entity.Booking{
		ID:          id,
		CustomerID:  m.CustomerID,
		ProviderID:  m.ProviderID,
		ServiceID:   m.ServiceID,
		Address:     m.Address,
		ScheduledAt: m.ScheduledAt,
		Status:      entity.BookingStatus(m.Status),
		RequestedAt: m.RequestedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromBookingDomain(b *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		CustomerID:  b.CustomerID,
		ProviderID:  b.ProviderID,
		ServiceID:   b.ServiceID,
		Address:     b.Address,
		ScheduledAt: storedTime(b.ScheduledAt),
		Status:      string(b.Status),
		RequestedAt: b.RequestedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toReviewDomain(id string, m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:         id,
		BookingID:  m.BookingID,
		CustomerID: m.CustomerID,
		ProviderID: m.ProviderID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		Flagged:    m.Flagged,
		FlagReason: m.FlagReason,
		FlaggedBy:  m.FlaggedBy,
		FlaggedAt:  m.FlaggedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ReviewID:   r.ID,
		BookingID:  r.BookingID,
		CustomerID: r.CustomerID,
		ProviderID: r.ProviderID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Flagged:    r.Flagged,
		FlagReason: r.FlagReason,
		FlaggedBy:  r.FlaggedBy,
		FlaggedAt:  r.FlaggedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func fromAnnouncementDomain(a *entity.Announcement) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		Title:     a.Title,
		Message:   a.Message,
		Audience:  string(a.Audience),
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
	}
}

func fromAuditLogDomain(l *entity.AdminAuditLog) *model.AdminAuditLogModel {
	return &model.AdminAuditLogModel{
		ActorUID:  l.ActorUID,
		Action:    string(l.Action),
		Detail:    l.Detail,
		CreatedAt: l.CreatedAt,
	}
}
