package usecase

import (
	"context"

	"allserve/internal/domain/entity"
)

// ApproveProviderInput carries an admin verification decision.
type ApproveProviderInput struct {
	ProviderID string
	Approve    bool
	Notes      string
}

// AnnouncementInput carries a broadcast message.
type AnnouncementInput struct {
	Title    string
	Message  string
	Audience entity.Audience
}

// AdminUsecase defines admin-only operations.
type AdminUsecase interface {
	// ApproveProvider records a verification decision, audits it and notifies the provider.
	ApproveProvider(ctx context.Context, callerUID string, input *ApproveProviderInput) error

	// SendAnnouncement persists an announcement and pushes it to the audience.
	SendAnnouncement(ctx context.Context, callerUID string, input *AnnouncementInput) (announcementID string, err error)
}
