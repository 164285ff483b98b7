package repository

import (
	"context"

	"allserve/internal/domain/entity"
)

// AnnouncementRepository persists broadcast announcements. Append-only.
type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error
}

// AuditLogRepository persists admin audit entries. Append-only.
type AuditLogRepository interface {
	AppendAuditLog(ctx context.Context, entry *entity.AdminAuditLog) error
}
