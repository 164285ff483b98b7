package firestoredb

import (
	"context"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
	"allserve/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type announcementRepository struct {
	sess session
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(client *firestore.Client) repository.AnnouncementRepository {
	return &announcementRepository{sess: session{client: client}}
}

// CreateAnnouncement appends an announcement document.
func (repo *announcementRepository) CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error {
	ref := repo.sess.client.Collection(model.CollectionAnnouncements).NewDoc()
	if err := repo.sess.create(ctx, ref, fromAnnouncementDomain(announcement)); err != nil {
		return errors.Wrap(err, "failed to create announcement")
	}
	announcement.ID = ref.ID

	return nil
}

type auditLogRepository struct {
	sess session
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(client *firestore.Client) repository.AuditLogRepository {
	return &auditLogRepository{sess: session{client: client}}
}

// AppendAuditLog appends an admin audit entry.
func (repo *auditLogRepository) AppendAuditLog(ctx context.Context, entry *entity.AdminAuditLog) error {
	ref := repo.sess.client.Collection(model.CollectionAdminAuditLogs).NewDoc()
	if err := repo.sess.create(ctx, ref, fromAuditLogDomain(entry)); err != nil {
		return errors.Wrap(err, "failed to append audit log")
	}
	entry.ID = ref.ID

	return nil
}
