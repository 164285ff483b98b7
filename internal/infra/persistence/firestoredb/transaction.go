package firestoredb

import (
	"context"

	"allserve/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// transactionManager implements the domain's TransactionManager interface on Firestore transactions.
type transactionManager struct {
	client *firestore.Client
}

// repositoryFactory holds a running Firestore transaction and binds every repository it creates to it.
type repositoryFactory struct {
	sess session
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &transactionManager{client: client}
}

// Execute runs fn inside RunTransaction. Firestore retries fn on contention,
// and nothing fn wrote is applied when it returns an error.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&repositoryFactory{sess: session{client: tm.client, tx: tx}})
	})
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{sess: f.sess}
}

func (f *repositoryFactory) NewProviderRepository() repository.ProviderRepository {
	return &providerRepository{sess: f.sess}
}

func (f *repositoryFactory) NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{sess: f.sess}
}

func (f *repositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{sess: f.sess}
}

func (f *repositoryFactory) NewAnnouncementRepository() repository.AnnouncementRepository {
	return &announcementRepository{sess: f.sess}
}

func (f *repositoryFactory) NewAuditLogRepository() repository.AuditLogRepository {
	return &auditLogRepository{sess: f.sess}
}
