package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific store client.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, nothing it wrote is applied. Otherwise, it's committed.
	// The function may be invoked more than once when the store retries on contention,
	// so it must not have side effects outside the repositories it is given.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// Within a transaction all reads must happen before the first write.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewProviderRepository returns a ProviderRepository instance bound to the current transaction.
	NewProviderRepository() ProviderRepository

	// NewBookingRepository returns a BookingRepository instance bound to the current transaction.
	NewBookingRepository() BookingRepository

	// NewReviewRepository returns a ReviewRepository instance bound to the current transaction.
	NewReviewRepository() ReviewRepository

	// NewAnnouncementRepository returns an AnnouncementRepository instance bound to the current transaction.
	NewAnnouncementRepository() AnnouncementRepository

	// NewAuditLogRepository returns an AuditLogRepository instance bound to the current transaction.
	NewAuditLogRepository() AuditLogRepository
}
