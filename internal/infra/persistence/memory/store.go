// Package memory implements the repository ports on an in-process store.
// A store-wide mutex serializes transactions; writes made inside a
// transaction are buffered and applied only when the callback succeeds.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"

	"github.com/google/uuid"
)

// Store holds every collection. Entities are copied on the way in and out.
type Store struct {
	mu            sync.Mutex
	users         map[string]*entity.UserProfile
	providers     map[string]*entity.Provider
	bookings      map[string]*entity.Booking
	reviews       map[string]*entity.Review
	announcements map[string]*entity.Announcement
	auditLogs     []*entity.AdminAuditLog
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:         make(map[string]*entity.UserProfile),
		providers:     make(map[string]*entity.Provider),
		bookings:      make(map[string]*entity.Booking),
		reviews:       make(map[string]*entity.Review),
		announcements: make(map[string]*entity.Announcement),
	}
}

// PutUser inserts or replaces a profile.
func (s *Store) PutUser(user *entity.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = cloneUser(user)
}

// PutProvider inserts or replaces a provider.
func (s *Store) PutProvider(provider *entity.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers[provider.ID] = cloneProvider(provider)
}

// PutBooking inserts or replaces a booking.
func (s *Store) PutBooking(booking *entity.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = cloneBooking(booking)
}

// PutReview inserts or replaces a review.
func (s *Store) PutReview(review *entity.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[review.ID] = cloneReview(review)
}

// Announcements returns a copy of every stored announcement.
func (s *Store) Announcements() []*entity.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Announcement, 0, len(s.announcements))
	for _, id := range slices.Sorted(maps.Keys(s.announcements)) {
		a := *s.announcements[id]
		out = append(out, &a)
	}

	return out
}

// AuditLogs returns a copy of the audit trail in append order.
func (s *Store) AuditLogs() []*entity.AdminAuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.AdminAuditLog, 0, len(s.auditLogs))
	for _, entry := range s.auditLogs {
		out = append(out, cloneAuditLog(entry))
	}

	return out
}

// session scopes repository calls either to the store lock (one call at a time)
// or to a running transaction that already holds the lock.
type session struct {
	store   *Store
	pending *[]func()
}

func (s session) inTx() bool {
	return s.pending != nil
}

// read runs fn with the store locked.
func (s session) read(fn func()) {
	if !s.inTx() {
		s.store.mu.Lock()
		defer s.store.mu.Unlock()
	}
	fn()
}

// write runs check now and apply either now or at commit. A failing check rejects the write.
func (s session) write(check func() error, apply func()) error {
	if !s.inTx() {
		s.store.mu.Lock()
		defer s.store.mu.Unlock()
	}

	if check != nil {
		if err := check(); err != nil {
			return err
		}
	}

	if s.inTx() {
		*s.pending = append(*s.pending, apply)
	} else {
		apply()
	}

	return nil
}

func newID() string {
	return uuid.NewString()
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a serializable transaction manager over the store
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the store lock and commits its buffered writes on success
func (m *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	var pending []func()
	if err := fn(&txRepositoryFactory{sess: session{store: m.store, pending: &pending}}); err != nil {
		return err
	}

	for _, apply := range pending {
		apply()
	}

	return nil
}

type txRepositoryFactory struct {
	sess session
}

func (f *txRepositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{sess: f.sess}
}

func (f *txRepositoryFactory) NewProviderRepository() repository.ProviderRepository {
	return &providerRepository{sess: f.sess}
}

func (f *txRepositoryFactory) NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{sess: f.sess}
}

func (f *txRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{sess: f.sess}
}

func (f *txRepositoryFactory) NewAnnouncementRepository() repository.AnnouncementRepository {
	return &announcementRepository{sess: f.sess}
}

func (f *txRepositoryFactory) NewAuditLogRepository() repository.AuditLogRepository {
	return &auditLogRepository{sess: f.sess}
}
