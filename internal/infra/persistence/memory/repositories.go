package memory

import (
	"context"
	"maps"
	"slices"
	"time"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/repository"
)

type userRepository struct {
	sess session
}

// NewUserRepository creates a user repository over the store
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{sess: session{store: store}}
}

func (r *userRepository) FindUserByID(_ context.Context, uid string) (*entity.UserProfile, error) {
	var found *entity.UserProfile
	r.sess.read(func() {
		if u, ok := r.sess.store.users[uid]; ok {
			found = cloneUser(u)
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}

	return found, nil
}

func (r *userRepository) ListUsers(_ context.Context, role *entity.Role) ([]*entity.UserProfile, error) {
	var out []*entity.UserProfile
	r.sess.read(func() {
		for _, id := range slices.Sorted(maps.Keys(r.sess.store.users)) {
			u := r.sess.store.users[id]
			if role != nil && u.Role != *role {
				continue
			}
			out = append(out, cloneUser(u))
		}
	})

	return out, nil
}

func (r *userRepository) RemoveDeviceTokens(_ context.Context, tokens []string) (int, error) {
	updated := 0
	err := r.sess.write(nil, func() {
		for _, u := range r.sess.store.users {
			kept := slices.DeleteFunc(slices.Clone(u.DeviceTokens), func(token string) bool {
				return slices.Contains(tokens, token)
			})
			if len(kept) != len(u.DeviceTokens) {
				u.DeviceTokens = kept
				u.UpdatedAt = time.Now().UTC()
				updated++
			}
		}
	})

	return updated, err
}

type providerRepository struct {
	sess session
}

// NewProviderRepository creates a provider repository over the store
func NewProviderRepository(store *Store) repository.ProviderRepository {
	return &providerRepository{sess: session{store: store}}
}

func (r *providerRepository) FindProviderByID(_ context.Context, id string) (*entity.Provider, error) {
	var found *entity.Provider
	r.sess.read(func() {
		if p, ok := r.sess.store.providers[id]; ok {
			found = cloneProvider(p)
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}

	return found, nil
}

func (r *providerRepository) FindProvidersInBounds(_ context.Context, query repository.ProviderBoundsQuery) ([]*entity.Provider, error) {
	var out []*entity.Provider
	r.sess.read(func() {
		for _, id := range slices.Sorted(maps.Keys(r.sess.store.providers)) {
			p := r.sess.store.providers[id]
			if !p.IsBookable() || !query.Contains(p.Lat, p.Lng) {
				continue
			}
			if query.CategoryID != "" && p.CategoryID != query.CategoryID {
				continue
			}
			out = append(out, cloneProvider(p))
		}
	})

	return out, nil
}

func (r *providerRepository) exists(id string) func() error {
	return func() error {
		if _, ok := r.sess.store.providers[id]; !ok {
			return repository.ErrNotFound
		}

		return nil
	}
}

func (r *providerRepository) UpdateRating(_ context.Context, id string, avg float64, count int, _ time.Time) error {
	return r.sess.write(r.exists(id), func() {
		p := r.sess.store.providers[id]
		p.RatingAvg = avg
		p.RatingCount = count
	})
}

func (r *providerRepository) UpdateVerification(_ context.Context, id string, v entity.ProviderVerification) error {
	return r.sess.write(r.exists(id), func() {
		p := r.sess.store.providers[id]
		verifiedAt := v.VerifiedAt
		p.Verified = v.Verified
		p.VerificationStatus = v.Status
		p.VerifiedAt = &verifiedAt
		p.VerifiedBy = v.VerifiedBy
		if v.Notes != "" {
			p.AdminNotes = v.Notes
		}
	})
}

type bookingRepository struct {
	sess session
}

// NewBookingRepository creates a booking repository over the store
func NewBookingRepository(store *Store) repository.BookingRepository {
	return &bookingRepository{sess: session{store: store}}
}

func (r *bookingRepository) CreateBooking(_ context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		booking.ID = newID()
	}
	stored := cloneBooking(booking)

	return r.sess.write(nil, func() {
		r.sess.store.bookings[stored.ID] = stored
	})
}

func (r *bookingRepository) FindBookingByID(_ context.Context, id string) (*entity.Booking, error) {
	var found *entity.Booking
	r.sess.read(func() {
		if b, ok := r.sess.store.bookings[id]; ok {
			found = cloneBooking(b)
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}

	return found, nil
}

func (r *bookingRepository) FindActiveBookingsAtSlot(_ context.Context, providerID string, scheduledAt time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	r.sess.read(func() {
		for _, b := range r.sess.store.bookings {
			if b.ProviderID == providerID && b.ScheduledAt.Equal(scheduledAt) && b.Status.IsActive() {
				out = append(out, cloneBooking(b))
			}
		}
	})

	return out, nil
}

func (r *bookingRepository) UpdateBookingStatus(_ context.Context, id string, status entity.BookingStatus, updatedAt time.Time) error {
	check := func() error {
		if _, ok := r.sess.store.bookings[id]; !ok {
			return repository.ErrNotFound
		}

		return nil
	}

	return r.sess.write(check, func() {
		b := r.sess.store.bookings[id]
		b.Status = status
		b.UpdatedAt = updatedAt
	})
}

type reviewRepository struct {
	sess session
}

// NewReviewRepository creates a review repository over the store
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{sess: session{store: store}}
}

func (r *reviewRepository) CreateReview(_ context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = newID()
	}
	stored := cloneReview(review)

	return r.sess.write(nil, func() {
		r.sess.store.reviews[stored.ID] = stored
	})
}

func (r *reviewRepository) FindReviewByID(_ context.Context, id string) (*entity.Review, error) {
	var found *entity.Review
	r.sess.read(func() {
		if rv, ok := r.sess.store.reviews[id]; ok {
			found = cloneReview(rv)
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}

	return found, nil
}

func (r *reviewRepository) FindReviewsByBookingAndCustomer(_ context.Context, bookingID, customerID string) ([]*entity.Review, error) {
	var out []*entity.Review
	r.sess.read(func() {
		for _, rv := range r.sess.store.reviews {
			if rv.BookingID == bookingID && rv.CustomerID == customerID {
				out = append(out, cloneReview(rv))
			}
		}
	})

	return out, nil
}

func (r *reviewRepository) exists(id string) func() error {
	return func() error {
		if _, ok := r.sess.store.reviews[id]; !ok {
			return repository.ErrNotFound
		}

		return nil
	}
}

func (r *reviewRepository) UpdateReviewContent(_ context.Context, id string, rating int, comment string, updatedAt time.Time) error {
	return r.sess.write(r.exists(id), func() {
		rv := r.sess.store.reviews[id]
		rv.Rating = rating
		rv.Comment = comment
		rv.UpdatedAt = updatedAt
	})
}

func (r *reviewRepository) FlagReview(_ context.Context, id string, flag entity.ReviewFlag) error {
	return r.sess.write(r.exists(id), func() {
		rv := r.sess.store.reviews[id]
		flaggedAt := flag.FlaggedAt
		rv.Flagged = true
		rv.FlagReason = flag.Reason
		rv.FlaggedBy = flag.FlaggedBy
		rv.FlaggedAt = &flaggedAt
	})
}

type announcementRepository struct {
	sess session
}

// NewAnnouncementRepository creates an announcement repository over the store
func NewAnnouncementRepository(store *Store) repository.AnnouncementRepository {
	return &announcementRepository{sess: session{store: store}}
}

func (r *announcementRepository) CreateAnnouncement(_ context.Context, announcement *entity.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = newID()
	}
	stored := *announcement

	return r.sess.write(nil, func() {
		r.sess.store.announcements[stored.ID] = &stored
	})
}

type auditLogRepository struct {
	sess session
}

// NewAuditLogRepository creates an audit log repository over the store
func NewAuditLogRepository(store *Store) repository.AuditLogRepository {
	return &auditLogRepository{sess: session{store: store}}
}

func (r *auditLogRepository) AppendAuditLog(_ context.Context, entry *entity.AdminAuditLog) error {
	if entry.ID == "" {
		entry.ID = newID()
	}
	stored := cloneAuditLog(entry)

	return r.sess.write(nil, func() {
		r.sess.store.auditLogs = append(r.sess.store.auditLogs, stored)
	})
}
