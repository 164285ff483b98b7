package firestoredb

import (
	"context"
	"time"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
	"allserve/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

// bookingRepository implements the domain.BookingRepository interface on the 'bookings' collection.
type bookingRepository struct {
	sess session
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &bookingRepository{sess: session{client: client}}
}

func (repo *bookingRepository) collection() *firestore.CollectionRef {
	return repo.sess.client.Collection(model.CollectionBookings)
}

// CreateBooking persists a new booking under a generated document ID.
func (repo *bookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	ref := repo.collection().NewDoc()
	if err := repo.sess.create(ctx, ref, fromBookingDomain(booking)); err != nil {
		return errors.Wrap(err, "failed to create booking")
	}
	booking.ID = ref.ID

	return nil
}

// FindBookingByID retrieves a single booking document.
func (repo *bookingRepository) FindBookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	snap, err := repo.sess.get(ctx, repo.collection().Doc(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	var m model.BookingModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode booking")
	}

	return toBookingDomain(snap.Ref.ID, &m), nil
}

// FindActiveBookingsAtSlot returns the requested or accepted bookings of a provider at one instant.
func (repo *bookingRepository) FindActiveBookingsAtSlot(ctx context.Context, providerID string, scheduledAt time.Time) ([]*entity.Booking, error) {
	statuses := make([]string, 0, len(entity.ActiveBookingStatuses))
	for _, s := range entity.ActiveBookingStatuses {
		statuses = append(statuses, s.String())
	}

	q := repo.collection().
		Where("providerId", "==", providerID).
		Where("scheduledAt", "==", storedTime(scheduledAt)).
		Where("status", "in", statuses)

	snaps, err := repo.sess.query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query bookings at slot")
	}

	bookings := make([]*entity.Booking, 0, len(snaps))
	for _, snap := range snaps {
		var m model.BookingModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode booking %s", snap.Ref.ID)
		}
		bookings = append(bookings, toBookingDomain(snap.Ref.ID, &m))
	}

	return bookings, nil
}

// UpdateBookingStatus sets the status and update timestamp of a booking.
func (repo *bookingRepository) UpdateBookingStatus(ctx context.Context, id string, status entity.BookingStatus, updatedAt time.Time) error {
	err := repo.sess.update(ctx, repo.collection().Doc(id), []firestore.Update{
		{Path: "status", Value: status.String()},
		{Path: "updatedAt", Value: updatedAt},
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(err, "failed to update booking status")
	}

	return err
}
