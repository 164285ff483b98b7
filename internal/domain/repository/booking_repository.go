package repository

import (
	"context"
	"time"

	"allserve/internal/domain/entity"
)

// BookingRepository defines the interface for booking persistence.
type BookingRepository interface {
	// CreateBooking persists a new booking and assigns its ID.
	CreateBooking(ctx context.Context, booking *entity.Booking) error

	// FindBookingByID retrieves a booking. Returns ErrNotFound when missing.
	FindBookingByID(ctx context.Context, id string) (*entity.Booking, error)

	// FindActiveBookingsAtSlot returns bookings of the provider at exactly scheduledAt
	// whose status is requested or accepted.
	FindActiveBookingsAtSlot(ctx context.Context, providerID string, scheduledAt time.Time) ([]*entity.Booking, error)

	// UpdateBookingStatus sets the status and the update timestamp.
	UpdateBookingStatus(ctx context.Context, id string, status entity.BookingStatus, updatedAt time.Time) error
}
