package usecase

import (
	"context"
	"time"

	"allserve/internal/domain/entity"
)

// CreateBookingInput carries the fields of a booking request.
type CreateBookingInput struct {
	ProviderID  string
	ServiceID   string
	ScheduledAt time.Time
	Address     string
}

// CreateBookingOutput is returned once a booking is committed.
type CreateBookingOutput struct {
	BookingID string
	Status    entity.BookingStatus
}

// BookingUsecase defines the booking lifecycle operations.
type BookingUsecase interface {
	// CreateBooking books a provider's service for a time slot.
	// At most one requested or accepted booking may exist per provider and slot.
	CreateBooking(ctx context.Context, callerUID string, input *CreateBookingInput) (*CreateBookingOutput, error)

	// UpdateBookingStatus applies an action (accept, reject, complete, cancel) to a booking
	// and returns the new status.
	UpdateBookingStatus(ctx context.Context, callerUID, bookingID, action string) (entity.BookingStatus, error)
}
