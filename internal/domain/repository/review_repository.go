package repository

import (
	"context"
	"time"

	"allserve/internal/domain/entity"
)

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// CreateReview persists a new review and assigns its ID.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByID retrieves a review. Returns ErrNotFound when missing.
	FindReviewByID(ctx context.Context, id string) (*entity.Review, error)

	// FindReviewsByBookingAndCustomer returns the reviews a customer wrote for a booking.
	FindReviewsByBookingAndCustomer(ctx context.Context, bookingID, customerID string) ([]*entity.Review, error)

	// UpdateReviewContent replaces rating and comment of an existing review.
	UpdateReviewContent(ctx context.Context, id string, rating int, comment string, updatedAt time.Time) error

	// FlagReview marks an existing review as flagged. Returns ErrNotFound when missing.
	FlagReview(ctx context.Context, id string, flag entity.ReviewFlag) error
}
