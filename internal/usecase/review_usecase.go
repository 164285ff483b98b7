package usecase

import "context"

// PostReviewInput carries a new review or an update to an existing one.
type PostReviewInput struct {
	BookingID string
	Rating    int
	Comment   string
	IsUpdate  bool
	ReviewID  string // Required when IsUpdate is set.
}

// ReviewUsecase defines review posting and moderation.
type ReviewUsecase interface {
	// PostReview creates or updates the caller's review of a completed booking and
	// folds the rating into the provider aggregate in the same transaction.
	PostReview(ctx context.Context, callerUID string, input *PostReviewInput) (reviewID string, err error)

	// FlagReview marks a review for moderation.
	FlagReview(ctx context.Context, callerUID, reviewID, reason string) error
}
