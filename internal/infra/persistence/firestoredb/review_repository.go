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

// reviewRepository implements the domain.ReviewRepository interface on the 'reviews' collection.
type reviewRepository struct {
	sess session
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &reviewRepository{sess: session{client: client}}
}

func (repo *reviewRepository) collection() *firestore.CollectionRef {
	return repo.sess.client.Collection(model.CollectionReviews)
}

// CreateReview persists a new review. The generated ID is also stored in the document.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	ref := repo.collection().NewDoc()
	review.ID = ref.ID
	if err := repo.sess.create(ctx, ref, fromReviewDomain(review)); err != nil {
		review.ID = ""

		return errors.Wrap(err, "failed to create review")
	}

	return nil
}

// FindReviewByID retrieves a single review document.
func (repo *reviewRepository) FindReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	snap, err := repo.sess.get(ctx, repo.collection().Doc(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	var m model.ReviewModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode review")
	}

	return toReviewDomain(snap.Ref.ID, &m), nil
}

// FindReviewsByBookingAndCustomer returns the reviews a customer wrote for one booking.
func (repo *reviewRepository) FindReviewsByBookingAndCustomer(ctx context.Context, bookingID, customerID string) ([]*entity.Review, error) {
	q := repo.collection().
		Where("bookingId", "==", bookingID).
		Where("customerId", "==", customerID)

	snaps, err := repo.sess.query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query reviews by booking")
	}

	reviews := make([]*entity.Review, 0, len(snaps))
	for _, snap := range snaps {
		var m model.ReviewModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode review %s", snap.Ref.ID)
		}
		reviews = append(reviews, toReviewDomain(snap.Ref.ID, &m))
	}

	return reviews, nil
}

// UpdateReviewContent replaces the rating and comment of a review.
func (repo *reviewRepository) UpdateReviewContent(ctx context.Context, id string, rating int, comment string, updatedAt time.Time) error {
	err := repo.sess.update(ctx, repo.collection().Doc(id), []firestore.Update{
		{Path: "rating", Value: rating},
		{Path: "comment", Value: comment},
		{Path: "updatedAt", Value: updatedAt},
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(err, "failed to update review")
	}

	return err
}

// FlagReview marks a review as flagged. Update fails with NotFound on a missing document.
func (repo *reviewRepository) FlagReview(ctx context.Context, id string, flag entity.ReviewFlag) error {
	err := repo.sess.update(ctx, repo.collection().Doc(id), []firestore.Update{
		{Path: "flagged", Value: true},
		{Path: "flagReason", Value: flag.Reason},
		{Path: "flaggedBy", Value: flag.FlaggedBy},
		{Path: "flaggedAt", Value: flag.FlaggedAt},
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(err, "failed to flag review")
	}

	return err
}
