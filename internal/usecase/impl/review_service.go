package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "allserve/internal/delivery/context"
	"allserve/internal/domain/entity"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
	"allserve/internal/usecase"

	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (s *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PostReview creates or updates a review and folds its rating into the provider aggregate
func (s *reviewService) PostReview(ctx context.Context, callerUID string, input *usecase.PostReviewInput) (string, error) {
	if err := requireCaller(callerUID); err != nil {
		return "", err
	}

	if strings.TrimSpace(input.BookingID) == "" || input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return "", domainerrors.ErrInvalidReview
	}

	if input.IsUpdate && strings.TrimSpace(input.ReviewID) == "" {
		return "", domainerrors.NewInvalidArgument("reviewId is required to update a review")
	}

	comment := strings.TrimSpace(input.Comment)

	var reviewID string
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		bookingRepo := txRepoFactory.NewBookingRepository()
		reviewRepo := txRepoFactory.NewReviewRepository()
		providerRepo := txRepoFactory.NewProviderRepository()

		booking, err := bookingRepo.FindBookingByID(ctx, input.BookingID)
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrBookingNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load booking")
		}

		if booking.CustomerID != callerUID {
			return domainerrors.NewPermissionDenied("Not authorized to review this booking")
		}

		if booking.Status != entity.BookingStatusCompleted {
			return domainerrors.ErrReviewNotAllowed
		}

		var existing *entity.Review
		if input.IsUpdate {
			existing, err = s.loadOwnReview(ctx, reviewRepo, input.ReviewID, callerUID, booking.ID)
			if err != nil {
				return err
			}
		} else {
			prior, findErr := reviewRepo.FindReviewsByBookingAndCustomer(ctx, booking.ID, callerUID)
			if findErr != nil {
				return errors.Wrap(findErr, "failed to query existing reviews")
			}
			if len(prior) > 0 {
				return domainerrors.ErrReviewAlreadyExists
			}
		}

		provider, err := providerRepo.FindProviderByID(ctx, booking.ProviderID)
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.NewInternal("Provider of the reviewed booking is missing")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load provider")
		}

		// All reads are done; writes follow.
		now := time.Now().UTC()
		current := RatingAggregate{Avg: provider.RatingAvg, Count: provider.RatingCount}

		var next RatingAggregate
		if existing != nil {
			reviewID = existing.ID
			if err := reviewRepo.UpdateReviewContent(ctx, existing.ID, input.Rating, comment, now); err != nil {
				return errors.Wrap(err, "failed to update review")
			}
			next = FoldUpdatedRating(current, existing.Rating, input.Rating)
		} else {
			review := &entity.Review{
				BookingID:  booking.ID,
				CustomerID: callerUID,
				ProviderID: booking.ProviderID,
				Rating:     input.Rating,
				Comment:    comment,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := reviewRepo.CreateReview(ctx, review); err != nil {
				return errors.Wrap(err, "failed to create review")
			}
			reviewID = review.ID
			next = FoldNewRating(current, input.Rating)
		}

		return errors.Wrap(
			providerRepo.UpdateRating(ctx, provider.ID, next.Avg, next.Count, now),
			"failed to update provider rating",
		)
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to execute post review transaction")
	}

	s.log(ctx).Info("Review posted",
		slog.String("review_id", reviewID),
		slog.String("booking_id", input.BookingID),
		slog.Bool("update", input.IsUpdate),
	)

	return reviewID, nil
}

func (s *reviewService) loadOwnReview(ctx context.Context, reviewRepo repository.ReviewRepository, reviewID, callerUID, bookingID string) (*entity.Review, error) {
	review, err := reviewRepo.FindReviewByID(ctx, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load review")
	}

	if review.CustomerID != callerUID {
		return nil, domainerrors.NewPermissionDenied("Not authorized to update this review")
	}

	if review.BookingID != bookingID {
		return nil, domainerrors.NewFailedPrecondition("Review does not belong to this booking")
	}

	return review, nil
}

// FlagReview marks an existing review as flagged for moderation
func (s *reviewService) FlagReview(ctx context.Context, callerUID, reviewID, reason string) error {
	if err := requireCaller(callerUID); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if strings.TrimSpace(reviewID) == "" || reason == "" {
		return domainerrors.NewInvalidArgument("Review ID and reason are required")
	}

	err := s.reviewRepo.FlagReview(ctx, reviewID, entity.ReviewFlag{
		Reason:    reason,
		FlaggedBy: callerUID,
		FlaggedAt: time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to flag review")
	}

	s.log(ctx).Info("Review flagged", slog.String("review_id", reviewID))

	return nil
}
