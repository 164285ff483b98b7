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
	"allserve/internal/domain/service"
	"allserve/internal/errors"
	"allserve/internal/usecase"

	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager    repository.TransactionManager
	providerRepo repository.ProviderRepository
	dispatcher   usecase.Dispatcher
	logger       *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProviderRepo repository.ProviderRepository
	Dispatcher   usecase.Dispatcher
	Logger       *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:    params.TxManager,
		providerRepo: params.ProviderRepo,
		dispatcher:   params.Dispatcher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateBooking validates the provider and service, then claims the slot in a transaction
func (s *bookingService) CreateBooking(ctx context.Context, callerUID string, input *usecase.CreateBookingInput) (*usecase.CreateBookingOutput, error) {
	if err := requireCaller(callerUID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.ProviderID) == "" || strings.TrimSpace(input.ServiceID) == "" || input.ScheduledAt.IsZero() {
		return nil, domainerrors.NewInvalidArgument("providerId, serviceId and scheduledAt are required")
	}

	provider, err := s.providerRepo.FindProviderByID(ctx, input.ProviderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrProviderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load provider")
	}

	if !provider.IsBookable() {
		return nil, domainerrors.ErrProviderUnavailable
	}

	if !provider.OffersService(input.ServiceID) {
		return nil, domainerrors.ErrServiceNotFound
	}

	// Slots are identified at microsecond precision, the finest a stored timestamp keeps.
	scheduledAt := input.ScheduledAt.UTC().Truncate(time.Microsecond)

	var booking *entity.Booking
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		bookingRepo := txRepoFactory.NewBookingRepository()

		conflicts, findErr := bookingRepo.FindActiveBookingsAtSlot(ctx, input.ProviderID, scheduledAt)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to query slot bookings")
		}
		if len(conflicts) > 0 {
			return domainerrors.ErrSlotAlreadyBooked
		}

		now := time.Now().UTC()
		booking = &entity.Booking{
			CustomerID:  callerUID,
			ProviderID:  input.ProviderID,
			ServiceID:   input.ServiceID,
			Address:     input.Address,
			ScheduledAt: scheduledAt,
			Status:      entity.BookingStatusRequested,
			RequestedAt: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		return errors.Wrap(bookingRepo.CreateBooking(ctx, booking), "failed to create booking")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create booking transaction")
	}

	s.log(ctx).Info("Booking created",
		slog.String("booking_id", booking.ID),
		slog.String("provider_id", booking.ProviderID),
		slog.Time("scheduled_at", booking.ScheduledAt),
	)

	s.dispatcher.Dispatch(ctx, &service.PushEvent{
		Target: service.PushTargetUser,
		UserID: recipientOf(provider),
		Title:  "New Booking Request",
		Body:   "You have a new booking request",
		Data: map[string]string{
			"type":       entity.NotificationTypeBookingRequest,
			"bookingId":  booking.ID,
			"customerId": callerUID,
		},
		Priority: entity.PriorityHigh,
	})

	return &usecase.CreateBookingOutput{
		BookingID: booking.ID,
		Status:    booking.Status,
	}, nil
}

// bookingNotice is the counterparty message sent after a status change.
type bookingNotice struct {
	title    string
	body     string
	kind     string
	priority entity.Priority
}

var bookingNotices = map[entity.BookingAction]bookingNotice{
	entity.BookingActionAccept:   {"Booking Accepted", "Your booking has been accepted!", entity.NotificationTypeBookingAccepted, entity.PriorityHigh},
	entity.BookingActionReject:   {"Booking Declined", "Your booking has been rejected", entity.NotificationTypeBookingRejected, entity.PriorityNormal},
	entity.BookingActionComplete: {"Service Completed", "Your service has been completed!", entity.NotificationTypeBookingCompleted, entity.PriorityNormal},
	entity.BookingActionCancel:   {"Booking Cancelled", "Your booking has been cancelled", entity.NotificationTypeBookingCancelled, entity.PriorityNormal},
}

// UpdateBookingStatus checks the caller's relationship and the state machine, then applies the action
func (s *bookingService) UpdateBookingStatus(ctx context.Context, callerUID, bookingID, rawAction string) (entity.BookingStatus, error) {
	if err := requireCaller(callerUID); err != nil {
		return "", err
	}

	action, ok := entity.ParseBookingAction(rawAction)
	if !ok {
		return "", domainerrors.ErrInvalidBookingAction
	}

	if strings.TrimSpace(bookingID) == "" {
		return "", domainerrors.NewInvalidArgument("bookingId is required")
	}

	target := action.TargetStatus()

	var (
		booking  *entity.Booking
		provider *entity.Provider
	)
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		bookingRepo := txRepoFactory.NewBookingRepository()

		var findErr error
		booking, findErr = bookingRepo.FindBookingByID(ctx, bookingID)
		if errors.Is(findErr, repository.ErrNotFound) {
			return domainerrors.ErrBookingNotFound
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load booking")
		}

		provider, findErr = txRepoFactory.NewProviderRepository().FindProviderByID(ctx, booking.ProviderID)
		if findErr != nil && !errors.Is(findErr, repository.ErrNotFound) {
			return errors.Wrap(findErr, "failed to load booking provider")
		}

		if err := authorizeBookingAction(callerUID, action, booking, provider); err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(target) {
			if action == entity.BookingActionCancel {
				return domainerrors.ErrBookingNotCancellable
			}

			return domainerrors.ErrInvalidTransition.WithDetails(
				string(booking.Status) + " -> " + string(target),
			)
		}

		return errors.Wrap(
			bookingRepo.UpdateBookingStatus(ctx, bookingID, target, time.Now().UTC()),
			"failed to update booking status",
		)
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to execute update booking status transaction")
	}

	s.log(ctx).Info("Booking status updated",
		slog.String("booking_id", bookingID),
		slog.String("from", string(booking.Status)),
		slog.String("to", string(target)),
	)

	s.notifyCounterparty(ctx, action, booking, provider)

	return target, nil
}

// authorizeBookingAction applies the relationship rule for each action.
func authorizeBookingAction(callerUID string, action entity.BookingAction, booking *entity.Booking, provider *entity.Provider) error {
	isProvider := isProviderParty(callerUID, booking, provider)
	isCustomer := callerUID == booking.CustomerID

	switch action {
	case entity.BookingActionAccept:
		if !isProvider {
			return domainerrors.NewPermissionDenied("Only provider can accept bookings")
		}
	case entity.BookingActionReject:
		if !isProvider {
			return domainerrors.NewPermissionDenied("Only provider can reject bookings")
		}
	case entity.BookingActionComplete:
		if !isProvider && !isCustomer {
			return domainerrors.NewPermissionDenied("Only provider or customer can complete bookings")
		}
	case entity.BookingActionCancel:
		if !isCustomer {
			return domainerrors.NewPermissionDenied("Only customer can cancel bookings")
		}
	}

	return nil
}

func (s *bookingService) notifyCounterparty(ctx context.Context, action entity.BookingAction, booking *entity.Booking, provider *entity.Provider) {
	notice := bookingNotices[action]

	event := &service.PushEvent{
		Target:   service.PushTargetUser,
		Title:    notice.title,
		Body:     notice.body,
		Priority: notice.priority,
		Data: map[string]string{
			"type":      notice.kind,
			"bookingId": booking.ID,
		},
	}

	if action == entity.BookingActionCancel {
		event.UserID = booking.ProviderID
		if provider != nil {
			event.UserID = recipientOf(provider)
		}
		event.Data["customerId"] = booking.CustomerID
	} else {
		event.UserID = booking.CustomerID
		event.Data["providerId"] = booking.ProviderID
	}

	s.dispatcher.Dispatch(ctx, event)
}

// recipientOf returns the uid whose profile receives the provider's notifications.
func recipientOf(provider *entity.Provider) string {
	if provider.OwnerUID != "" {
		return provider.OwnerUID
	}

	return provider.ID
}
