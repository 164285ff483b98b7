package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"

	deliverycontext "allserve/internal/delivery/context"
	"allserve/internal/domain/entity"
	"allserve/internal/domain/repository"
	"allserve/internal/domain/service"
	"allserve/internal/errors"
	"allserve/internal/usecase"

	"go.uber.org/fx"
)

type notificationService struct {
	userRepo repository.UserRepository
	gateway  service.NotificationService
	logger   *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Gateway  service.NotificationService `optional:"true"`
	Logger   *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		userRepo: params.UserRepo,
		gateway:  params.Gateway,
		logger:   params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyUser pushes to every address registered on a profile
func (s *notificationService) NotifyUser(ctx context.Context, uid string, n *usecase.Notification) (*usecase.DeliveryReport, error) {
	profile, err := s.userRepo.FindUserByID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		s.log(ctx).Debug("No profile for notification recipient", slog.String("uid", uid))

		return &usecase.DeliveryReport{}, nil
	}
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to load recipient profile"))
	}

	return s.Send(ctx, profile.DeviceTokens, n)
}

// NotifyAudience pushes to every address of every profile in the audience
func (s *notificationService) NotifyAudience(ctx context.Context, audience entity.Audience, n *usecase.Notification) (*usecase.DeliveryReport, error) {
	profiles, err := s.userRepo.ListUsers(ctx, audience.Role())
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to list audience profiles"))
	}

	var tokens []string
	for _, profile := range profiles {
		tokens = append(tokens, profile.DeviceTokens...)
	}

	return s.Send(ctx, tokens, n)
}

// Send pushes to the given addresses in gateway-sized chunks and prunes failed addresses
func (s *notificationService) Send(ctx context.Context, tokens []string, n *usecase.Notification) (*usecase.DeliveryReport, error) {
	unique := uniqueTokens(tokens)
	report := &usecase.DeliveryReport{Requested: len(unique)}
	if len(unique) == 0 {
		return report, nil
	}

	if s.gateway == nil {
		s.log(ctx).Warn("Push gateway not configured, skipping notification",
			slog.String("title", n.Title),
			slog.Int("token_count", len(unique)),
		)

		return report, nil
	}

	data := withTimestamp(n.Data, time.Now())

	var failedTokens []string
	for batch := range slices.Chunk(unique, service.MaxTokensPerBatch) {
		result, err := s.gateway.SendBatchNotification(ctx, &entity.PushMessage{
			Tokens:   batch,
			Title:    n.Title,
			Body:     n.Body,
			Data:     data,
			Priority: n.Priority,
		})
		if err != nil {
			s.log(ctx).Error("Failed to send notification batch",
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			report.Failed += len(batch)

			continue
		}

		report.Sent += result.SuccessCount
		report.Failed += result.FailureCount
		failedTokens = append(failedTokens, result.FailedTokens...)
	}

	if len(failedTokens) > 0 {
		pruned, err := s.userRepo.RemoveDeviceTokens(ctx, failedTokens)
		if err != nil {
			s.log(ctx).Warn("Failed to prune failed device tokens",
				slog.Int("token_count", len(failedTokens)),
				slog.Any("error", err),
			)
		}
		report.Pruned = pruned
	}

	s.log(ctx).Info("Notification sent",
		slog.String("title", n.Title),
		slog.Int("requested", report.Requested),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("pruned", report.Pruned),
	)

	return report, nil
}

// Deliver runs a push event through the call matching its target
func (s *notificationService) Deliver(ctx context.Context, event *service.PushEvent) (*usecase.DeliveryReport, error) {
	n := &usecase.Notification{
		Title:    event.Title,
		Body:     event.Body,
		Data:     event.Data,
		Priority: event.Priority,
	}

	switch event.Target {
	case service.PushTargetUser:
		return s.NotifyUser(ctx, event.UserID, n)
	case service.PushTargetAudience:
		return s.NotifyAudience(ctx, event.Audience, n)
	case service.PushTargetTokens:
		return s.Send(ctx, event.Tokens, n)
	default:
		return nil, errors.Errorf("unknown push target %q", event.Target)
	}
}

// uniqueTokens drops empty addresses and duplicates, keeping first-seen order.
func uniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}

	return unique
}

func withTimestamp(data map[string]string, now time.Time) map[string]string {
	out := make(map[string]string, len(data)+1)
	maps.Copy(out, data)
	out["timestamp"] = now.UTC().Format(time.RFC3339)

	return out
}
