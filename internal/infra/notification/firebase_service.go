// Package notification implements the push gateway on Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"allserve/config"
	"allserve/internal/domain/constants"
	"allserve/internal/domain/entity"
	"allserve/internal/domain/service"
	"allserve/internal/errors"
	"allserve/internal/infra/firebaseapp"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
)

const (
	clickAction = "FLUTTER_NOTIFICATION_CLICK"
	sound       = "default"
	apnsBadge   = 1
)

// multicastSender is the subset of *messaging.Client used by the gateway.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client    multicastSender
	channelID string
}

// Params holds dependencies for the FCM gateway, injected by Fx
type Params struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Firebase firebaseapp.Loader
	Logger   *slog.Logger
}

// NewFirebaseService creates the FCM gateway. It returns a nil gateway when
// notification.mode is disabled, so no Firebase credentials are needed.
func NewFirebaseService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Notification
	if cfg.Mode == constants.NotificationModeDisabled {
		params.Logger.Info("Push notifications disabled, no FCM gateway created")

		return nil, nil
	}

	app, err := params.Firebase()
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return NewGateway(client, cfg.AndroidChannelID), nil
}

// NewGateway wraps a multicast sender as a NotificationService.
func NewGateway(client multicastSender, channelID string) service.NotificationService {
	return &firebaseService{
		client:    client,
		channelID: channelID,
	}
}

// SendBatchNotification sends one multicast of at most MaxTokensPerBatch addresses.
// Every address whose send response carries an error is reported as failed.
func (s *firebaseService) SendBatchNotification(ctx context.Context, msg *entity.PushMessage) (*service.BatchResult, error) {
	if len(msg.Tokens) == 0 {
		return &service.BatchResult{}, nil
	}
	if len(msg.Tokens) > service.MaxTokensPerBatch {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(msg.Tokens), service.MaxTokensPerBatch)
	}

	response, err := s.client.SendEachForMulticast(ctx, s.buildMessage(msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse != nil && sendResponse.Error != nil && idx < len(msg.Tokens) {
			result.FailedTokens = append(result.FailedTokens, msg.Tokens[idx])
		}
	}

	return result, nil
}

func (s *firebaseService) buildMessage(msg *entity.PushMessage) *messaging.MulticastMessage {
	androidPriority, notificationPriority := "normal", messaging.PriorityDefault
	if msg.Priority == entity.PriorityHigh {
		androidPriority, notificationPriority = "high", messaging.PriorityHigh
	}

	badge := apnsBadge

	return &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: androidPriority,
			Notification: &messaging.AndroidNotification{
				ChannelID:   s.channelID,
				Priority:    notificationPriority,
				Sound:       sound,
				ClickAction: clickAction,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: msg.Title,
						Body:  msg.Body,
					},
					Badge: &badge,
					Sound: sound,
				},
			},
		},
	}
}
