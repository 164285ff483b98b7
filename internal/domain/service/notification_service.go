package service

import (
	"context"

	"allserve/internal/domain/entity"
)

// MaxTokensPerBatch is the largest number of addresses a single multicast may carry.
const MaxTokensPerBatch = 500

// BatchResult reports the outcome of one multicast send.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	FailedTokens []string // Every address the gateway reported as failed, in input order.
}

// NotificationService defines the interface for push notification gateways
type NotificationService interface {
	// SendBatchNotification sends one message to at most MaxTokensPerBatch addresses.
	// A non-nil error means the whole batch was rejected.
	SendBatchNotification(ctx context.Context, msg *entity.PushMessage) (*BatchResult, error)
}
