package usecase

import (
	"context"
	"fmt"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/service"
	"allserve/internal/errors"
)

// Notification is the content of a push message, independent of its addresses.
type Notification struct {
	Title    string
	Body     string
	Data     map[string]string
	Priority entity.Priority
}

// DeliveryReport summarizes one dispatch.
type DeliveryReport struct {
	Requested int // Distinct non-empty addresses.
	Sent      int
	Failed    int
	Pruned    int // Profiles updated by stale address removal.
}

// NotificationUsecase resolves addresses and pushes messages through the gateway.
type NotificationUsecase interface {
	// NotifyUser pushes to every address of a profile. Missing profile or no addresses is a no-op.
	NotifyUser(ctx context.Context, uid string, n *Notification) (*DeliveryReport, error)

	// NotifyAudience pushes to every address of every profile in the audience.
	NotifyAudience(ctx context.Context, audience entity.Audience, n *Notification) (*DeliveryReport, error)

	// Send pushes to the given addresses and prunes the ones the gateway reports as failed.
	Send(ctx context.Context, tokens []string, n *Notification) (*DeliveryReport, error)

	// Deliver runs a published push event through the matching Notify or Send call.
	Deliver(ctx context.Context, event *service.PushEvent) (*DeliveryReport, error)
}

// Dispatcher runs notification jobs after commit without blocking the caller.
// Outcomes are logged, never returned.
type Dispatcher interface {
	Dispatch(ctx context.Context, event *service.PushEvent)

	// Wait blocks until every job dispatched so far has finished.
	Wait()

	// Close waits for outstanding jobs and releases resources.
	Close() error
}

// retryableError wraps an error to indicate the job may succeed if retried
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
