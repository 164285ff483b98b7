package service

import (
	"context"

	"allserve/internal/domain/entity"
)

// Push event kinds, selecting how the worker resolves addresses.
const (
	PushTargetUser     = "user"
	PushTargetAudience = "audience"
	PushTargetTokens   = "tokens"
)

// PushEvent is a notification job published for off-process dispatch.
type PushEvent struct {
	EventID   string            `json:"event_id"`
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	Target    string            `json:"target"`               // One of the PushTarget kinds
	UserID    string            `json:"user_id,omitempty"`
	Audience  entity.Audience   `json:"audience,omitempty"`
	Tokens    []string          `json:"tokens,omitempty"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	Priority  entity.Priority   `json:"priority"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPushEvent publishes a push event for async processing
	PublishPushEvent(ctx context.Context, event *PushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
