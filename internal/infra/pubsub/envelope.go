package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"allserve/internal/domain/service"
	"allserve/internal/errors"
)

// PushEnvelope represents the structure of a Pub/Sub push message.
// Google Pub/Sub uses this format when pushing to HTTP endpoints.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes returns the message attributes used for filtering and tracing
func eventAttributes(event *service.PushEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"target":   event.Target,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushEnvelope wraps an event the way a push subscription delivers it
func NewPushEnvelope(event *service.PushEvent, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.EventID
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return envelope, nil
}

// DecodeEvent extracts the push event carried by the envelope
func (e *PushEnvelope) DecodeEvent() (*service.PushEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.PushEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse push event")
	}

	return &event, nil
}

// RequestID returns the tracing id from the attributes, falling back to the event
func (e *PushEnvelope) RequestID(event *service.PushEvent) string {
	if requestID := e.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	return event.RequestID
}
