package entity

// Priority is the delivery priority of a push notification.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Notification types carried in the push data payload.
const (
	NotificationTypeBookingRequest   = "booking_request"
	NotificationTypeBookingAccepted  = "booking_accepted"
	NotificationTypeBookingRejected  = "booking_rejected"
	NotificationTypeBookingCompleted = "booking_completed"
	NotificationTypeBookingCancelled = "booking_cancelled"
	NotificationTypeProviderApproved = "provider_approved"
	NotificationTypeProviderRejected = "provider_rejected"
	NotificationTypeAnnouncement     = "announcement"
)

// PushMessage is a push notification addressed to a set of device tokens.
type PushMessage struct {
	Tokens   []string
	Title    string
	Body     string
	Data     map[string]string
	Priority Priority
}
