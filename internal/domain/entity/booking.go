package entity

import (
	"slices"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "requested"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the statuses that hold a provider's time slot.
var ActiveBookingStatuses = []BookingStatus{BookingStatusRequested, BookingStatusAccepted}

// bookingTransitions lists the legal next states for every state.
// Terminal states have no entry.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusRequested: {BookingStatusAccepted, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusAccepted:  {BookingStatusCompleted, BookingStatusCancelled},
}

// String returns the string representation of the BookingStatus.
func (s BookingStatus) String() string {
	return string(s)
}

// IsActive reports whether a booking in this status occupies its slot.
func (s BookingStatus) IsActive() bool {
	return slices.Contains(ActiveBookingStatuses, s)
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return slices.Contains(bookingTransitions[s], next)
}

// BookingAction is a status-transition request issued by a booking party.
type BookingAction string

const (
	BookingActionAccept   BookingAction = "accept"
	BookingActionReject   BookingAction = "reject"
	BookingActionComplete BookingAction = "complete"
	BookingActionCancel   BookingAction = "cancel"
)

// ParseBookingAction converts a raw action string into a BookingAction.
func ParseBookingAction(raw string) (BookingAction, bool) {
	action := BookingAction(raw)
	switch action {
	case BookingActionAccept, BookingActionReject, BookingActionComplete, BookingActionCancel:
		return action, true
	default:
		return "", false
	}
}

// TargetStatus returns the status a booking moves to when the action succeeds.
func (a BookingAction) TargetStatus() BookingStatus {
	switch a {
	case BookingActionAccept:
		return BookingStatusAccepted
	case BookingActionReject:
		return BookingStatusRejected
	case BookingActionComplete:
		return BookingStatusCompleted
	case BookingActionCancel:
		return BookingStatusCancelled
	default:
		return ""
	}
}

// Booking is a scheduled service engagement between a customer and a provider.
type Booking struct {
	ID          string        `json:"id"`           // Document ID.
	CustomerID  string        `json:"customer_id"`  // uid of the customer who requested the booking.
	ProviderID  string        `json:"provider_id"`  // ID of the provider document.
	ServiceID   string        `json:"service_id"`   // ID of a service in the provider's catalog.
	Address     string        `json:"address"`      // Where the service takes place.
	ScheduledAt time.Time     `json:"scheduled_at"` // The booked time slot.
	Status      BookingStatus `json:"status"`       // Current lifecycle state.
	RequestedAt time.Time     `json:"requested_at"` // When the customer requested the booking.
	CreatedAt   time.Time     `json:"created_at"`   // Timestamp of when this booking was created.
	UpdatedAt   time.Time     `json:"updated_at"`   // Timestamp of the last status change.
}
