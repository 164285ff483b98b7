package entity

import "time"

const (
	// MinRating is the lowest rating a customer can give.
	MinRating = 1
	// MaxRating is the highest rating a customer can give.
	MaxRating = 5
)

// Review is a customer's rating of a completed booking.
type Review struct {
	ID         string     `json:"id"`
	BookingID  string     `json:"booking_id"`
	CustomerID string     `json:"customer_id"`
	ProviderID string     `json:"provider_id"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	Flagged    bool       `json:"flagged"`
	FlagReason string     `json:"flag_reason,omitempty"`
	FlaggedBy  string     `json:"flagged_by,omitempty"`
	FlaggedAt  *time.Time `json:"flagged_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ReviewFlag carries the fields written when a review is flagged.
type ReviewFlag struct {
	Reason    string
	FlaggedBy string
	FlaggedAt time.Time
}
