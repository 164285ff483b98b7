package model

import "time"

// ReviewModel is the document shape of the 'reviews' collection.
type ReviewModel struct {
	ReviewID   string     `firestore:"reviewId"`
	BookingID  string     `firestore:"bookingId"`
	CustomerID string     `firestore:"customerId"`
	ProviderID string     `firestore:"providerId"`
	Rating     int        `firestore:"rating"`
	Comment    string     `firestore:"comment"`
	Flagged    bool       `firestore:"flagged"`
	FlagReason string     `firestore:"flagReason"`
	FlaggedBy  string     `firestore:"flaggedBy,omitempty"`
	FlaggedAt  *time.Time `firestore:"flaggedAt,omitempty"`
	CreatedAt  time.Time  `firestore:"createdAt"`
	UpdatedAt  time.Time  `firestore:"updatedAt"`
}
