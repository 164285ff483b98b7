package model

import "time"

// BookingModel is the document shape of the 'bookings' collection.
type BookingModel struct {
	CustomerID  string    `firestore:"customerId"`
	ProviderID  string    `firestore:"providerId"`
	ServiceID   string    `firestore:"serviceId"`
	Address     string    `firestore:"address"`
	ScheduledAt time.Time `firestore:"scheduledAt"`
	Status      string    `firestore:"status"`
	RequestedAt time.Time `firestore:"requestedAt"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}
