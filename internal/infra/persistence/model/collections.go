// Package model holds the Firestore document shapes of every collection.
package model

// Collection names.
const (
	CollectionUsers          = "users"
	CollectionProviders      = "providers"
	CollectionBookings       = "bookings"
	CollectionReviews        = "reviews"
	CollectionAnnouncements  = "announcements"
	CollectionAdminAuditLogs = "adminAuditLogs"
)
