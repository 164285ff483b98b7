package model

import "time"

// UserModel is the document shape of the 'users' collection, keyed by uid.
type UserModel struct {
	Role         string    `firestore:"role"`
	Name         string    `firestore:"name"`
	Email        string    `firestore:"email"`
	DeviceTokens []string  `firestore:"deviceTokens"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}
