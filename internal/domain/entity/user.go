// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserProfile is the profile document of an authenticated identity.
// The ID is the identity provider's uid.
type UserProfile struct {
	ID           string    `json:"id"`            // The identity provider uid.
	Role         Role      `json:"role"`          // The marketplace role of this identity.
	Name         string    `json:"name"`          // Display name.
	Email        string    `json:"email"`         // Contact email.
	DeviceTokens []string  `json:"device_tokens"` // Registered push-notification addresses.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when this profile was created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}

// IsAdmin reports whether the profile holds the admin role.
func (u *UserProfile) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
