package entity

import "time"

// Audience is the target segment of an announcement.
type Audience string

const (
	AudienceAll       Audience = "all"
	AudienceCustomers Audience = "customers"
	AudienceProviders Audience = "providers"
	AudienceAdmins    Audience = "admins"
)

// IsValid checks if the Audience is a valid value.
func (a Audience) IsValid() bool {
	switch a {
	case AudienceAll, AudienceCustomers, AudienceProviders, AudienceAdmins:
		return true
	default:
		return false
	}
}

// Role returns the role the audience is restricted to, or nil for everyone.
func (a Audience) Role() *Role {
	var role Role
	switch a {
	case AudienceCustomers:
		role = RoleCustomer
	case AudienceProviders:
		role = RoleProvider
	case AudienceAdmins:
		role = RoleAdmin
	default:
		return nil
	}

	return &role
}

// Announcement is an append-only broadcast message authored by an admin.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Audience  Audience  `json:"audience"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
