// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user profile can have in the marketplace.
type Role string

const (
	// RoleCustomer indicates a customer who books services.
	RoleCustomer Role = "customer"
	// RoleProvider indicates a service provider.
	RoleProvider Role = "provider"
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}
