// Package entity contains the core business objects of the project.
package entity

// Role represents the marketplace role of a user.
type Role string

const (
	// RoleBuyer indicates a buyer browsing produce.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates a farmer listing produce.
	RoleSeller Role = "seller"
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
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}
