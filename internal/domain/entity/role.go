// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleCustomer browses, favorites and reviews stores.
	RoleCustomer Role = "customer"
	// RoleVendor requests stores and lists products in them.
	RoleVendor Role = "vendor"
	// RoleAdmin moderates store requests and may delete any vendor or store.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsRegistrable reports whether an account may sign up with this role.
// The admin account is never self-registered.
func (r Role) IsRegistrable() bool {
	return r == RoleCustomer || r == RoleVendor
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
