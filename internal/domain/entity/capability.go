package entity

import "github.com/google/uuid"

// Capability is the privilege level an operation requires.
type Capability string

const (
	CapabilityPublic        Capability = "public"
	CapabilityAuthenticated Capability = "authenticated"
	CapabilityVendor        Capability = "vendor"
	CapabilityAdmin         Capability = "admin"
)

// capabilityGrants lists the roles admitted by each role-restricted capability.
// Admin is granted vendor rights explicitly so that support staff can act on
// any vendor-level operation.
var capabilityGrants = map[Capability]Roles{
	CapabilityVendor: {RoleVendor, RoleAdmin},
	CapabilityAdmin:  {RoleAdmin},
}

// GrantedRoles returns the roles admitted by a role-restricted capability.
// Public and authenticated capabilities return nil.
func (c Capability) GrantedRoles() Roles {
	return capabilityGrants[c]
}

// Principal is an authenticated caller.
type Principal struct {
	AccountID uuid.UUID
	Role      Role
}

// Can reports whether the principal satisfies the capability.
func (p *Principal) Can(c Capability) bool {
	switch c {
	case CapabilityPublic:
		return true
	case CapabilityAuthenticated:
		return p != nil && p.Role.IsValid()
	}

	if p == nil {
		return false
	}

	return capabilityGrants[c].Contains(p.Role)
}

// IsAdmin reports whether the principal holds the admin capability.
func (p *Principal) IsAdmin() bool {
	return p.Can(CapabilityAdmin)
}

// Owns reports whether the principal is the owner of a vendor-owned resource.
func (p *Principal) Owns(ownerID uuid.UUID) bool {
	return p != nil && p.AccountID == ownerID
}
