// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an actor can have in the back office.
type Role string

const (
	// RoleAdmin indicates a bureau administrator; the only role allowed to
	// set the per-track admin-approval fields.
	RoleAdmin Role = "admin"
	// RoleEmployee indicates a regular bureau employee who works the
	// customers assigned to them.
	RoleEmployee Role = "employee"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Actor identifies the authenticated employee performing an operation.
type Actor struct {
	UserID string
	Role   Role
}

// CanSetAdminFields reports whether the actor may write admin-only track
// fields (the admin-approval gates).
func (a Actor) CanSetAdminFields() bool {
	return a.Role == RoleAdmin
}
