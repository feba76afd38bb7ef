// Package model holds the board membership domain types and the
// request payloads accepted by the member endpoints.
package model

import "time"

// Role is a board membership role.
type Role string

const (
	RoleMember     Role = "MEMBER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Roles returns the role registry in ascending privilege order.
func Roles() []Role {
	return []Role{RoleMember, RoleAdmin, RoleSuperAdmin}
}

// IsValid reports whether r is a registered role. Matching is exact.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Protected reports whether memberships with this role cannot be removed.
func (r Role) Protected() bool {
	return r == RoleSuperAdmin
}

// Board owns an ordered list of memberships.
type Board struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is the account a membership refers to.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Member is a membership with its user reference resolved.
type Member struct {
	Role Role `json:"role"`
	User User `json:"user"`
}
