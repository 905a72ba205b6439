package valueobjects

import (
	"fmt"
	"strings"
)

// Role represents a user's access level within the helpdesk.
type Role string

const (
	// RoleClient can submit tickets and see their own.
	RoleClient Role = "client"
	// RoleDeveloper can triage any ticket and manage users.
	RoleDeveloper Role = "developer"
)

// NewRole creates a Role from a raw string, rejecting unknown values.
func NewRole(value string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch Role(normalized) {
	case RoleClient, RoleDeveloper:
		return Role(normalized), nil
	default:
		return "", fmt.Errorf("invalid role: %s", value)
	}
}

func (r Role) String() string {
	return string(r)
}

// IsDeveloper reports whether the role grants triage access.
func (r Role) IsDeveloper() bool {
	return r == RoleDeveloper
}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleDeveloper
}
