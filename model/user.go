package model

import (
	"strings"
	"time"
)

// Role is the administrative role of a user
type Role string

const (
	RoleBasic         Role = "basic"
	RoleAdmin         Role = "admin"
	RoleCurator       Role = "curator"
	RoleGlobalCurator Role = "global_curator"
	RoleLimited       Role = "limited"
)

// ParseRole converts a free-form role string into a Role.
// Unknown values map to RoleBasic.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleCurator:
		return RoleCurator
	case RoleGlobalCurator:
		return RoleGlobalCurator
	case RoleLimited:
		return RoleLimited
	default:
		return RoleBasic
	}
}

// User represents the signed-in user of the admin console
type User struct {
	// UserID is the unique identifier for the user
	UserID string `json:"id"`

	Email string `json:"email"`
	Role  Role   `json:"role"`

	// Metadata
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new user
func NewUser(userID, email string, role Role) *User {
	return &User{
		UserID:    userID,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// IsAdmin reports whether the user has the full admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsCurator reports whether the role has restricted (curator) admin scope
func (r Role) IsCurator() bool {
	return r == RoleCurator || r == RoleGlobalCurator
}
