package user

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id           uint
	name         string
	email        *vo.Email
	passwordHash string
	role         vo.Role
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user aggregate with initial values.
// The password must already be hashed by the caller.
func NewUser(name string, email *vo.Email, passwordHash string, role vo.Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		name:         strings.TrimSpace(name),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, name string, email *vo.Email, passwordHash string, role vo.Role, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the user ID
func (u *User) ID() uint {
	return u.id
}

// SetID sets the user ID after persistence (can only be set once)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangePasswordHash replaces the stored password hash.
// The new password must already be hashed by the caller.
func (u *User) ChangePasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

// Name returns the user's display name
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email
func (u *User) Email() *vo.Email {
	return u.email
}

// PasswordHash returns the stored password hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role
func (u *User) Role() vo.Role {
	return u.role
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}
