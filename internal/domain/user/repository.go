package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update persists changes to an existing user
	Update(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by email; returns (nil, nil) when no user exists
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List retrieves users matching the filter
	List(ctx context.Context, filter ListFilter) ([]*User, error)
}

// ListFilter represents filtering options for the user list
type ListFilter struct {
	Email string
	Role  string
}
