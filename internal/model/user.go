package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user. PasswordHash holds the salted one-way
// digest of the password; plaintext never crosses the store boundary.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterUserParams contains parameters to register a user.
type RegisterUserParams struct {
	Username string
	Email    string
	Password string
}

// UpdateUserParams contains a partial user update. A non-nil Password
// carries plaintext and is always re-hashed by the update path; callers
// cannot supply a pre-hashed value.
type UpdateUserParams struct {
	ID       uuid.UUID
	Username *string
	Email    *string
	Password *string
}
