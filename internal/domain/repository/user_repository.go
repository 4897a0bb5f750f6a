// Package repository defines the persistence interfaces the domain depends on.
// Concrete implementations live in internal/infra/persistence.
package repository

import (
	"context"

	"evently/internal/domain/entity"
	"evently/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user record matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the account store: it persists and retrieves user records
// keyed by unique email and by id.
type UserRepository interface {
	// Create persists a new user record. The storage layer enforces email
	// uniqueness with a unique index; a violation surfaces as the
	// duplicate-account domain error.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email. Returns ErrUserNotFound when
	// no record matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id. Returns ErrUserNotFound when no
	// record matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
