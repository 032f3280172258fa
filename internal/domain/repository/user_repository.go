package repository

import (
	"context"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines user lookup.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound when the user is absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
