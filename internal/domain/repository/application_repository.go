// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrApplicationNotFound is returned when an application is not found.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepository defines application lookup.
type ApplicationRepository interface {
	// GetByID retrieves an application by its stable ID.
	// Returns ErrApplicationNotFound when the application is absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
}
