package repository

import (
	"context"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowerRepository materializes the application/follower relation.
type FollowerRepository interface {
	// GetApplicationFollowers returns every user following the application.
	// An application with no followers yields an empty slice, not an error.
	GetApplicationFollowers(ctx context.Context, appID uuid.UUID) ([]*entity.User, error)
}
