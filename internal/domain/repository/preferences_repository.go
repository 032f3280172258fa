package repository

import (
	"context"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
)

// UserPreferencesRepository exposes a user's notification preferences:
// registered mobile devices and configured reaction rules.
type UserPreferencesRepository interface {
	// GetMobileDevices returns the user's registered devices.
	// A user with no devices yields an empty slice, not an error.
	GetMobileDevices(ctx context.Context, userID uuid.UUID) ([]*entity.MobileDevice, error)

	// GetReactionRules returns the rules the user configured for an
	// application. No rules configured yields an empty slice.
	GetReactionRules(ctx context.Context, userID, appID uuid.UUID) ([]entity.ReactionRule, error)
}
