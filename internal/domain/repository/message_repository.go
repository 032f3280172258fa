package repository

import (
	"context"

	"herald/internal/domain/entity"
)

// MessageRepository persists submitted messages.
type MessageRepository interface {
	// SaveMessage stores a message with the given retention policy.
	SaveMessage(ctx context.Context, msg *entity.Message, retention entity.Retention) error
}
