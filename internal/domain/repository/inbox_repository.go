package repository

import (
	"context"

	"herald/internal/domain/entity"
)

// InboxRepository stores messages in per-user inboxes.
type InboxRepository interface {
	// SaveMessageForUser places a message in the user's inbox with the
	// given retention policy.
	SaveMessageForUser(ctx context.Context, user *entity.User, msg *entity.Message, retention entity.Retention) error
}
