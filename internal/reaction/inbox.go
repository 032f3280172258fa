package reaction

import (
	"context"
	"log/slog"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// runThroughInboxAction handles one follower: it stores the message in the
// follower's inbox and, when the follower's reaction rules match, spawns a
// push-notification child.
type runThroughInboxAction struct {
	factory *ActionFactory
	user    *entity.User
}

func (a *runThroughInboxAction) ActOnMessage(ctx context.Context, msg *entity.Message) ([]Action, error) {
	if err := CheckMessage(msg); err != nil {
		return nil, err
	}
	if a.user == nil || a.user.ID == uuid.Nil {
		return nil, errors.Wrap(ErrInvalidMessage, "follower is unset")
	}

	// Inbox placement is best effort; a storage hiccup must not cost the
	// follower their push notification.
	if err := a.factory.inboxRepo.SaveMessageForUser(ctx, a.user, msg, a.factory.retention); err != nil {
		a.factory.logger.Warn("failed to save message to follower inbox",
			slog.String("user_id", a.user.ID.String()),
			slog.String("message_id", msg.ID.String()),
			slog.Any("error", err),
		)
	}

	rules, err := a.factory.prefsRepo.GetReactionRules(ctx, a.user.ID, msg.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch reaction rules")
	}

	matched, err := a.factory.matchAny.Matches(msg, rules)
	if err != nil {
		// Configuration errors abort this follower's evaluation only.
		return nil, errors.Wrapf(err, "evaluate reaction rules for user %s", a.user.ID)
	}
	if !matched {
		return nil, nil
	}

	return []Action{a.factory.SendPushNotification(a.user.ID)}, nil
}
