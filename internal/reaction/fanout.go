package reaction

import (
	"context"
	"log/slog"

	"herald/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// followerFanoutAction expands into one per-follower action for every
// follower of the message's originating application.
type followerFanoutAction struct {
	factory *ActionFactory
}

func (a *followerFanoutAction) ActOnMessage(ctx context.Context, msg *entity.Message) ([]Action, error) {
	if err := CheckMessage(msg); err != nil {
		return nil, err
	}

	followers, err := a.factory.followerRepo.GetApplicationFollowers(ctx, msg.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch application followers")
	}

	a.factory.logger.Debug("expanding follower fan-out",
		slog.String("application_id", msg.ApplicationID.String()),
		slog.Int("followers", len(followers)),
	)

	return lo.Map(followers, func(user *entity.User, _ int) Action {
		return a.factory.RunThroughInbox(user)
	}), nil
}
