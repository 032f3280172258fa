package reaction

import (
	"log/slog"

	"herald/internal/domain/entity"
	"herald/internal/domain/repository"
	"herald/internal/reaction/matcher"

	"github.com/google/uuid"
)

// ActionFactory constructs the concrete actions of the reaction tree. Each
// action closes over its own immutable inputs plus the shared collaborators
// held here.
type ActionFactory struct {
	logger       *slog.Logger
	followerRepo repository.FollowerRepository
	inboxRepo    repository.InboxRepository
	prefsRepo    repository.UserPreferencesRepository
	matchAny     matcher.Algorithm
	dispatcher   *Dispatcher
	retention    entity.Retention
}

// NewActionFactory creates the action factory.
func NewActionFactory(
	logger *slog.Logger,
	followerRepo repository.FollowerRepository,
	inboxRepo repository.InboxRepository,
	prefsRepo repository.UserPreferencesRepository,
	dispatcher *Dispatcher,
	retention entity.Retention,
) *ActionFactory {
	return &ActionFactory{
		logger:       logger,
		followerRepo: followerRepo,
		inboxRepo:    inboxRepo,
		prefsRepo:    prefsRepo,
		matchAny:     matcher.NewAny(matcher.NewFactory()),
		dispatcher:   dispatcher,
		retention:    retention,
	}
}

// RunThroughFollowerInboxes returns the root fan-out action: one child per
// follower of the message's originating application.
func (f *ActionFactory) RunThroughFollowerInboxes() Action {
	return &followerFanoutAction{factory: f}
}

// RunThroughInbox returns the per-follower action for one user.
func (f *ActionFactory) RunThroughInbox(user *entity.User) Action {
	return &runThroughInboxAction{factory: f, user: user}
}

// SendPushNotification returns the action that pushes a message to every
// device of one user.
func (f *ActionFactory) SendPushNotification(userID uuid.UUID) Action {
	return &sendPushNotificationAction{factory: f, userID: userID}
}
