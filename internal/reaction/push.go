package reaction

import (
	"context"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
)

// sendPushNotificationAction is a leaf: it hands one user's delivery to the
// dispatcher and never expands further.
type sendPushNotificationAction struct {
	factory *ActionFactory
	userID  uuid.UUID
}

func (a *sendPushNotificationAction) ActOnMessage(ctx context.Context, msg *entity.Message) ([]Action, error) {
	if err := CheckMessage(msg); err != nil {
		return nil, err
	}

	return nil, a.factory.dispatcher.Dispatch(ctx, a.userID, msg)
}
