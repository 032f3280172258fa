// Package reaction implements the action-expansion engine that fans a
// message out to followers and their devices.
package reaction

import (
	"context"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidMessage is returned when a nil message, or one lacking its
// identifier or application reference, reaches an action or the dispatcher.
// It fails that unit of work only.
var ErrInvalidMessage = errors.New("message is missing its identifier or application reference")

// Action is a stateless, one-shot unit of work. Executing it may yield
// further actions for the engine to schedule; an action is never reused.
type Action interface {
	ActOnMessage(ctx context.Context, msg *entity.Message) ([]Action, error)
}

// CheckMessage is the defensive precondition every action applies before
// touching a message.
func CheckMessage(msg *entity.Message) error {
	if msg == nil {
		return errors.Wrap(ErrInvalidMessage, "message is nil")
	}
	if msg.ID == uuid.Nil {
		return errors.Wrap(ErrInvalidMessage, "message id is unset")
	}
	if msg.ApplicationID == uuid.Nil {
		return errors.Wrap(ErrInvalidMessage, "application id is unset")
	}

	return nil
}
