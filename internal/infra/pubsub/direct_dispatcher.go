package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"herald/internal/domain/service"
	"herald/internal/reaction"

	"github.com/pkg/errors"
)

const directDispatchTimeout = 2 * time.Minute

// directDispatcher implements EventPublisher by running the reaction engine
// in-process, skipping the broker entirely. Used when no Pub/Sub provider is
// configured, which covers single-process deployments and tests.
type directDispatcher struct {
	engine  *reaction.Engine
	factory *reaction.ActionFactory
	logger  *slog.Logger

	inFlight sync.WaitGroup
}

// NewDirectDispatcher creates an in-process event publisher.
func NewDirectDispatcher(engine *reaction.Engine, factory *reaction.ActionFactory, logger *slog.Logger) service.EventPublisher {
	return &directDispatcher{
		engine:  engine,
		factory: factory,
		logger:  logger,
	}
}

// PublishMessageEvent expands the reaction tree for the event's message on a
// background goroutine. The caller's request returns without waiting for
// fan-out, matching the push-subscription behavior of the real broker.
func (d *directDispatcher) PublishMessageEvent(_ context.Context, event *service.MessageEvent) error {
	msg, err := event.Message()
	if err != nil {
		return errors.Wrap(err, "reconstruct message from event")
	}

	d.inFlight.Add(1)
	go func() {
		defer d.inFlight.Done()

		// Detached from the request context so an early client disconnect
		// cannot abandon fan-out halfway.
		ctx, cancel := context.WithTimeout(context.Background(), directDispatchTimeout)
		defer cancel()

		if err := d.engine.Run(ctx, msg, d.factory.RunThroughFollowerInboxes()); err != nil {
			d.logger.Error("[DirectDispatch] Fan-out failed",
				slog.String("message_id", event.MessageID),
				slog.Any("error", err),
			)

			return
		}

		d.logger.Debug("[DirectDispatch] Fan-out completed",
			slog.String("message_id", event.MessageID),
		)
	}()

	return nil
}

// Close waits for in-flight fan-outs to finish.
func (d *directDispatcher) Close() error {
	d.inFlight.Wait()

	return nil
}
