package reaction

import (
	"context"
	"log/slog"
	"sync"

	"herald/internal/domain/entity"
	"herald/internal/domain/repository"
	"herald/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Dispatcher delivers a message to every registered mobile device of a user.
//
// Per-device isolation is the core contract: delivery failures are collected
// per device, never propagated, and never prevent an attempt on any sibling
// device. The overall call succeeds even when every individual push failed;
// failures are observable via logging only.
type Dispatcher struct {
	logger    *slog.Logger
	prefsRepo repository.UserPreferencesRepository
	pushSvc   service.PushService
}

// NewDispatcher creates a dispatcher over the preferences repository and the
// external push transport.
func NewDispatcher(logger *slog.Logger, prefsRepo repository.UserPreferencesRepository, pushSvc service.PushService) *Dispatcher {
	return &Dispatcher{
		logger:    logger,
		prefsRepo: prefsRepo,
		pushSvc:   pushSvc,
	}
}

// Dispatch pushes the message to each push-capable device the user has
// registered. A user with no devices is a silent no-op. The returned error
// covers invalid input and the device lookup only, never transport failures.
func (d *Dispatcher) Dispatch(ctx context.Context, userID uuid.UUID, msg *entity.Message) error {
	if err := CheckMessage(msg); err != nil {
		return err
	}
	if userID == uuid.Nil {
		return errors.Wrap(ErrInvalidMessage, "user id is unset")
	}

	devices, err := d.prefsRepo.GetMobileDevices(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "fetch mobile devices")
	}

	capable := lo.Filter(devices, func(device *entity.MobileDevice, _ int) bool {
		return device.PushCapable()
	})
	if len(capable) == 0 {
		return nil
	}

	payload := buildPayload(msg)

	// One result slot per device; a slow or failing transport call for one
	// device never blocks or cancels the others.
	results := make([]error, len(capable))
	var wg sync.WaitGroup
	for i, device := range capable {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.pushSvc.Push(ctx, device.DeviceToken, payload)
		}()
	}
	wg.Wait()

	failed := 0
	for i, pushErr := range results {
		if pushErr == nil {
			continue
		}
		failed++
		d.logger.Warn("push delivery failed",
			slog.String("user_id", userID.String()),
			slog.String("device_id", capable[i].ID.String()),
			slog.String("message_id", msg.ID.String()),
			slog.Any("error", pushErr),
		)
	}

	d.logger.Debug("dispatch completed",
		slog.String("user_id", userID.String()),
		slog.String("message_id", msg.ID.String()),
		slog.Int("sent", len(capable)-failed),
		slog.Int("failed", failed),
	)

	return nil
}

func buildPayload(msg *entity.Message) *service.PushPayload {
	return &service.PushPayload{
		Title:           msg.Title,
		Body:            msg.Body,
		ApplicationName: msg.ApplicationName,
		Data: map[string]string{
			"message_id":     msg.ID.String(),
			"application_id": msg.ApplicationID.String(),
			"urgency":        string(msg.Urgency),
		},
	}
}
