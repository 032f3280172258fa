// Package notification delivers push notifications through Firebase Cloud
// Messaging.
package notification

import (
	"context"

	"herald/config"
	"herald/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates a push service backed by Firebase Cloud Messaging.
func NewFCMService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is missing")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &fcmService{client: client}, nil
}

// Push sends one notification to one device token.
func (s *fcmService) Push(ctx context.Context, deviceToken string, payload *service.PushPayload) error {
	if deviceToken == "" {
		return errors.New("device token must not be empty")
	}

	message := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) {
			return errors.Wrap(err, "device token is no longer registered")
		}

		return errors.Wrap(err, "send push notification")
	}

	return nil
}
