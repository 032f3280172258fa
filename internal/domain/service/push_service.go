// Package service declares contracts on external collaborators.
package service

import "context"

// PushPayload is the notification content delivered to a single device.
// It embeds at minimum the message title and the originating application's
// display name.
type PushPayload struct {
	Title           string            `json:"title"`
	Body            string            `json:"body"`
	ApplicationName string            `json:"application_name"`
	Data            map[string]string `json:"data,omitempty"`
}

// PushService is the external push-notification transport. A Push call may
// fail per device; callers decide how failures are isolated.
type PushService interface {
	Push(ctx context.Context, deviceToken string, payload *PushPayload) error
}
