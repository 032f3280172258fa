package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies the mobile platform of a registered device.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// MobileDevice represents a user's device registered for push notifications.
// Device tokens are opaque; the engine never validates them.
type MobileDevice struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Platform    Platform  `json:"platform"`
	DeviceToken string    `json:"device_token"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PushCapable reports whether the device exposes a usable push channel.
// Devices without one are skipped silently during dispatch.
func (d *MobileDevice) PushCapable() bool {
	return d != nil && d.IsActive && d.DeviceToken != ""
}
