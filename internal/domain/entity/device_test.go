package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMobileDevicePushCapable(t *testing.T) {
	tests := []struct {
		name   string
		device *MobileDevice
		want   bool
	}{
		{name: "nil device", device: nil, want: false},
		{name: "active with token", device: &MobileDevice{IsActive: true, DeviceToken: "tok"}, want: true},
		{name: "inactive with token", device: &MobileDevice{IsActive: false, DeviceToken: "tok"}, want: false},
		{name: "active without token", device: &MobileDevice{IsActive: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.device.PushCapable())
		})
	}
}
