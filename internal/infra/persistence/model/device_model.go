package model

import (
	"time"

	"github.com/google/uuid"
)

// MobileDeviceModel is the GORM-specific struct for the 'mobile_devices' table.
type MobileDeviceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform    string    `gorm:"type:text;not null"`
	DeviceToken string    `gorm:"type:text;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MobileDeviceModel) TableName() string {
	return "mobile_devices"
}
