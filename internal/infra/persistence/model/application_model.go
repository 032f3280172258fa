// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationModel is the GORM-specific struct for the 'applications' table.
// It represents a registered application that can submit messages.
type ApplicationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:text;not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "applications"
}

// ApplicationFollowerModel is the GORM-specific struct for the
// 'application_followers' join table.
type ApplicationFollowerModel struct {
	ApplicationID uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;primary_key;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationFollowerModel) TableName() string {
	return "application_followers"
}
