package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// ExpiresAt is derived from the retention policy at write time so a
// scheduled cleanup job can purge expired rows with a plain range delete.
type MessageModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	ApplicationID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicationName string    `gorm:"type:text;not null"`
	Title           string    `gorm:"type:text;not null"`
	Body            string    `gorm:"type:text"`
	Urgency         string    `gorm:"type:text;not null"`
	Hostname        string    `gorm:"type:text"`
	MACAddress      string    `gorm:"type:text;column:mac_address"`
	CreatedAt       time.Time
	ExpiresAt       time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// InboxMessageModel is the GORM-specific struct for the 'inbox_messages'
// table. One row per (user, message) pair.
type InboxMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MessageID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (InboxMessageModel) TableName() string {
	return "inbox_messages"
}
