package model

import (
	"time"

	"github.com/google/uuid"
)

// ReactionRuleModel is the GORM-specific struct for the 'reaction_rules' table.
// A rule belongs to one user and scopes to one application.
type ReactionRuleModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_reaction_rules_user_app"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index:idx_reaction_rules_user_app"`
	Kind          string    `gorm:"type:text;not null"`
	Value         string    `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReactionRuleModel) TableName() string {
	return "reaction_rules"
}
