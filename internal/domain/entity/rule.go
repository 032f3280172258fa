package entity

import (
	"time"

	"github.com/google/uuid"
)

// RuleKind tags the condition a reaction rule expresses over a message.
// The set is closed: the matcher factory fails loudly on anything else.
type RuleKind string

const (
	RuleAlways         RuleKind = "always"
	RuleNever          RuleKind = "never"
	RuleTitleContains  RuleKind = "title_contains"
	RuleTitleIs        RuleKind = "title_is"
	RuleBodyContains   RuleKind = "body_contains"
	RuleHostnameIs     RuleKind = "hostname_is"
	RuleUrgencyIs      RuleKind = "urgency_is"
	RuleUrgencyAtLeast RuleKind = "urgency_at_least"
	RuleApplicationIs  RuleKind = "application_is"
)

// ReactionRule is a stored per-user, per-application condition over messages.
// Rules are immutable once read for a dispatch cycle; the executable matcher
// bound to a rule is constructed on demand and never persisted.
type ReactionRule struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ApplicationID uuid.UUID `json:"application_id"`
	Kind          RuleKind  `json:"kind"`
	Value         string    `json:"value"`
	CreatedAt     time.Time `json:"created_at"`
}
