// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageBodyLength is the maximum number of characters kept in a message
// body. Longer bodies are truncated at ingestion, never rejected.
const MaxMessageBodyLength = 2000

// Urgency describes how pressing a message is.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Level maps an urgency to an ordinal so urgencies can be compared.
// Unknown values rank below low.
func (u Urgency) Level() int {
	switch u {
	case UrgencyLow:
		return 1
	case UrgencyMedium:
		return 2
	case UrgencyHigh:
		return 3
	default:
		return 0
	}
}

// Valid reports whether the urgency is one of the known levels.
func (u Urgency) Valid() bool {
	return u.Level() > 0
}

// Message is a single message submitted by an application. It is immutable
// once persisted; every downstream action closes over the same value.
type Message struct {
	ID              uuid.UUID `json:"id"`
	ApplicationID   uuid.UUID `json:"application_id"`
	ApplicationName string    `json:"application_name"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	Urgency         Urgency   `json:"urgency"`
	Hostname        string    `json:"hostname"`
	MACAddress      string    `json:"mac_address"`
	CreatedAt       time.Time `json:"created_at"`
}

// ClampBody returns body truncated to MaxMessageBodyLength characters.
// Bodies at or under the limit are returned verbatim.
func ClampBody(body string) string {
	runes := []rune(body)
	if len(runes) <= MaxMessageBodyLength {
		return body
	}

	return string(runes[:MaxMessageBodyLength])
}

// Retention is how long a persisted message (or inbox entry) is kept.
type Retention time.Duration

// Duration converts the retention to a time.Duration.
func (r Retention) Duration() time.Duration {
	return time.Duration(r)
}
