package service

import (
	"context"
	"time"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageEvent carries a freshly persisted message to the dispatch worker.
// The full message is embedded so the worker never races a read-after-write.
type MessageEvent struct {
	RequestID       string         `json:"request_id,omitempty"` // For distributed tracing
	MessageID       string         `json:"message_id"`
	ApplicationID   string         `json:"application_id"`
	ApplicationName string         `json:"application_name"`
	Title           string         `json:"title"`
	Body            string         `json:"body"`
	Urgency         entity.Urgency `json:"urgency"`
	Hostname        string         `json:"hostname,omitempty"`
	MACAddress      string         `json:"mac_address,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// NewMessageEvent builds an event from a persisted message.
func NewMessageEvent(msg *entity.Message) *MessageEvent {
	return &MessageEvent{
		MessageID:       msg.ID.String(),
		ApplicationID:   msg.ApplicationID.String(),
		ApplicationName: msg.ApplicationName,
		Title:           msg.Title,
		Body:            msg.Body,
		Urgency:         msg.Urgency,
		Hostname:        msg.Hostname,
		MACAddress:      msg.MACAddress,
		CreatedAt:       msg.CreatedAt,
	}
}

// Message reconstructs the message the event was built from.
func (e *MessageEvent) Message() (*entity.Message, error) {
	msgID, err := uuid.Parse(e.MessageID)
	if err != nil {
		return nil, err
	}
	appID, err := uuid.Parse(e.ApplicationID)
	if err != nil {
		return nil, err
	}

	return &entity.Message{
		ID:              msgID,
		ApplicationID:   appID,
		ApplicationName: e.ApplicationName,
		Title:           e.Title,
		Body:            e.Body,
		Urgency:         e.Urgency,
		Hostname:        e.Hostname,
		MACAddress:      e.MACAddress,
		CreatedAt:       e.CreatedAt,
	}, nil
}

// EventPublisher hands message events to the dispatch side. Implementations
// may cross a process boundary (Pub/Sub) or dispatch in-process.
type EventPublisher interface {
	// PublishMessageEvent publishes a message event for async fan-out.
	PublishMessageEvent(ctx context.Context, event *MessageEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
