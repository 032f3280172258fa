// Package usecase declares the application's use-case interfaces.
package usecase

import (
	"context"
	"time"

	"herald/internal/domain/entity"
)

// SendMessageRequest is a message submission from an application.
type SendMessageRequest struct {
	ApplicationToken string         `json:"application_token"`
	Title            string         `json:"title"`
	Body             string         `json:"body"`
	Urgency          entity.Urgency `json:"urgency"`
	Hostname         string         `json:"hostname"`
	MACAddress       string         `json:"mac_address"`
	TimeOfMessage    time.Time      `json:"time_of_message"`
}

// SendMessageResponse carries the identifier assigned to the accepted
// message. It is never empty on success.
type SendMessageResponse struct {
	MessageID string `json:"message_id"`
}

// SendMessageUsecase is the sole externally invoked entry point of the
// ingestion core.
type SendMessageUsecase interface {
	// Process validates and persists an inbound message and triggers the
	// follower fan-out. Fan-out completion is not awaited.
	Process(ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, error)
}
