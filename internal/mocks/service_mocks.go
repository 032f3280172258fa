package mocks

import (
	"context"

	"herald/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// AuthenticationService is a mock of service.AuthenticationService.
type AuthenticationService struct {
	mock.Mock
}

func (m *AuthenticationService) GetTokenInfo(ctx context.Context, tokenID string, tokenType service.TokenType) (*service.TokenInfo, error) {
	args := m.Called(ctx, tokenID, tokenType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.TokenInfo), args.Error(1)
}

// PushService is a mock of service.PushService.
type PushService struct {
	mock.Mock
}

func (m *PushService) Push(ctx context.Context, deviceToken string, payload *service.PushPayload) error {
	args := m.Called(ctx, deviceToken, payload)

	return args.Error(0)
}

// EventPublisher is a mock of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishMessageEvent(ctx context.Context, event *service.MessageEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *EventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
