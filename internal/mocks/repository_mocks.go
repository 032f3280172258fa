// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ApplicationRepository is a mock of repository.ApplicationRepository.
type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Application), args.Error(1)
}

// UserRepository is a mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

// FollowerRepository is a mock of repository.FollowerRepository.
type FollowerRepository struct {
	mock.Mock
}

func (m *FollowerRepository) GetApplicationFollowers(ctx context.Context, appID uuid.UUID) ([]*entity.User, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

// MessageRepository is a mock of repository.MessageRepository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) SaveMessage(ctx context.Context, msg *entity.Message, retention entity.Retention) error {
	args := m.Called(ctx, msg, retention)

	return args.Error(0)
}

// InboxRepository is a mock of repository.InboxRepository.
type InboxRepository struct {
	mock.Mock
}

func (m *InboxRepository) SaveMessageForUser(ctx context.Context, user *entity.User, msg *entity.Message, retention entity.Retention) error {
	args := m.Called(ctx, user, msg, retention)

	return args.Error(0)
}

// UserPreferencesRepository is a mock of repository.UserPreferencesRepository.
type UserPreferencesRepository struct {
	mock.Mock
}

func (m *UserPreferencesRepository) GetMobileDevices(ctx context.Context, userID uuid.UUID) ([]*entity.MobileDevice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.MobileDevice), args.Error(1)
}

func (m *UserPreferencesRepository) GetReactionRules(ctx context.Context, userID, appID uuid.UUID) ([]entity.ReactionRule, error) {
	args := m.Called(ctx, userID, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.ReactionRule), args.Error(1)
}
