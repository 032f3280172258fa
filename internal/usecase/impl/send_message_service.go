// Package impl contains the use-case implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"herald/internal/domain/entity"
	domainerrors "herald/internal/domain/errors"
	"herald/internal/domain/repository"
	"herald/internal/domain/service"
	"herald/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type sendMessageService struct {
	logger      *slog.Logger
	authSvc     service.AuthenticationService
	appRepo     repository.ApplicationRepository
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	inboxRepo   repository.InboxRepository
	publisher   service.EventPublisher
	retention   entity.Retention
}

// NewSendMessageService creates the message ingestion orchestrator.
func NewSendMessageService(
	logger *slog.Logger,
	authSvc service.AuthenticationService,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	inboxRepo repository.InboxRepository,
	publisher service.EventPublisher,
	retention entity.Retention,
) usecase.SendMessageUsecase {
	return &sendMessageService{
		logger:      logger,
		authSvc:     authSvc,
		appRepo:     appRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		inboxRepo:   inboxRepo,
		publisher:   publisher,
		retention:   retention,
	}
}

// Process resolves the caller, normalizes and persists the message, places
// it in the application owner's inbox, and publishes the event that seeds
// the follower fan-out. The response returns without waiting for fan-out.
func (s *sendMessageService) Process(ctx context.Context, req *usecase.SendMessageRequest) (*usecase.SendMessageResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	tokenInfo, err := s.authSvc.GetTokenInfo(ctx, req.ApplicationToken, service.TokenTypeApplication)
	if err != nil {
		return nil, domainerrors.ErrAuthentication.WithDetails(err.Error())
	}

	app, err := s.appRepo.GetByID(ctx, tokenInfo.ApplicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, domainerrors.ErrAuthentication.WithDetails("token does not belong to a registered application")
		}

		return nil, errors.Wrap(err, "resolve application")
	}

	msg := s.buildMessage(req, app)

	if err := s.messageRepo.SaveMessage(ctx, msg, s.retention); err != nil {
		return nil, errors.Wrap(err, "save message")
	}

	s.saveToOwnerInbox(ctx, app, msg)

	// Fan-out is fire and forget: the message is durable, and the caller
	// must not wait on follower delivery.
	event := service.NewMessageEvent(msg)
	if err := s.publisher.PublishMessageEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish message event",
			slog.String("message_id", msg.ID.String()),
			slog.Any("error", err),
		)
	}

	return &usecase.SendMessageResponse{MessageID: msg.ID.String()}, nil
}

func validateRequest(req *usecase.SendMessageRequest) error {
	if req == nil {
		return domainerrors.ErrValidation.WithDetails("request is nil")
	}
	if strings.TrimSpace(req.ApplicationToken) == "" {
		return domainerrors.ErrValidation.WithDetails("application token is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return domainerrors.ErrValidation.WithDetails("title is required")
	}
	if req.Urgency != "" && !req.Urgency.Valid() {
		return domainerrors.ErrValidation.WithDetails("unknown urgency level")
	}

	return nil
}

func (s *sendMessageService) buildMessage(req *usecase.SendMessageRequest, app *entity.Application) *entity.Message {
	urgency := req.Urgency
	if urgency == "" {
		urgency = entity.UrgencyLow
	}

	createdAt := req.TimeOfMessage
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &entity.Message{
		ID:              uuid.New(),
		ApplicationID:   app.ID,
		ApplicationName: app.Name,
		Title:           req.Title,
		Body:            entity.ClampBody(req.Body),
		Urgency:         urgency,
		Hostname:        req.Hostname,
		MACAddress:      req.MACAddress,
		CreatedAt:       createdAt,
	}
}

// saveToOwnerInbox unconditionally attempts to place the message in the
// sending application owner's own inbox. Best effort only.
func (s *sendMessageService) saveToOwnerInbox(ctx context.Context, app *entity.Application, msg *entity.Message) {
	owner, err := s.userRepo.GetByID(ctx, app.OwnerID)
	if err != nil {
		s.logger.Warn("failed to resolve application owner",
			slog.String("application_id", app.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	if err := s.inboxRepo.SaveMessageForUser(ctx, owner, msg, s.retention); err != nil {
		s.logger.Warn("failed to save message to owner inbox",
			slog.String("application_id", app.ID.String()),
			slog.String("message_id", msg.ID.String()),
			slog.Any("error", err),
		)
	}
}
