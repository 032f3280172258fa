// Package handler processes Pub/Sub push deliveries for the dispatch worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"herald/config"
	deliverycontext "herald/internal/delivery/context"
	"herald/internal/domain/constants"
	"herald/internal/domain/service"
	"herald/internal/reaction"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DispatchHandler expands the reaction tree for each message event pushed by
// the broker.
type DispatchHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	engine         *reaction.Engine
	factory        *reaction.ActionFactory
}

// DispatchHandlerParams holds dependencies for the DispatchHandler
type DispatchHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Engine  *reaction.Engine
	Factory *reaction.ActionFactory
}

// NewDispatchHandler creates a new Pub/Sub push handler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	// Verify push auth only for the Google provider outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &DispatchHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		engine:         params.Engine,
		factory:        params.Factory,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *DispatchHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.MessageEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse message event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing message event",
		slog.String("message_id", event.MessageID),
		slog.String("application_id", event.ApplicationID),
	)

	if err := h.expandReactions(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process message event",
			slog.String("message_id", event.MessageID),
			slog.Any("error", err),
		)
		// A malformed event or an exceeded depth cap repeats identically on
		// redelivery, so acknowledge instead of triggering a retry storm.
		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Message event processed successfully",
		slog.String("message_id", event.MessageID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *DispatchHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.MessageEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// expandReactions rebuilds the message from the event and drains the
// reaction tree rooted at the follower fan-out.
func (h *DispatchHandler) expandReactions(ctx context.Context, event *service.MessageEvent) error {
	msg, err := event.Message()
	if err != nil {
		return errors.Wrap(err, "reconstruct message from event")
	}

	return h.engine.Run(ctx, msg, h.factory.RunThroughFollowerInboxes())
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
