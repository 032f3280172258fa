// Package handler contains the echo handlers of the ingestion API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"herald/internal/delivery/http/middleware"
	"herald/internal/delivery/http/response"
	"herald/internal/domain/entity"
	domainerrors "herald/internal/domain/errors"
	"herald/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for message submission handlers
type MessageHandler struct {
	uc     usecase.SendMessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(uc usecase.SendMessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendMessageBody represents the request body for submitting a message
type SendMessageBody struct {
	Title         string    `json:"title" validate:"required"`
	Body          string    `json:"body"`
	Urgency       string    `json:"urgency"`
	Hostname      string    `json:"hostname"`
	MACAddress    string    `json:"mac_address"`
	TimeOfMessage time.Time `json:"time_of_message"`
}

// SendMessage handles a message submission from an authenticated application
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var body SendMessageBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "title is required")
	}

	token, _ := c.Get(middleware.ContextKeyApplicationToken).(string)

	req := &usecase.SendMessageRequest{
		ApplicationToken: token,
		Title:            body.Title,
		Body:             body.Body,
		Urgency:          entity.Urgency(body.Urgency),
		Hostname:         body.Hostname,
		MACAddress:       body.MACAddress,
		TimeOfMessage:    body.TimeOfMessage,
	}

	resp, err := h.uc.Process(c.Request().Context(), req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, resp, "Message accepted")
}

// handleAppError handles application errors
func (h *MessageHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
