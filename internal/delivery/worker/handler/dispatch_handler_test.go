package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"herald/config"
	"herald/internal/domain/entity"
	"herald/internal/domain/service"
	"herald/internal/mocks"
	"herald/internal/reaction"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	followers *mocks.FollowerRepository
	inbox     *mocks.InboxRepository
	prefs     *mocks.UserPreferencesRepository
	push      *mocks.PushService
}

func newTestHandler() (*DispatchHandler, *handlerMocks) {
	m := &handlerMocks{
		followers: new(mocks.FollowerRepository),
		inbox:     new(mocks.InboxRepository),
		prefs:     new(mocks.UserPreferencesRepository),
		push:      new(mocks.PushService),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := reaction.NewDispatcher(logger, m.prefs, m.push)
	factory := reaction.NewActionFactory(logger, m.followers, m.inbox, m.prefs, dispatcher, entity.Retention(0))
	engine := reaction.NewEngine(logger, 2, 16)

	h := NewDispatchHandler(DispatchHandlerParams{
		Config:  &config.Config{},
		Logger:  logger,
		Engine:  engine,
		Factory: factory,
	})

	return h, m
}

func postPush(t *testing.T, h *DispatchHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))

	return rec
}

func pushBody(t *testing.T, event *service.MessageEvent) string {
	t.Helper()

	eventData, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.MessageID
	pushMsg.Subscription = "projects/test/subscriptions/message-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return string(body)
}

func TestHandlePush_DispatchesToMatchingFollower(t *testing.T) {
	h, m := newTestHandler()

	msg := &entity.Message{
		ID:              uuid.New(),
		ApplicationID:   uuid.New(),
		ApplicationName: "backup-runner",
		Title:           "backup finished",
		Urgency:         entity.UrgencyLow,
	}
	follower := &entity.User{ID: uuid.New()}

	m.followers.On("GetApplicationFollowers", mock.Anything, msg.ApplicationID).
		Return([]*entity.User{follower}, nil)
	m.inbox.On("SaveMessageForUser", mock.Anything, follower, mock.Anything, entity.Retention(0)).Return(nil)
	m.prefs.On("GetReactionRules", mock.Anything, follower.ID, msg.ApplicationID).
		Return([]entity.ReactionRule{{Kind: entity.RuleAlways}}, nil)
	m.prefs.On("GetMobileDevices", mock.Anything, follower.ID).
		Return([]*entity.MobileDevice{{ID: uuid.New(), UserID: follower.ID, DeviceToken: "tok", IsActive: true}}, nil)
	m.push.On("Push", mock.Anything, "tok", mock.Anything).Return(nil)

	rec := postPush(t, h, pushBody(t, service.NewMessageEvent(msg)))

	assert.Equal(t, http.StatusOK, rec.Code)
	m.push.AssertNumberOfCalls(t, "Push", 1)
}

func TestHandlePush_MalformedJSON(t *testing.T) {
	h, _ := newTestHandler()

	rec := postPush(t, h, "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_BadBase64(t *testing.T) {
	h, _ := newTestHandler()

	rec := postPush(t, h, `{"message":{"data":"!!!not-base64!!!"},"subscription":"s"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_CorruptEventIsAckedNotRetried(t *testing.T) {
	h, m := newTestHandler()

	// A message id that cannot parse repeats identically on redelivery, so
	// the handler acknowledges it instead of asking for a retry.
	event := &service.MessageEvent{MessageID: "not-a-uuid", ApplicationID: uuid.New().String()}
	rec := postPush(t, h, pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
	m.followers.AssertNotCalled(t, "GetApplicationFollowers", mock.Anything, mock.Anything)
}
