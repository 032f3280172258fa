package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"herald/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.MessageEvent {
	return &service.MessageEvent{
		RequestID:       "req-123",
		MessageID:       uuid.New().String(),
		ApplicationID:   uuid.New().String(),
		ApplicationName: "backup-runner",
		Title:           "backup finished",
		Body:            "took 42 minutes",
		CreatedAt:       time.Now().UTC(),
	}
}

func TestLocalHTTPPublisher_PublishesPushFormat(t *testing.T) {
	event := sampleEvent()

	var received PubSubPushMessage
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishMessageEvent(context.Background(), event))

	// The push envelope mirrors what the worker receives from the broker.
	assert.Equal(t, event.MessageID, received.Message.MessageID)
	assert.Equal(t, event.MessageID, received.Message.Attributes["message_id"])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])
	assert.Equal(t, "req-123", gotRequestID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.MessageEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Title, decoded.Title)
	assert.Equal(t, event.ApplicationName, decoded.ApplicationName)
}

func TestLocalHTTPPublisher_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishMessageEvent(context.Background(), sampleEvent())

	assert.Error(t, err)
}

func TestLocalHTTPPublisher_UnreachableEndpoint(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1", testLogger())

	err := publisher.PublishMessageEvent(context.Background(), sampleEvent())
	assert.Error(t, err)
}
