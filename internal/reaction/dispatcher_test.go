package reaction

import (
	"context"
	"testing"

	"herald/internal/domain/entity"
	"herald/internal/domain/service"
	"herald/internal/mocks"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeDevice(userID uuid.UUID, token string) *entity.MobileDevice {
	return &entity.MobileDevice{
		ID:          uuid.New(),
		UserID:      userID,
		Platform:    entity.PlatformAndroid,
		DeviceToken: token,
		IsActive:    true,
	}
}

func TestDispatch_InvalidInput(t *testing.T) {
	prefs := new(mocks.UserPreferencesRepository)
	push := new(mocks.PushService)
	d := NewDispatcher(testLogger(), prefs, push)

	err := d.Dispatch(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrInvalidMessage)

	err = d.Dispatch(context.Background(), uuid.Nil, validMessage())
	assert.ErrorIs(t, err, ErrInvalidMessage)

	// No lookup and no transport call happened
	prefs.AssertNotCalled(t, "GetMobileDevices", mock.Anything, mock.Anything)
	push.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_NoDevicesIsSilentNoop(t *testing.T) {
	userID := uuid.New()
	prefs := new(mocks.UserPreferencesRepository)
	prefs.On("GetMobileDevices", mock.Anything, userID).Return([]*entity.MobileDevice{}, nil)
	push := new(mocks.PushService)

	d := NewDispatcher(testLogger(), prefs, push)
	err := d.Dispatch(context.Background(), userID, validMessage())

	require.NoError(t, err)
	push.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_SkipsNonCapableDevices(t *testing.T) {
	userID := uuid.New()
	inactive := activeDevice(userID, "inactive-token")
	inactive.IsActive = false
	tokenless := activeDevice(userID, "")
	capable := activeDevice(userID, "good-token")

	prefs := new(mocks.UserPreferencesRepository)
	prefs.On("GetMobileDevices", mock.Anything, userID).
		Return([]*entity.MobileDevice{inactive, tokenless, capable}, nil)

	push := new(mocks.PushService)
	push.On("Push", mock.Anything, "good-token", mock.Anything).Return(nil)

	d := NewDispatcher(testLogger(), prefs, push)
	require.NoError(t, d.Dispatch(context.Background(), userID, validMessage()))

	push.AssertNumberOfCalls(t, "Push", 1)
}

func TestDispatch_PerDeviceFailureIsolation(t *testing.T) {
	userID := uuid.New()
	devices := []*entity.MobileDevice{
		activeDevice(userID, "token-a"),
		activeDevice(userID, "token-b"),
		activeDevice(userID, "token-c"),
	}

	prefs := new(mocks.UserPreferencesRepository)
	prefs.On("GetMobileDevices", mock.Anything, userID).Return(devices, nil)

	push := new(mocks.PushService)
	push.On("Push", mock.Anything, "token-a", mock.Anything).Return(nil)
	push.On("Push", mock.Anything, "token-b", mock.Anything).Return(errors.New("device unregistered"))
	push.On("Push", mock.Anything, "token-c", mock.Anything).Return(nil)

	d := NewDispatcher(testLogger(), prefs, push)
	err := d.Dispatch(context.Background(), userID, validMessage())

	// One failing device neither blocks the others nor fails the dispatch.
	require.NoError(t, err)
	push.AssertNumberOfCalls(t, "Push", 3)
}

func TestDispatch_AllDevicesFailStillSucceeds(t *testing.T) {
	userID := uuid.New()
	devices := []*entity.MobileDevice{
		activeDevice(userID, "token-a"),
		activeDevice(userID, "token-b"),
	}

	prefs := new(mocks.UserPreferencesRepository)
	prefs.On("GetMobileDevices", mock.Anything, userID).Return(devices, nil)

	push := new(mocks.PushService)
	push.On("Push", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("fcm unavailable"))

	d := NewDispatcher(testLogger(), prefs, push)
	assert.NoError(t, d.Dispatch(context.Background(), userID, validMessage()))
}

func TestDispatch_DeviceLookupFailurePropagates(t *testing.T) {
	userID := uuid.New()
	prefs := new(mocks.UserPreferencesRepository)
	prefs.On("GetMobileDevices", mock.Anything, userID).Return(nil, errors.New("db down"))
	push := new(mocks.PushService)

	d := NewDispatcher(testLogger(), prefs, push)
	err := d.Dispatch(context.Background(), userID, validMessage())

	assert.Error(t, err)
	push.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_PayloadContent(t *testing.T) {
	userID := uuid.New()
	msg := validMessage()
	msg.Title = "deploy complete"
	msg.Body = "version 1.4.2 rolled out"
	msg.Urgency = entity.UrgencyHigh

	prefs := new(mocks.UserPreferencesRepository)
	prefs.On("GetMobileDevices", mock.Anything, userID).
		Return([]*entity.MobileDevice{activeDevice(userID, "tok")}, nil)

	var got *service.PushPayload
	push := new(mocks.PushService)
	push.On("Push", mock.Anything, "tok", mock.Anything).
		Run(func(args mock.Arguments) {
			got = args.Get(2).(*service.PushPayload)
		}).
		Return(nil)

	d := NewDispatcher(testLogger(), prefs, push)
	require.NoError(t, d.Dispatch(context.Background(), userID, msg))

	require.NotNil(t, got)
	assert.Equal(t, "deploy complete", got.Title)
	assert.Equal(t, "version 1.4.2 rolled out", got.Body)
	assert.Equal(t, msg.ApplicationName, got.ApplicationName)
	assert.Equal(t, msg.ID.String(), got.Data["message_id"])
	assert.Equal(t, msg.ApplicationID.String(), got.Data["application_id"])
	assert.Equal(t, "high", got.Data["urgency"])
}
