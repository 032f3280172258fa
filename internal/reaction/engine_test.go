package reaction

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validMessage() *entity.Message {
	return &entity.Message{
		ID:              uuid.New(),
		ApplicationID:   uuid.New(),
		ApplicationName: "backup-runner",
		Title:           "backup finished",
		Urgency:         entity.UrgencyLow,
	}
}

// stubAction counts its executions and optionally yields children or fails.
type stubAction struct {
	children []Action
	err      error
	runs     *atomic.Int32
}

func (a *stubAction) ActOnMessage(_ context.Context, _ *entity.Message) ([]Action, error) {
	if a.runs != nil {
		a.runs.Add(1)
	}

	return a.children, a.err
}

// replicatingAction expands into one copy of itself forever.
type replicatingAction struct{}

func (replicatingAction) ActOnMessage(_ context.Context, _ *entity.Message) ([]Action, error) {
	return []Action{replicatingAction{}}, nil
}

func TestEngineRun_InvalidMessage(t *testing.T) {
	engine := NewEngine(testLogger(), 2, 8)

	err := engine.Run(context.Background(), nil, &stubAction{})
	assert.ErrorIs(t, err, ErrInvalidMessage)

	err = engine.Run(context.Background(), &entity.Message{}, &stubAction{})
	assert.ErrorIs(t, err, ErrInvalidMessage)
}

func TestEngineRun_NoRoots(t *testing.T) {
	engine := NewEngine(testLogger(), 2, 8)

	assert.NoError(t, engine.Run(context.Background(), validMessage()))
}

func TestEngineRun_ExecutesWholeTree(t *testing.T) {
	var leafRuns atomic.Int32

	// Root fans out into 50 leaves, mirroring a follower fan-out.
	leaves := make([]Action, 50)
	for i := range leaves {
		leaves[i] = &stubAction{runs: &leafRuns}
	}
	var rootRuns atomic.Int32
	root := &stubAction{children: leaves, runs: &rootRuns}

	engine := NewEngine(testLogger(), 4, 8)
	require.NoError(t, engine.Run(context.Background(), validMessage(), root))

	assert.Equal(t, int32(1), rootRuns.Load())
	assert.Equal(t, int32(50), leafRuns.Load())
}

func TestEngineRun_BranchFailureIsContained(t *testing.T) {
	var leafRuns atomic.Int32

	root := &stubAction{children: []Action{
		&stubAction{err: errors.New("inbox lookup failed")},
		&stubAction{runs: &leafRuns},
		&stubAction{runs: &leafRuns},
	}}

	engine := NewEngine(testLogger(), 2, 8)
	err := engine.Run(context.Background(), validMessage(), root)

	// The failing branch is logged, not surfaced; siblings still ran.
	require.NoError(t, err)
	assert.Equal(t, int32(2), leafRuns.Load())
}

func TestEngineRun_FailedBranchChildrenNotScheduled(t *testing.T) {
	var orphanRuns atomic.Int32

	failing := &stubAction{
		children: []Action{&stubAction{runs: &orphanRuns}},
		err:      errors.New("boom"),
	}

	engine := NewEngine(testLogger(), 2, 8)
	require.NoError(t, engine.Run(context.Background(), validMessage(), failing))

	assert.Equal(t, int32(0), orphanRuns.Load())
}

func TestEngineRun_DepthCap(t *testing.T) {
	engine := NewEngine(testLogger(), 2, 3)

	err := engine.Run(context.Background(), validMessage(), replicatingAction{})
	assert.ErrorIs(t, err, ErrExpansionDepthExceeded)
}

func TestEngineRun_MultipleRoots(t *testing.T) {
	var runs atomic.Int32

	engine := NewEngine(testLogger(), 3, 8)
	err := engine.Run(context.Background(), validMessage(),
		&stubAction{runs: &runs},
		&stubAction{runs: &runs},
		&stubAction{runs: &runs},
	)

	require.NoError(t, err)
	assert.Equal(t, int32(3), runs.Load())
}

func TestNewEngine_Defaults(t *testing.T) {
	engine := NewEngine(testLogger(), 0, -1)

	assert.Equal(t, defaultWorkers, engine.workers)
	assert.Equal(t, defaultMaxDepth, engine.maxDepth)
}
