package reaction

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"herald/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrExpansionDepthExceeded reports that a misbehaving action expanded the
// work tree past the defensive depth cap. Expansion stops; completed work is
// not rolled back.
var ErrExpansionDepthExceeded = errors.New("action expansion depth exceeded")

const (
	defaultWorkers  = 8
	defaultMaxDepth = 16
)

// Engine drives the breadth-first expansion of an action tree to completion.
//
// A parent action is fully executed before its children are enqueued;
// sibling actions carry no ordering guarantee and run concurrently on the
// worker pool. An error in one branch is logged and contained: siblings
// proceed. No action type in this system recurses indefinitely, but the
// depth cap guards against one that does.
type Engine struct {
	logger   *slog.Logger
	workers  int
	maxDepth int
}

// NewEngine creates an engine with the given pool size and depth cap.
// Non-positive values fall back to defaults.
func NewEngine(logger *slog.Logger, workers, maxDepth int) *Engine {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	return &Engine{
		logger:   logger,
		workers:  workers,
		maxDepth: maxDepth,
	}
}

// Run seeds the work queue with the root actions and drains it. It returns
// once every reachable action has executed. Branch failures are observable
// only via logging; the only error Run itself reports is an invalid message
// or an exceeded depth cap.
func (e *Engine) Run(ctx context.Context, msg *entity.Message, roots ...Action) error {
	if err := CheckMessage(msg); err != nil {
		return err
	}
	if len(roots) == 0 {
		return nil
	}

	queue := newWorkQueue()

	// pending counts enqueued-but-unfinished actions; the queue closes when
	// it reaches zero, which releases the worker pool.
	var pending sync.WaitGroup
	for _, root := range roots {
		pending.Add(1)
		queue.enqueue(workItem{action: root})
	}
	go func() {
		pending.Wait()
		queue.close()
	}()

	var depthExceeded atomic.Bool

	var workers sync.WaitGroup
	for range e.workers {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for {
				item, ok := queue.dequeue()
				if !ok {
					return
				}
				e.executeOne(ctx, queue, &pending, &depthExceeded, item, msg)
			}
		}()
	}
	workers.Wait()

	if depthExceeded.Load() {
		return errors.Wrapf(ErrExpansionDepthExceeded, "cap %d", e.maxDepth)
	}

	return nil
}

func (e *Engine) executeOne(
	ctx context.Context,
	queue *workQueue,
	pending *sync.WaitGroup,
	depthExceeded *atomic.Bool,
	item workItem,
	msg *entity.Message,
) {
	// Children must be registered before the parent is marked done, or the
	// queue could close under them.
	defer pending.Done()

	if ctx.Err() != nil {
		return
	}

	children, err := item.action.ActOnMessage(ctx, msg)
	if err != nil {
		// Contained to this branch; siblings keep going.
		e.logger.Error("action failed",
			slog.String("message_id", msg.ID.String()),
			slog.Int("depth", item.depth),
			slog.Any("error", err),
		)

		return
	}

	if len(children) == 0 {
		return
	}

	if item.depth+1 > e.maxDepth {
		if depthExceeded.CompareAndSwap(false, true) {
			e.logger.Error("action expansion exceeded depth cap, dropping children",
				slog.String("message_id", msg.ID.String()),
				slog.Int("max_depth", e.maxDepth),
			)
		}

		return
	}

	for _, child := range children {
		pending.Add(1)
		queue.enqueue(workItem{action: child, depth: item.depth + 1})
	}
}
