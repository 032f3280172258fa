package reaction

import "sync"

// workItem pairs a pending action with its depth in the expansion tree.
type workItem struct {
	action Action
	depth  int
}

// workQueue is a thread-safe FIFO of pending actions.
//
// The queue is unbounded so a parent action can enqueue arbitrarily many
// children without blocking the worker that executed it. A buffered signal
// channel (size 1) coalesces wakeups for blocked workers; a separate closed
// channel wakes every worker at drain time.
type workQueue struct {
	mu     sync.Mutex
	items  []workItem
	closed bool
	signal chan struct{}
	done   chan struct{}
}

func newWorkQueue() *workQueue {
	return &workQueue{
		items:  make([]workItem, 0, 64),
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// enqueue adds an item to the back of the queue. Items enqueued after close
// are dropped.
func (q *workQueue) enqueue(item workItem) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.items = append(q.items, item)

	select {
	case q.signal <- struct{}{}:
	default:
	}

	return true
}

// dequeue removes and returns the front item, blocking until an item is
// available or the queue is closed and empty.
func (q *workQueue) dequeue() (workItem, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			item := q.items[0]
			// Nil the slot so the action becomes collectable.
			q.items[0] = workItem{}
			q.items = q.items[1:]
			if len(q.items) == 0 {
				q.items = q.items[:0]
			} else {
				// More work remains; wake another blocked worker.
				select {
				case q.signal <- struct{}{}:
				default:
				}
			}
			q.mu.Unlock()

			return item, true
		}
		if q.closed {
			q.mu.Unlock()

			return workItem{}, false
		}
		q.mu.Unlock()

		select {
		case <-q.signal:
		case <-q.done:
		}
	}
}

// close marks the queue finished and wakes every blocked worker.
func (q *workQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}
