package reaction

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkQueue_FIFOOrder(t *testing.T) {
	q := newWorkQueue()

	first := &stubAction{}
	second := &stubAction{}
	require.True(t, q.enqueue(workItem{action: first, depth: 1}))
	require.True(t, q.enqueue(workItem{action: second, depth: 2}))

	item, ok := q.dequeue()
	require.True(t, ok)
	assert.Same(t, first, item.action)
	assert.Equal(t, 1, item.depth)

	item, ok = q.dequeue()
	require.True(t, ok)
	assert.Same(t, second, item.action)
}

func TestWorkQueue_DequeueAfterCloseDrains(t *testing.T) {
	q := newWorkQueue()
	require.True(t, q.enqueue(workItem{action: &stubAction{}}))
	q.close()

	// Items enqueued before close are still delivered.
	_, ok := q.dequeue()
	assert.True(t, ok)

	_, ok = q.dequeue()
	assert.False(t, ok)
}

func TestWorkQueue_EnqueueAfterCloseIsDropped(t *testing.T) {
	q := newWorkQueue()
	q.close()

	assert.False(t, q.enqueue(workItem{action: &stubAction{}}))

	_, ok := q.dequeue()
	assert.False(t, ok)
}

func TestWorkQueue_CloseUnblocksWaiters(t *testing.T) {
	q := newWorkQueue()

	var wg sync.WaitGroup
	results := make([]bool, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = q.dequeue()
		}(i)
	}

	q.close()
	wg.Wait()

	for _, ok := range results {
		assert.False(t, ok)
	}
}

func TestWorkQueue_ConcurrentProducersConsumers(t *testing.T) {
	q := newWorkQueue()

	const producers = 4
	const perProducer = 100

	var produced sync.WaitGroup
	for range producers {
		produced.Add(1)
		go func() {
			defer produced.Done()
			for range perProducer {
				q.enqueue(workItem{action: &stubAction{}})
			}
		}()
	}

	var consumed sync.WaitGroup
	counts := make([]int, 3)
	for i := range counts {
		consumed.Add(1)
		go func(i int) {
			defer consumed.Done()
			for {
				if _, ok := q.dequeue(); !ok {
					return
				}
				counts[i]++
			}
		}(i)
	}

	produced.Wait()
	q.close()
	consumed.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, producers*perProducer, total)
}
