package insights

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest() *request {
	return &request{
		ctx:   context.Background(),
		reply: make(chan result, 1),
	}
}

func collectBatch(t *testing.T, batches <-chan []*request) []*request {
	t.Helper()
	select {
	case batch := <-batches:
		return batch
	case <-time.After(2 * time.Second):
		t.Fatal("no batch dispatched")
		return nil
	}
}

func TestBatcher_FlushesAtSizeThreshold(t *testing.T) {
	batches := make(chan []*request, 4)
	b := newBatcher(2, time.Hour, func(batch []*request) { batches <- batch })
	defer b.close()

	require.True(t, b.enqueue(newTestRequest()))
	require.True(t, b.enqueue(newTestRequest()))

	batch := collectBatch(t, batches)
	assert.Len(t, batch, 2)
}

func TestBatcher_FlushesWhenWindowElapses(t *testing.T) {
	batches := make(chan []*request, 4)
	b := newBatcher(8, 20*time.Millisecond, func(batch []*request) { batches <- batch })
	defer b.close()

	require.True(t, b.enqueue(newTestRequest()))

	batch := collectBatch(t, batches)
	assert.Len(t, batch, 1)
}

func TestBatcher_EnqueueAfterCloseFails(t *testing.T) {
	b := newBatcher(2, time.Hour, func([]*request) {})
	b.close()

	assert.False(t, b.enqueue(newTestRequest()))
}

func TestBatcher_DispatchesRequestsAcceptedBeforeClose(t *testing.T) {
	var dispatched atomic.Int64
	// Large threshold and window: nothing flushes until close
	b := newBatcher(100, time.Hour, func(batch []*request) { dispatched.Add(int64(len(batch))) })

	const n = 50
	for i := 0; i < n; i++ {
		require.True(t, b.enqueue(newTestRequest()))
	}
	b.close()

	assert.Eventually(t, func() bool { return dispatched.Load() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestBatcher_NoAcceptedRequestLostRacingClose(t *testing.T) {
	var dispatched atomic.Int64
	b := newBatcher(4, time.Millisecond, func(batch []*request) { dispatched.Add(int64(len(batch))) })

	var accepted atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 60; j++ {
				if b.enqueue(newTestRequest()) {
					accepted.Add(1)
				}
			}
		}()
	}

	closed := make(chan struct{})
	go func() {
		time.Sleep(time.Millisecond)
		b.close()
		close(closed)
	}()

	wg.Wait()
	<-closed

	// Every accepted request reaches dispatch, rejected ones never do
	assert.Eventually(t, func() bool { return dispatched.Load() == accepted.Load() }, 2*time.Second, 5*time.Millisecond)
}

func TestBatcher_QueueDepthTracksPendingRequests(t *testing.T) {
	batches := make(chan []*request, 4)
	b := newBatcher(8, time.Hour, func(batch []*request) { batches <- batch })

	require.True(t, b.enqueue(newTestRequest()))
	assert.Eventually(t, func() bool { return b.queueDepth() == 1 }, time.Second, 5*time.Millisecond)

	b.close()
	collectBatch(t, batches)
	assert.Eventually(t, func() bool { return b.queueDepth() == 0 }, time.Second, 5*time.Millisecond)
}
