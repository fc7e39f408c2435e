package insights

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Shaolin23/adence-ai/internal/types"
)

// request is one pending augmentation, carrying a one-shot reply channel back
// to the caller. No caller is ever resolved twice or silently dropped.
type request struct {
	ctx      context.Context
	profile  subjectProfile
	features types.FeatureRecord
	base     *types.AssessmentResult
	reply    chan result
}

type result struct {
	insights types.AIInsights
}

// batcher is a mailbox that accumulates concurrent requests until either the
// size threshold or the debounce window fires, then drains atomically: one
// drain operation hands the whole batch to dispatch, with no interleaved
// partial drains.
type batcher struct {
	requests  chan *request
	batchSize int
	window    time.Duration
	dispatch  func([]*request)

	depth atomic.Int64
	done  chan struct{}

	// mu orders enqueue against close: a send into requests only happens
	// under the read lock with closed still false, so once close returns,
	// every accepted request is already in the channel buffer and the
	// consumer's final drain sees all of them.
	mu     sync.RWMutex
	closed bool
}

func newBatcher(batchSize int, window time.Duration, dispatch func([]*request)) *batcher {
	b := &batcher{
		requests:  make(chan *request, 64),
		batchSize: batchSize,
		window:    window,
		dispatch:  dispatch,
		done:      make(chan struct{}),
	}
	go b.run()
	return b
}

// enqueue submits a request to the mailbox. Returns false once the batcher is
// closed, in which case the caller must resolve the request itself. A true
// return is a commitment: the request will be dispatched.
func (b *batcher) enqueue(req *request) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return false
	}
	b.requests <- req
	b.depth.Add(1)
	return true
}

// queueDepth reports the number of requests awaiting dispatch.
func (b *batcher) queueDepth() int {
	return int(b.depth.Load())
}

func (b *batcher) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.done)
	}
}

// run is the single consuming loop; because only this goroutine touches the
// pending slice, each drain is atomic by construction.
func (b *batcher) run() {
	var pending []*request
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
		if len(pending) == 0 {
			return
		}
		batch := pending
		pending = nil
		b.depth.Add(-int64(len(batch)))
		go b.dispatch(batch)
	}

	for {
		select {
		case req := <-b.requests:
			pending = append(pending, req)
			if len(pending) >= b.batchSize {
				flush()
			} else if len(pending) == 1 {
				timer = time.NewTimer(b.window)
				timerC = timer.C
			}
		case <-timerC:
			timer = nil
			timerC = nil
			flush()
		case <-b.done:
			// Requests accepted before close may still sit in the
			// channel buffer; fold them into the final flush so every
			// committed caller gets a reply.
			for {
				select {
				case req := <-b.requests:
					pending = append(pending, req)
				default:
					flush()
					return
				}
			}
		}
	}
}
