// Package uithread hands closures from background goroutines to the thread
// that owns the UI.
package uithread

import (
	"log"
	"sync/atomic"
)

// DefaultCapacity is the buffer size used by New(0).
const DefaultCapacity = 64

// Queue is a buffered channel of closures. Any goroutine may Post; only the
// UI thread calls Drain.
type Queue struct {
	pending chan func()
	dropped atomic.Uint64
}

// New creates a queue holding up to capacity closures.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{pending: make(chan func(), capacity)}
}

// Post enqueues fn without blocking. When the queue is full fn is dropped and
// counted in Dropped; it is not retried. Periodic posters should coalesce so
// they never hold more than one slot.
func (q *Queue) Post(fn func()) {
	select {
	case q.pending <- fn:
	default:
		if q.dropped.Add(1) == 1 {
			log.Printf("[uithread] queue full (%d), dropping posts", cap(q.pending))
		}
	}
}

// Drain runs every closure queued so far and returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for {
		select {
		case fn := <-q.pending:
			fn()
			n++
		default:
			return n
		}
	}
}

// Len is the number of closures waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Dropped counts posts lost to a full queue.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
