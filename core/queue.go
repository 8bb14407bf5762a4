package incall

import (
	"sync"
	"time"

	"github.com/koscakluka/incall-core/core/events"
)

// envelope is a single queued notification. The sequence number is stamped
// under the queue lock, so across all producers it increases in exactly the
// order envelopes were appended.
type envelope struct {
	event    events.Event
	seq      uint64
	queuedAt time.Time
}

// notificationQueue is the shared mailbox between any number of producers
// and the single dispatch loop. It is logically unbounded: appending never
// blocks and never fails while the queue accepts notifications.
type notificationQueue struct {
	mu      sync.Mutex
	pending []envelope
	nextSeq uint64
	closed  bool

	wake chan struct{}
}

func newNotificationQueue() *notificationQueue {
	return &notificationQueue{wake: make(chan struct{}, 1)}
}

func (q *notificationQueue) CanIngest() bool {
	if q == nil {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	return !q.closed
}

// Ingest appends the event and wakes the consumer if it is idle. It reports
// whether the event was accepted; a closed queue drops events. Acceptance
// is decided under the same lock that stamps the sequence number, so an
// accepted event is always visible to the consumer.
func (q *notificationQueue) Ingest(event events.Event) bool {
	if q == nil || event == nil {
		return false
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	seq := q.nextSeq
	q.nextSeq++
	q.pending = append(q.pending, envelope{event: event, seq: seq, queuedAt: time.Now()})
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	return true
}

// Stop closes the queue for ingestion. Already queued envelopes stay until
// taken or cleared.
func (q *notificationQueue) Stop() {
	if q == nil {
		return
	}

	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

func (q *notificationQueue) Clear() {
	if q == nil {
		return
	}

	q.mu.Lock()
	q.pending = nil
	q.mu.Unlock()
}

// take removes the head envelope, if any. Only the dispatch loop calls it.
func (q *notificationQueue) take() (envelope, bool) {
	if q == nil {
		return envelope{}, false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return envelope{}, false
	}

	head := q.pending[0]
	q.pending = q.pending[1:]

	return head, true
}

func (q *notificationQueue) depth() int {
	if q == nil {
		return 0
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}
