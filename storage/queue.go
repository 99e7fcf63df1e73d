package storage

import (
	"context"
	"log"
	"sync"
	"time"

	"craftquote/metrics"
)

const writeTimeout = 10 * time.Second

// WriteQueue serializes write-backs of a single key. Enqueue never blocks.
// While a write is in flight, further snapshots replace each other and only
// the newest is written next, so a stale snapshot can never land after a
// newer one. Failed writes are logged and dropped.
type WriteQueue struct {
	kv  KV
	key string

	mu      sync.Mutex
	latest  string
	queued  uint64 // sequence of the newest snapshot
	written uint64 // sequence of the last snapshot handed to kv
	idle    chan struct{}
	lastErr error
}

func NewWriteQueue(kv KV, key string) *WriteQueue {
	return &WriteQueue{kv: kv, key: key}
}

// Enqueue schedules value to be written.
func (q *WriteQueue) Enqueue(value string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.latest = value
	q.queued++
	if q.idle == nil {
		q.idle = make(chan struct{})
		go q.drain()
	}
}

func (q *WriteQueue) drain() {
	for {
		q.mu.Lock()
		if q.written == q.queued {
			close(q.idle)
			q.idle = nil
			q.mu.Unlock()
			return
		}
		value, seq := q.latest, q.queued
		q.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := q.kv.Set(ctx, q.key, value)
		cancel()
		if err != nil {
			log.Printf("storage: write-back of %q failed: %v", q.key, err)
			metrics.StoreWriteFailures.WithLabelValues(q.key).Inc()
		} else {
			metrics.StoreWrites.WithLabelValues(q.key).Inc()
		}

		q.mu.Lock()
		q.written = seq
		q.lastErr = err
		q.mu.Unlock()
	}
}

// Flush waits until every snapshot enqueued so far has been handled.
func (q *WriteQueue) Flush(ctx context.Context) error {
	q.mu.Lock()
	idle := q.idle
	q.mu.Unlock()
	if idle == nil {
		return nil
	}
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LastError returns the error of the most recent write, if any.
func (q *WriteQueue) LastError() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastErr
}
