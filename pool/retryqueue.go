// File: pool/retryqueue.go
// Package pool: backpressure retry queue for refused Produce calls.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A refused Produce leaves drain-and-retry or drop-the-record policy to the
// caller. RetryQueue gives that policy a concrete, reusable shape backed by
// github.com/eapache/queue, a ring-backed FIFO of interface{} values well
// suited to holding a variable stream of refused payloads without the
// resize-by-doubling churn of an unbounded slice.

package pool

import (
	"github.com/eapache/queue"

	"github.com/incrediblejr/ijcringbuffer/api"
)

// RetryQueue holds payloads a producer could not place directly, in FIFO
// order, for later replay against the same Ring or SafeRing.
type RetryQueue struct {
	q *queue.Queue
}

// NewRetryQueue creates an empty retry queue.
func NewRetryQueue() *RetryQueue {
	return &RetryQueue{q: queue.New()}
}

// Offer appends a refused payload to the queue. The caller must not
// mutate payload afterward; Offer retains a reference, not a copy.
func (rq *RetryQueue) Offer(payload []byte) {
	rq.q.Add(payload)
}

// Len reports the number of payloads currently queued.
func (rq *RetryQueue) Len() int {
	return rq.q.Length()
}

// Drain replays queued payloads against produce, in FIFO order, until the
// queue empties or produce still refuses one (which stays at the front of
// the queue for the next Drain). It returns the number of payloads
// successfully replayed, and api.ErrCapacityExceeded if a refusal stopped
// the drain before the queue was empty.
func (rq *RetryQueue) Drain(produce func(payload []byte) bool) (int, error) {
	replayed := 0
	for rq.q.Length() > 0 {
		payload := rq.q.Peek().([]byte)
		if !produce(payload) {
			return replayed, api.ErrCapacityExceeded
		}
		rq.q.Remove()
		replayed++
	}
	return replayed, nil
}
