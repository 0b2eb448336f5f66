// File: pool/safering.go
// Package pool adapts core/ring.Ring for cross-goroutine producer/consumer
// use, and provides NUMA-free size-classed pooling on top of it.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/incrediblejr/ijcringbuffer/api"
	"github.com/incrediblejr/ijcringbuffer/core/ring"
	"golang.org/x/sys/cpu"
)

var _ api.ByteRing = (*SafeRing)(nil)

// SafeRing is the thread-safe variant the design notes call for: the
// bare Ring stays lock-free and synchronisation-free, and this wrapper
// supplies the acquire/release publishing discipline so one producer
// goroutine and one consumer goroutine can drive it concurrently. The
// discipline here is a mutex rather than raw atomics on the three cursors
// individually, because the cursors are not independent: is-split and the
// query formulas read all three together, and publishing them one at a
// time without a lock would let a consumer observe a torn, inconsistent
// triple.
type SafeRing struct {
	mu   sync.Mutex
	ring ring.Ring

	_ cpu.CacheLinePad

	produced  atomic.Uint64
	refused   atomic.Uint64
	tailSkips atomic.Uint64
}

// NewSafeRing wraps a freshly initialized Ring of the given power-of-two
// size over data.
func NewSafeRing(data []byte, size uint32) *SafeRing {
	sr := &SafeRing{}
	sr.ring.Init(data, size)
	return sr
}

// Produce stores src as a single contiguous record. See core/ring.Ring.Produce.
func (sr *SafeRing) Produce(src []byte) bool {
	sr.mu.Lock()
	before := sr.ring.ConsumeableSize()
	ok := sr.ring.Produce(src)
	after := sr.ring.ConsumeableSize()
	sr.mu.Unlock()

	if !ok {
		sr.refused.Add(1)
		return false
	}
	sr.produced.Add(1)
	// A tail-skip always grows the reported consumeable size by more than
	// len(src) alone would, because the skip stores padding as well.
	if after-before > uint32(len(src)) {
		sr.tailSkips.Add(1)
	}
	return true
}

// Peek returns a copy-free view of the contiguous readable run. Callers
// must not retain the slice past the next Consume call on this SafeRing,
// since the producer may reuse that memory once freed.
func (sr *SafeRing) Peek() []byte {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.ring.Peek()
}

// Consume advances the read cursor by n bytes. See core/ring.Ring.Consume.
func (sr *SafeRing) Consume(n uint32) {
	sr.mu.Lock()
	sr.ring.Consume(n)
	sr.mu.Unlock()
}

// ConsumeableSizeContinuous reports the current contiguous readable length.
func (sr *SafeRing) ConsumeableSizeContinuous() uint32 {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.ring.ConsumeableSizeContinuous()
}

// ConsumeableSize reports the current total readable length.
func (sr *SafeRing) ConsumeableSize() uint32 {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.ring.ConsumeableSize()
}

// IsEmpty reports whether every produced byte has been consumed.
func (sr *SafeRing) IsEmpty() bool {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.ring.IsEmpty()
}

// IsFull reports whether the ring is at capacity.
func (sr *SafeRing) IsFull() bool {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.ring.IsFull()
}

// Reset returns the ring to its initial empty state, for reuse from a pool.
func (sr *SafeRing) Reset() {
	sr.mu.Lock()
	sr.ring.Reset()
	sr.mu.Unlock()
}

// Size returns the ring's fixed capacity, set once at construction.
func (sr *SafeRing) Size() uint32 {
	return sr.ring.Size()
}

// Stats is a point-in-time snapshot of SafeRing's lifetime counters.
type Stats struct {
	Produced  uint64
	Refused   uint64
	TailSkips uint64
}

// Stats returns the lifetime produce/refuse/tail-skip counters, read
// without locking the ring itself.
func (sr *SafeRing) Stats() Stats {
	return Stats{
		Produced:  sr.produced.Load(),
		Refused:   sr.refused.Load(),
		TailSkips: sr.tailSkips.Load(),
	}
}
