// File: pool/ringpool.go
// Package pool: size-classed SafeRing pooling, the byte-ring analogue of
// hioload-ws's NUMA buffer pool manager.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/incrediblejr/ijcringbuffer/internal/concurrency"
	"github.com/incrediblejr/ijcringbuffer/internal/normalize"
)

// sizeClasses are the power-of-two ring capacities RingPoolManager serves.
// Requests are rounded up to the smallest class that fits, exactly as
// core/buffer's byte-pool size classes did for network buffers.
var sizeClasses = []uint32{
	1 << 10, // 1K
	4 << 10, // 4K
	16 << 10,
	64 << 10,
	256 << 10,
	1 << 20, // 1M
}

const recycleCapacityPerClass = 64

// RingPoolManager lazily allocates, and recycles, one free list of
// *SafeRing per size class.
type RingPoolManager struct {
	mu    sync.RWMutex
	class map[uint32]*classPool
}

type classPool struct {
	size uint32
	free *concurrency.Recycler[*SafeRing]
}

// NewRingPoolManager creates an empty manager; subpools are created lazily
// on first Acquire for a given class.
func NewRingPoolManager() *RingPoolManager {
	return &RingPoolManager{class: make(map[uint32]*classPool)}
}

// Acquire returns a *SafeRing whose capacity is the smallest size class
// that is >= requested, either recycled from a prior Release or freshly
// allocated.
func (m *RingPoolManager) Acquire(requested uint32) *SafeRing {
	class := normalize.RingSizeClass(requested, sizeClasses)
	cp := m.getOrCreateClass(class)

	if sr, ok := cp.free.Take(); ok {
		sr.Reset()
		return sr
	}
	return NewSafeRing(allocBacking(int(class)), class)
}

// Release returns sr to its class's free list for reuse. sr must have been
// obtained from Acquire and must not be used by the caller afterward. If
// the free list for that class is already full, the ring is simply
// dropped and left for the garbage collector.
func (m *RingPoolManager) Release(sr *SafeRing) {
	cp := m.getOrCreateClass(sr.Size())
	cp.free.Offer(sr)
}

func (m *RingPoolManager) getOrCreateClass(class uint32) *classPool {
	m.mu.RLock()
	cp, ok := m.class[class]
	m.mu.RUnlock()
	if ok {
		return cp
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cp, ok = m.class[class]; ok {
		return cp
	}
	cp = &classPool{
		size: class,
		free: concurrency.NewRecycler[*SafeRing](recycleCapacityPerClass),
	}
	m.class[class] = cp
	return cp
}
