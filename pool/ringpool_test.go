// File: pool/ringpool_test.go
package pool

import "testing"

func TestRingPoolManagerAcquireRoundsToClass(t *testing.T) {
	m := NewRingPoolManager()
	sr := m.Acquire(100)
	if got := sr.Size(); got != 1<<10 {
		t.Fatalf("Acquire(100).Size() = %d, want %d", got, 1<<10)
	}
}

func TestRingPoolManagerRecyclesReleasedRing(t *testing.T) {
	m := NewRingPoolManager()

	first := m.Acquire(1 << 10)
	first.Produce([]byte("leftover"))
	m.Release(first)

	second := m.Acquire(1 << 10)
	if second != first {
		t.Fatal("expected Acquire to return the released ring from the free list")
	}
	if !second.IsEmpty() {
		t.Fatal("expected Acquire to hand back a reset ring")
	}
}

func TestRingPoolManagerAllocatesFreshWhenFreeListEmpty(t *testing.T) {
	m := NewRingPoolManager()
	a := m.Acquire(4 << 10)
	b := m.Acquire(4 << 10)
	if a == b {
		t.Fatal("expected two live acquisitions with an empty free list to be distinct rings")
	}
}

func TestRingPoolManagerLargestClassFallback(t *testing.T) {
	m := NewRingPoolManager()
	sr := m.Acquire(10 << 20)
	if got, want := sr.Size(), sizeClasses[len(sizeClasses)-1]; got != want {
		t.Fatalf("Acquire(10<<20).Size() = %d, want %d", got, want)
	}
}
