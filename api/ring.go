// File: api/ring.go
// Author: momentics@gmail.com
//
// Contract satisfied by core/ring.Ring and pool.SafeRing: a contiguous,
// variable-sized byte ring buffer for single-producer/single-consumer use.

package api

// ByteRing is the contract shared by core/ring.Ring (unsynchronized) and
// pool.SafeRing (safe for one producer and one consumer goroutine).
type ByteRing interface {
	// Produce copies src into the ring as one contiguous record and
	// returns true, or refuses and returns false if it does not fit
	// anywhere. No partial write ever occurs.
	Produce(src []byte) bool

	// Peek returns the contiguous readable run starting at the read
	// cursor, of length ConsumeableSizeContinuous().
	Peek() []byte

	// Consume advances the read cursor by n bytes, freeing that span for
	// future Produce calls. n must not exceed ConsumeableSizeContinuous().
	Consume(n uint32)

	// ConsumeableSizeContinuous returns the readable length of the run
	// Peek currently exposes.
	ConsumeableSizeContinuous() uint32

	// ConsumeableSize returns the total readable length, including any
	// bytes stranded past a tail-skip that Peek does not yet expose.
	ConsumeableSize() uint32

	// IsEmpty reports whether every produced byte has been consumed.
	IsEmpty() bool

	// IsFull reports whether the ring is at capacity.
	IsFull() bool
}
