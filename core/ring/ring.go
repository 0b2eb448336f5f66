// File: core/ring/ring.go
// Package ring implements a contiguous variable-sized ring buffer for
// single-producer / single-consumer use.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Every successfully produced record is stored as one unbroken run of
// bytes, so the consumer reads it directly via Peek without gather/scatter
// or copy-out. When a record would not fit in the remaining tail space but
// fits at the front, Produce skips the tail and writes at offset zero;
// Consume transparently follows that skip. No record is ever split across
// the wrap point.
//
// Ring is not internally synchronized: callers must serialize access, or
// use the pool.SafeRing wrapper for single-producer/single-consumer use
// across goroutines.

package ring

import "github.com/incrediblejr/ijcringbuffer/api"

var _ api.ByteRing = (*Ring)(nil)

// Ring borrows a caller-owned byte region and tracks it with three
// free-running cursors. read and write are never masked except when a
// physical offset is needed; the unsigned gap between them encodes both
// the outstanding byte count and whether a tail-skip is in flight.
type Ring struct {
	data []byte

	size uint32
	mask uint32

	read  uint32
	write uint32
	wrap  uint32
}

// Init binds data as the backing store and resets all cursors to zero.
// size must be a power of two greater than zero; violating this is a
// programming error.
func (r *Ring) Init(data []byte, size uint32) {
	if size == 0 || size&(size-1) != 0 {
		panic("ring: size must be a power of two greater than zero")
	}
	if uint32(len(data)) < size {
		panic("ring: backing storage smaller than size")
	}
	r.data = data
	r.size = size
	r.mask = size - 1
	r.read, r.write, r.wrap = 0, 0, 0
}

// Reset zeroes the three cursors; the backing storage is left untouched.
func (r *Ring) Reset() {
	r.read, r.write, r.wrap = 0, 0, 0
}

// Size returns the capacity the Ring was Init'd with.
func (r *Ring) Size() uint32 {
	return r.size
}

// cyclicDistance returns the smaller of the two wrapping-subtraction
// interpretations of a-b, so it stays correct across uint32 overflow.
func cyclicDistance(a, b uint32) uint32 {
	ab := a - b
	ba := b - a
	if ab > ba {
		return ba
	}
	return ab
}

// isSplit reports whether a tail-skip is currently in flight: the producer
// advanced write past the bytes it actually copied, forcing the cyclic gap
// between read and write above size.
func (r *Ring) isSplit() bool {
	return cyclicDistance(r.read, r.write) > r.size
}

// IsEmpty reports whether every produced byte has been consumed.
func (r *Ring) IsEmpty() bool {
	return r.read == r.write
}

// IsFull reports whether the Ring currently holds size consumeable bytes.
func (r *Ring) IsFull() bool {
	return r.ConsumeableSize() == r.size
}

// ConsumeableSizeContinuous returns the number of bytes readable in one
// contiguous run starting at Peek().
func (r *Ring) ConsumeableSizeContinuous() uint32 {
	return r.consumeableSize(true)
}

// ConsumeableSize returns the total number of readable bytes, including
// any bytes stranded past a tail-skip that Peek does not currently expose.
func (r *Ring) ConsumeableSize() uint32 {
	return r.consumeableSize(false)
}

func (r *Ring) consumeableSize(continuous bool) uint32 {
	var cs uint32
	if r.isSplit() {
		if r.read == r.wrap {
			// The consumer has reached the skip point; the readable run is
			// entirely in the front half. A zero masked write here means
			// the front filled all the way around to touch wrap.
			maskedWrite := r.write & r.mask
			if maskedWrite != 0 {
				cs = maskedWrite
			} else {
				cs = r.size
			}
		} else {
			if cyclicDistance(r.wrap, r.read) >= r.size {
				panic("ring: wrap/read distance invariant violated")
			}
			cs = (r.wrap - r.read) & r.mask
			if !continuous {
				cs += r.write & r.mask
			}
		}
	} else {
		cs = r.write - r.read
	}
	if cs > r.size {
		panic("ring: consumeable size invariant violated")
	}
	return cs
}

// Peek returns the starting slice of the contiguous readable run, of
// length ConsumeableSizeContinuous(). It never mutates state and never
// fails; on an empty Ring the returned slice has length zero but points
// at valid backing memory.
func (r *Ring) Peek() []byte {
	var off uint32
	if r.read == r.wrap && r.isSplit() {
		off = 0
	} else {
		off = r.read & r.mask
	}
	return r.data[off : off+r.ConsumeableSizeContinuous()]
}

// Consume advances the read cursor by n bytes, making that span of
// storage available for future Produce calls. n must not exceed
// ConsumeableSizeContinuous(); violating this is a programming error.
func (r *Ring) Consume(n uint32) {
	if n > r.ConsumeableSizeContinuous() {
		panic("ring: consume exceeds contiguous consumeable size")
	}
	if r.read == r.wrap && r.isSplit() {
		r.read += r.size + (r.size - (r.read & r.mask)) + n
	} else {
		r.read += n
	}
}

// Produce copies src into the Ring as a single contiguous record and
// returns true, or refuses (returning false, leaving the Ring byte-for-byte
// and cursor-for-cursor unchanged) if it does not fit anywhere. No partial
// write ever occurs.
//
// Besides the ordinary tail write, Produce recognizes the case where the
// consumer has drained everything but the write cursor still sits mid
// buffer: rather than limit the producer to the remaining tail, it resets
// to the front and gives the full buffer back. This auto-reset is the
// entire point of tracking wrap as a separate cursor instead of simply
// rejecting writes that don't fit in the tail.
func (r *Ring) Produce(src []byte) bool {
	insize := uint32(len(src))
	maskedWrite := r.write & r.mask

	if r.isSplit() {
		var avail uint32
		if r.wrap == r.read {
			if maskedWrite == 0 {
				avail = 0
			} else {
				avail = r.size - maskedWrite
			}
		} else {
			if (r.read & r.mask) < (r.write & r.mask) {
				panic("ring: split produce invariant violated")
			}
			avail = (r.read - r.write) & r.mask
		}
		if avail < insize {
			return false
		}
		copy(r.data[maskedWrite:maskedWrite+insize], src)
		r.write += insize
		return true
	}

	empty := r.IsEmpty()

	if maskedWrite != 0 && empty && r.size >= insize {
		return r.tailSkip(src, insize, maskedWrite)
	}

	if maskedWrite == 0 && !empty {
		return r.produceFront(src, insize)
	}

	if r.size-maskedWrite >= insize {
		copy(r.data[maskedWrite:maskedWrite+insize], src)
		r.write += insize
		return true
	}

	return r.produceFront(src, insize)
}

func (r *Ring) produceFront(src []byte, insize uint32) bool {
	if (r.read & r.mask) < insize {
		return false
	}
	return r.tailSkip(src, insize, r.write&r.mask)
}

func (r *Ring) tailSkip(src []byte, insize, maskedWrite uint32) bool {
	r.wrap = r.write
	copy(r.data[:insize], src)
	r.write += r.size + (r.size - maskedWrite) + insize
	if r.write&r.mask != insize&r.mask {
		panic("ring: tail-skip write-cursor invariant violated")
	}
	return true
}
