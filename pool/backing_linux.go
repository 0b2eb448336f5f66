// File: pool/backing_linux.go
//go:build linux

//
// Package pool: Linux-specific backing allocator for ring storage.
//
// Large size classes are mapped via mmap with MAP_HUGETLB for 2 MiB pages,
// avoiding TLB pressure on high-throughput rings. Smaller classes, and any
// hugepage allocation failure, fall back to the Go heap.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "syscall"

const hugePageThreshold = 64 << 10 // classes at or above this size try hugepages

// allocBacking returns a zeroed byte slice of exactly size bytes suitable
// as a Ring's backing storage.
func allocBacking(size int) []byte {
	if size < hugePageThreshold {
		return make([]byte, size)
	}

	const hugeSize = 2 << 20
	length := ((size + hugeSize - 1) / hugeSize) * hugeSize

	data, err := syscall.Mmap(-1, 0, length,
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_ANONYMOUS|syscall.MAP_PRIVATE|syscall.MAP_HUGETLB)
	if err != nil {
		return make([]byte, size)
	}
	return data[:size]
}
