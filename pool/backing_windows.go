// File: pool/backing_windows.go
//go:build windows

//
// Package pool: Windows-specific backing allocator for ring storage.
//
// Large size classes are mapped via VirtualAlloc with MEM_LARGE_PAGES;
// smaller classes, and any large-page allocation failure, fall back to the
// Go heap.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const hugePageThreshold = 64 << 10

// allocBacking returns a zeroed byte slice of exactly size bytes suitable
// as a Ring's backing storage.
func allocBacking(size int) []byte {
	if size < hugePageThreshold {
		return make([]byte, size)
	}

	ret, _, _ := windows.NewLazySystemDLL("kernel32.dll").NewProc("VirtualAlloc").Call(
		0,
		uintptr(size),
		uintptr(windows.MEM_RESERVE|windows.MEM_COMMIT|windows.MEM_LARGE_PAGES),
		uintptr(windows.PAGE_READWRITE),
	)
	if ret == 0 {
		return make([]byte, size)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ret)), size)
}
