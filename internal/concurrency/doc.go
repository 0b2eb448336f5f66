// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-goroutine primitives shared by the pool package: a lock-free
// single-producer/single-consumer recycling ring used to hand pooled
// *ring.Ring wrappers back and forth between an allocator and a releaser
// without a mutex.
package concurrency
