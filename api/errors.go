// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the ring buffer library.

package api

import "errors"

// ErrCapacityExceeded is returned by pool.RetryQueue.Drain when the ring
// still refuses a queued payload after replay.
var ErrCapacityExceeded = errors.New("record exceeds ring capacity")
