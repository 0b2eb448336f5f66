// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown is implemented by components that hold resources
// needing an orderly release, such as a metrics.Server.
type GracefulShutdown interface {
	// Shutdown releases the component's resources, returning an error if
	// it could not complete cleanly.
	Shutdown() error
}
