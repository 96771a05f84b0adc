package server

import "context"

// Server defines the lifecycle of the process.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives
	// or ctx is cancelled.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
