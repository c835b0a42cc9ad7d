package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server; ctx bounds the wait for
	// in-flight requests.
	Shutdown(ctx context.Context)
}

// Job is a background task that runs until its context is cancelled.
type Job func(ctx context.Context)
