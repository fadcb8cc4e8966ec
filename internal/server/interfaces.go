package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT is received
	// and then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is cancelled and then shuts down
	// gracefully. It returns the first serving or shutdown error.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
