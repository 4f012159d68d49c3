package server

import (
	"context"
	"net"
	"net/http"
)

// Startup builds the root HTTP handler served by the server.
type Startup interface {
	Init() http.Handler
}

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until ctx is cancelled, a termination signal arrives or
// the listener fails, and then shuts down gracefully.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Addr is the bound listener address.
	Addr() net.Addr
}
