package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A server that fails to serve, for example because its port is taken,
	// is reported as an error.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
