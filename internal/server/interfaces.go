package server

// Server defines the lifecycle contract of the process-level server managed
// by this package.
//
// Implementations bind every listener in [RunServer] before serving, block
// until shutdown is requested and release resources in [Shutdown].
type Server interface {
	// RunServer binds all listeners and serves requests until SIGINT,
	// SIGTERM or SIGQUIT arrives. It returns an error wrapping [ErrBind]
	// when a listener cannot bind, or the first serve error.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
