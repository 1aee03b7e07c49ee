package server

// Server runs the enabled transports until the process is asked to stop.
type Server interface {
	// RunServer blocks until a shutdown signal arrives or a transport fails.
	RunServer()

	// Shutdown stops every transport gracefully.
	Shutdown()
}
