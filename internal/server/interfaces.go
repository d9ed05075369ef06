package server

// Server is the lifecycle of the development backend process.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully and returns.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
