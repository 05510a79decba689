package server

// Server is the kiosk web server lifecycle.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully. It blocks until shutdown completed.
	RunServer()

	// Shutdown stops accepting connections and ends open viewer streams.
	Shutdown()
}
