package server

// Server is the lifecycle contract for an inbound transport. The benefit
// vault currently runs a single HTTP server, but the aggregate in this
// package keeps the contract open for additional transports.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
