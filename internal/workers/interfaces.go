// Package workers provides the background sweeps of the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block until the context is cancelled
// or spawn goroutines internally.
type Worker interface {
	Run(ctx context.Context)
}
