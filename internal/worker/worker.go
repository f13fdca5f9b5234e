package worker

import (
	"context"
)

// Worker is the contract every background worker implements
type Worker interface {
	// Start runs the worker loop until the context is cancelled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the worker to finish
	Stop() error

	// Name returns the worker name
	Name() string
}
