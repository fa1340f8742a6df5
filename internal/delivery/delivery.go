// Package delivery defines the entry points through which the application
// is exposed to the outside world.
package delivery

import "context"

// Delivery is implemented by every transport the application serves on.
type Delivery interface {
	// Serve blocks until the transport stops or the context is canceled.
	Serve(ctx context.Context) error
}
