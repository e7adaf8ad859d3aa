// Package delivery defines the contract for transport layers that expose the
// application to the outside world.
package delivery

import "context"

// Delivery is a transport that serves the application until its context is
// cancelled or the server is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
