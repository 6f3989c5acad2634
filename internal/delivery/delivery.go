// Package delivery defines the interface every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport server started by the fx app.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
