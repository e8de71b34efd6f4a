// Package delivery defines the contract every transport-level server
// implements.
package delivery

import "context"

// Delivery is a serving endpoint (HTTP today). Serve blocks until the
// server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
