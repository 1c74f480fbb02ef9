// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP API, worker push
// receiver). Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
