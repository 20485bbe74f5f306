// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is implemented by servers that accept external traffic.
// Serve blocks until the server stops or ctx is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
