// Package delivery defines the contract shared by all serving surfaces.
package delivery

import "context"

// Delivery is implemented by every server the application can run
// (ingestion HTTP server, dispatch worker server).
type Delivery interface {
	Serve(ctx context.Context) error
}
