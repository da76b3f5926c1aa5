// Package delivery contains the inbound adapters of the application.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application root.
type Delivery interface {
	Serve(ctx context.Context) error
}
