// Package delivery defines the servers that expose the application.
package delivery

import "context"

// Delivery is a long-running server started by the binaries and stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
