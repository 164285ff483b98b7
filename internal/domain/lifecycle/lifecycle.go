// Package lifecycle holds shared start and stop parameters.
package lifecycle

import "time"

// DefaultTimeout bounds server shutdown and client startup checks.
const DefaultTimeout = 10 * time.Second
