// Package lifecycle holds process-wide start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds every start hook and graceful shutdown.
const DefaultTimeout = 15 * time.Second
