// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived
// resources (database connections, the HTTP server).
const DefaultTimeout = 10 * time.Second
