// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as server shutdown and
// database pings so a hung dependency cannot stall the whole process.
const DefaultTimeout = 10 * time.Second
