// Package lifecycle holds shared start/stop parameters.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown work such as closing the push channel
// and stopping the gateway.
const DefaultTimeout = 10 * time.Second
