// Package lifecycle holds the limits shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart and OnStop hook.
const DefaultTimeout = 10 * time.Second
