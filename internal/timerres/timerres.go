// Package timerres negotiates the OS scheduler timer resolution. The whole
// package is a performance hint: every failure path collapses into the
// Unavailable outcome and nothing here can return an error.
package timerres

import (
	"fmt"
	"time"
)

// Outcome is the result of a resolution request. The zero value means the
// facility is unavailable on this platform or could not be applied.
type Outcome struct {
	// Applied reports whether the kernel accepted the request.
	Applied bool
	// Resolution is the timer resolution now in effect, when Applied.
	Resolution time.Duration
}

func (o Outcome) String() string {
	if !o.Applied {
		return "unavailable"
	}
	return fmt.Sprintf("applied (%s)", o.Resolution)
}

// Request asks the kernel for the finest scheduler timer resolution it
// offers, process-wide.
func Request() Outcome {
	return request()
}
