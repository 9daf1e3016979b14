//go:build !windows

package timerres

// request reports Unavailable: no supported non-Windows platform exposes an
// adjustable scheduler timer resolution to user processes.
func request() Outcome {
	return Outcome{}
}
