//go:build !windows

package console

// negotiate is a no-op outside Windows: there is no GUI/console subsystem
// split, so the process keeps whatever streams it inherited and stays
// headless as far as this negotiator is concerned.
func negotiate(Policy) bool {
	return false
}
