// Package console decides whether the process should expose a visible
// console and rebinds the standard streams accordingly. The decision combines
// a parent-console attach attempt with a launch-environment heuristic so that
// GUI-subsystem processes do not silently discard diagnostic output, while
// shell launches do not get a spurious extra window.
package console

import (
	"os"

	"github.com/mattn/go-isatty"
)

// State records whether the standard streams are bound to a visible console.
// It is written at most once, during bootstrap, and read-only afterward. The
// zero value means "not negotiated": Attached reports false until a recording
// happens.
type State struct {
	recorded bool
	attached bool
}

// Record stores the negotiation outcome. Only the first call has any effect.
func (s *State) Record(attached bool) {
	if s.recorded {
		return
	}
	s.recorded = true
	s.attached = attached
}

// Attached reports whether a visible console is bound to the standard streams.
func (s *State) Attached() bool { return s.attached }

// Recorded reports whether negotiation has happened at all.
func (s *State) Recorded() bool { return s.recorded }

// Policy reports whether the current launch context is headless, i.e. a
// non-shell launcher such as a file explorer started the process. It exists
// as a named, replaceable function so tests can substitute it without
// touching OS state.
type Policy func() bool

// DefaultPolicy treats the launch as headless when the well-known SHELL
// variable is absent and stdout is not already a terminal. SHELL alone is the
// historical signal (terminals that behave like launchers do not export it),
// but it can leak through double-click launches, so the tty probe backs it up.
func DefaultPolicy() bool {
	if os.Getenv("SHELL") != "" {
		return false
	}
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Negotiator performs the attach-or-degrade sequence. Call Negotiate at most
// once per process; re-binding the standard streams is not reversible.
type Negotiator struct {
	// Policy reports a headless launch context. Nil means DefaultPolicy.
	Policy Policy
}

// Negotiate attempts to attach to the parent's console and, when the launch
// context looks interactive, allocates one and rebinds stdout/stderr to it.
// Every failure path degrades silently to headless; negotiation never aborts
// the process. The outcome is recorded on st.
func (n *Negotiator) Negotiate(st *State) {
	policy := n.Policy
	if policy == nil {
		policy = DefaultPolicy
	}
	st.Record(negotiate(policy))
}

// osHooks are the OS calls the attach sequence drives, split out so the
// decision logic stays testable off-platform.
type osHooks struct {
	// attachParent reports whether the parent process's console could be
	// attached.
	attachParent func() bool
	// alloc requests a fresh console window. Its outcome is deliberately
	// ignored: when the parent attach succeeded the process already holds a
	// console and the allocation fails by contract, which is fine.
	alloc func()
	// rebind points the standard streams at the console's output device and
	// reports success.
	rebind func() bool
}

// negotiateWith runs the attach-or-degrade sequence over the given hooks:
// no parent console or a headless launch context means headless; otherwise
// allocate best-effort and report whether the streams were rebound.
func negotiateWith(h osHooks, headless Policy) bool {
	if !h.attachParent() || headless() {
		return false
	}
	h.alloc()
	return h.rebind()
}
