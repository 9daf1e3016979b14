package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateZeroValue(t *testing.T) {
	t.Parallel()

	var st State
	assert.False(t, st.Recorded())
	assert.False(t, st.Attached())
}

func TestStateRecordsOnce(t *testing.T) {
	t.Parallel()

	var st State
	st.Record(true)
	assert.True(t, st.Recorded())
	assert.True(t, st.Attached())

	// The cell is single-writer: a second write must not take.
	st.Record(false)
	assert.True(t, st.Attached())
}

func TestDefaultPolicyWithShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/bash")

	assert.False(t, DefaultPolicy(), "a SHELL-bearing environment is an interactive launch")
}

func TestDefaultPolicyWithoutShell(t *testing.T) {
	t.Setenv("SHELL", "")

	// Test processes run with redirected stdout, so the tty probe cannot
	// rescue the missing SHELL signal here.
	assert.True(t, DefaultPolicy(), "no SHELL and no terminal means a non-shell launcher")
}

func TestNegotiateWith(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		attach    bool
		headless  bool
		rebind    bool
		want      bool
		wantAlloc bool
	}{
		{name: "no parent console", attach: false, headless: false, rebind: true, want: false, wantAlloc: false},
		{name: "headless launch context", attach: true, headless: true, rebind: true, want: false, wantAlloc: false},
		{name: "interactive shell launch", attach: true, headless: false, rebind: true, want: true, wantAlloc: true},
		{name: "rebind failure degrades", attach: true, headless: false, rebind: false, want: false, wantAlloc: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			allocated := false
			h := osHooks{
				attachParent: func() bool { return tc.attach },
				// Allocation outcome must not influence the verdict: with a
				// parent console attached the OS refuses a second one.
				alloc:  func() { allocated = true },
				rebind: func() bool { return tc.rebind },
			}

			got := negotiateWith(h, func() bool { return tc.headless })

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantAlloc, allocated)
		})
	}
}

func TestNegotiatorUsesPolicy(t *testing.T) {
	t.Parallel()

	calls := 0
	n := &Negotiator{Policy: func() bool {
		calls++
		return true
	}}

	var st State
	n.Negotiate(&st)

	assert.True(t, st.Recorded())
	assert.False(t, st.Attached(), "a headless verdict must never allocate a console")
	// On platforms without a parent console the policy may be short-circuited,
	// so only assert it was not called more than once.
	assert.LessOrEqual(t, calls, 1)
}
