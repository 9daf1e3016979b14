package cvar

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolDefaults(t *testing.T) {
	t.Parallel()

	r := NewRegistry("test")
	on := r.Bool("on_by_default", true, "", "Kernel")
	off := r.Bool("off_by_default", false, "", "General")

	require.NoError(t, r.Parse(nil))

	assert.True(t, *on)
	assert.False(t, *off)
	assert.False(t, r.Changed("on_by_default"))
}

func TestParseSetsValues(t *testing.T) {
	t.Parallel()

	r := NewRegistry("test")
	console := r.Bool("enable_console", false, "", "General")
	level := r.String("log_level", "info", "", "Logging")

	err := r.Parse([]string{"--enable_console", "--log_level", "debug"})

	require.NoError(t, err)
	assert.True(t, *console)
	assert.Equal(t, "debug", *level)
	assert.True(t, r.Changed("enable_console"))
	assert.True(t, r.Changed("log_level"))
}

func TestParseUnknownOption(t *testing.T) {
	t.Parallel()

	r := NewRegistry("test")
	r.Bool("known", false, "", "General")

	err := r.Parse([]string{"--unknown"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	r := NewRegistry("test")
	r.Bool("known", false, "", "General")

	err := r.Parse([]string{"--help"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}

func TestValueFallbacks(t *testing.T) {
	t.Parallel()

	r := NewRegistry("test")

	assert.True(t, r.BoolValue("never_registered", true))
	assert.Equal(t, "fb", r.StringValue("never_registered", "fb"))
}

func TestUsageGroupsByCategory(t *testing.T) {
	t.Parallel()

	r := NewRegistry("test")
	r.Bool("win32_high_freq", true, "Requests high performance timing.", "Kernel")
	r.Bool("enable_console", false, "Open a console window.", "General")

	var buf bytes.Buffer
	r.Usage(&buf)

	out := buf.String()
	assert.Contains(t, out, "Kernel:")
	assert.Contains(t, out, "General:")
	assert.Contains(t, out, "win32_high_freq")
	assert.Contains(t, out, "enable_console")
}
