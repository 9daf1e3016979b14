package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/apphost/internal/cvar"
	"github.com/vk/apphost/internal/host"
)

// quietOptions keeps the demo's run() off the process-wide registry, logger,
// and OS command line.
func quietOptions(args []string) []host.Option {
	return []host.Option{
		host.WithRegistry(cvar.NewRegistry("hostdemo")),
		host.WithMarshaller(func() ([]string, error) { return args, nil }),
		host.WithLoggingInit(func(string) (*slog.Logger, func()) {
			return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), func() {}
		}),
		host.WithPlatformInit(func() {}),
		host.WithCapabilityCheck(func() error { return nil }),
	}
}

func TestRunReachesEntryPoint(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	code := run(out, quietOptions([]string{"hostdemo"})...)

	require.Equal(t, host.ExitOK, code)
	assert.Contains(t, out.String(), "hostdemo bootstrap complete")
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	opts := append(quietOptions([]string{"hostdemo", "--help"}), host.WithStdout(out))

	code := run(&bytes.Buffer{}, opts...)

	require.Equal(t, host.ExitOK, code)
	assert.Contains(t, out.String(), "Usage: hostdemo")
}
