package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/apphost/internal/host"
)

// main is the console-subsystem entrypoint. Windowed builds reuse it
// unchanged: on Windows the subsystem is selected with
// `-ldflags -H=windowsgui`, and both converge on the same bootstrap.
func main() {
	// Use a minimal logger until the bootstrap configures the full one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	os.Exit(run(os.Stdout))
}

// run encapsulates the bootstrap invocation for easier testing; extra options
// let tests substitute the OS-touching collaborators.
func run(outW io.Writer, opts ...host.Option) int {
	entry := host.EntryDescriptor{
		Name:            "hostdemo",
		PositionalUsage: "[options]",
		Main: func(args []string) int {
			slog.Info("Entry point reached.", "args", args[1:])
			fmt.Fprintln(outW, "hostdemo bootstrap complete")
			return 0
		},
	}

	return host.New(entry, opts...).Run(context.Background())
}
