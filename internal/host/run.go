package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vk/apphost/internal/argv"
	"github.com/vk/apphost/internal/ctxlog"
	"github.com/vk/apphost/internal/version"
)

// Run executes the bootstrap sequence and returns the process exit code.
// Transitions are strictly linear and forward-only; Run must be called at
// most once per process.
func (b *Bootstrap) Run(ctx context.Context) int {
	// Arguments first: nothing downstream can proceed without them.
	args, err := b.marshal()
	if err == nil && len(args) == 0 {
		// Token 0 is OS-guaranteed; an empty sequence means the marshaller
		// misbehaved.
		err = argv.ErrNoArguments
	}
	if err != nil {
		fmt.Fprintf(b.errW(), "%s: %v\n", b.entry.Name, err)
		return ExitBadArguments
	}

	// Resolve the launch configuration, unless the application asked for the
	// raw token sequence. The defaults-file overlay is best-effort; its error
	// is held until logging is up.
	var defaultsErr error
	if !b.entry.TransparentOptions {
		if err := b.reg.Parse(args[1:]); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				b.usage(b.outW())
				return ExitOK
			}
			fmt.Fprintf(b.errW(), "%s: %v\n", b.entry.Name, err)
			b.usage(b.errW())
			return ExitBadArguments
		}
		if path := b.defaultsFilePath(); path != "" {
			defaultsErr = b.reg.LoadDefaultsFile(path)
		}
	}

	// Attach a console so output lands somewhere visible. Opt-in, at most
	// once, and any failure degrades to headless.
	if b.reg.BoolValue("enable_console", *enableConsole) {
		b.negotiate(&b.console)
	}

	// Subsystems: COM (best-effort, double-init tolerated) and logging.
	b.initPlatform()
	logger, shutdownLogging := b.initLogging(b.entry.Name)
	defer shutdownLogging()
	ctx = ctxlog.WithLogger(ctx, logger)

	if defaultsErr != nil {
		logger.Warn("Launch defaults file ignored.", "error", defaultsErr)
	}
	if b.console.Recorded() {
		logger.Debug("Console attachment negotiated.", "attached", b.console.Attached())
	}

	// The hardware gate. Nothing of the application may be constructed past
	// a failure here.
	if err := b.checkHardware(); err != nil {
		logger.Error(err.Error())
		fmt.Fprintf(b.errW(), "%s: %v\n", b.entry.Name, err)
		return ExitNoCapability
	}

	logger.Info(version.Banner())

	// Purely a performance hint; the outcome is informational.
	if b.reg.BoolValue("win32_high_freq", *win32HighFreq) {
		outcome := b.requestTiming()
		ctxlog.FromContext(ctx).Debug("Scheduler timer negotiation finished.", "outcome", outcome.String())
	}

	// Hand over to the application, exactly once. Its return value is an
	// opaque exit code, not an error to interpret.
	return b.entry.Main(args)
}

// usage renders the full help text: the application's usage line, its
// positional arguments, and the recognized launch options.
func (b *Bootstrap) usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s %s\n", b.entry.Name, b.entry.PositionalUsage)
	if len(b.entry.PositionalOptions) > 0 {
		fmt.Fprintf(w, "Positional arguments: %s\n", strings.Join(b.entry.PositionalOptions, " "))
	}
	fmt.Fprintln(w)
	b.reg.Usage(w)
}
