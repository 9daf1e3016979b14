package host

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/apphost/internal/argv"
	"github.com/vk/apphost/internal/console"
	"github.com/vk/apphost/internal/cvar"
	"github.com/vk/apphost/internal/hwcap"
	"github.com/vk/apphost/internal/logging"
	"github.com/vk/apphost/internal/platform"
	"github.com/vk/apphost/internal/timerres"
)

// Exit codes returned by Run. Anything else is the entry point's own value.
const (
	ExitOK           = 0
	ExitBadArguments = 1
	// ExitNoCapability is deliberately negative so it cannot collide with
	// conventional application exit codes; the OS masks it (255 on POSIX).
	ExitNoCapability = -1
)

// Launch options recognized by the sequencer itself.
var (
	enableConsole = cvar.Default.Bool("enable_console", false,
		"Open a console window with the main window.", "General")
	win32HighFreq = cvar.Default.Bool("win32_high_freq", true,
		"Requests high performance timing from the NT kernel.", "Kernel")
)

// EntryPoint is the application's main logic. It receives the full token
// sequence (element 0 is the executable path) and its return value becomes
// the process exit code.
type EntryPoint func(args []string) int

// EntryDescriptor describes how to invoke the application once bootstrap
// completes. It is supplied by the application and never copied or mutated
// by the sequencer.
type EntryDescriptor struct {
	// Name identifies the application in logs.
	Name string
	// TransparentOptions bypasses launch-option parsing entirely; the raw
	// token sequence is handed to the entry point untouched.
	TransparentOptions bool
	// PositionalUsage is the usage line shown on --help.
	PositionalUsage string
	// PositionalOptions names the positional arguments the application
	// accepts, in order.
	PositionalOptions []string
	// Main is the entry point. Bootstrap invokes it exactly once.
	Main EntryPoint
}

// Bootstrap runs the fixed initialization sequence for one process. Build one
// with New, call Run once. All OS-touching collaborators are injectable so
// the sequence is testable without OS state.
type Bootstrap struct {
	entry EntryDescriptor
	reg   *cvar.Registry

	console      console.State
	defaultsPath string
	stdout       io.Writer
	stderr       io.Writer

	marshal       func() ([]string, error)
	negotiate     func(*console.State)
	initPlatform  func()
	initLogging   func(name string) (*slog.Logger, func())
	checkHardware func() error
	requestTiming func() timerres.Outcome
}

// Option adjusts a Bootstrap before it runs.
type Option func(*Bootstrap)

// WithRegistry substitutes the launch configuration registry.
func WithRegistry(reg *cvar.Registry) Option {
	return func(b *Bootstrap) { b.reg = reg }
}

// WithMarshaller substitutes the argument marshaller.
func WithMarshaller(fn func() ([]string, error)) Option {
	return func(b *Bootstrap) { b.marshal = fn }
}

// WithConsolePolicy substitutes the headless-launch policy used by the real
// console negotiator.
func WithConsolePolicy(p console.Policy) Option {
	return func(b *Bootstrap) {
		n := &console.Negotiator{Policy: p}
		b.negotiate = n.Negotiate
	}
}

// WithNegotiator substitutes console negotiation wholesale.
func WithNegotiator(fn func(*console.State)) Option {
	return func(b *Bootstrap) { b.negotiate = fn }
}

// WithPlatformInit substitutes the OS subsystem initializer.
func WithPlatformInit(fn func()) Option {
	return func(b *Bootstrap) { b.initPlatform = fn }
}

// WithLoggingInit substitutes the logging lifecycle. The returned func is the
// shutdown hook; the sequencer guarantees it runs exactly once after logging
// initialization ran.
func WithLoggingInit(fn func(name string) (*slog.Logger, func())) Option {
	return func(b *Bootstrap) { b.initLogging = fn }
}

// WithCapabilityCheck substitutes the mandatory hardware gate.
func WithCapabilityCheck(fn func() error) Option {
	return func(b *Bootstrap) { b.checkHardware = fn }
}

// WithTimerRequest substitutes the timer resolution negotiator.
func WithTimerRequest(fn func() timerres.Outcome) Option {
	return func(b *Bootstrap) { b.requestTiming = fn }
}

// WithDefaultsFile points the registry's defaults overlay at path instead of
// the file next to the executable.
func WithDefaultsFile(path string) Option {
	return func(b *Bootstrap) { b.defaultsPath = path }
}

// WithStdout redirects usage output, for tests.
func WithStdout(w io.Writer) Option {
	return func(b *Bootstrap) { b.stdout = w }
}

// WithStderr redirects fatal diagnostics, for tests.
func WithStderr(w io.Writer) Option {
	return func(b *Bootstrap) { b.stderr = w }
}

// New builds a Bootstrap around the application's entry descriptor.
func New(entry EntryDescriptor, opts ...Option) *Bootstrap {
	b := &Bootstrap{
		entry:         entry,
		reg:           cvar.Default,
		marshal:       argv.Marshal,
		initPlatform:  platform.InitCOM,
		checkHardware: hwcap.Require,
		requestTiming: timerres.Request,
	}
	b.negotiate = (&console.Negotiator{}).Negotiate
	b.initLogging = func(name string) (*slog.Logger, func()) {
		s := logging.Initialize(name)
		return s.Logger(), s.Shutdown
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// outW and errW resolve the output writers at use time rather than at New
// time: console negotiation may rebind os.Stdout/os.Stderr mid-Run, and
// diagnostics must follow the rebinding to stay visible.
func (b *Bootstrap) outW() io.Writer {
	if b.stdout != nil {
		return b.stdout
	}
	return os.Stdout
}

func (b *Bootstrap) errW() io.Writer {
	if b.stderr != nil {
		return b.stderr
	}
	return os.Stderr
}

// ConsoleAttached reports whether negotiation bound the standard streams to
// a visible console. False both when negotiation never ran and when it
// degraded to headless.
func (b *Bootstrap) ConsoleAttached() bool {
	return b.console.Attached()
}

// defaultsFilePath resolves where the launch defaults overlay lives when the
// application did not say: "<name>.hcl" next to the executable.
func (b *Bootstrap) defaultsFilePath() string {
	if b.defaultsPath != "" {
		return b.defaultsPath
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), b.entry.Name+".hcl")
}
