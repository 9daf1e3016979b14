// Package logging owns the logging subsystem's bootstrap lifecycle: an
// Initialize call before the capability gate and a Shutdown bracketing the
// entry point. Options resolve through the launch configuration registry.
package logging

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/vk/apphost/internal/cvar"
)

var (
	logLevel  = cvar.Default.String("log_level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.", "Logging")
	logFormat = cvar.Default.String("log_format", "text", "Log output format. Options: 'text' or 'json'.", "Logging")
	logFile   = cvar.Default.String("log_file", "", "Write logs to this file instead of stderr.", "Logging")
)

// Session is one initialized logging lifetime. Shutdown flushes and closes
// the sink; it is safe to call more than once but only the first call acts.
type Session struct {
	logger *slog.Logger

	shutdown sync.Once
	flush    func()
}

// Initialize builds the process logger according to the launch configuration,
// tags every record with the hosting application's name, and installs the
// logger as the process default. A log file that cannot be opened degrades to
// stderr; logging initialization itself never fails.
func Initialize(name string) *Session {
	var out io.Writer = os.Stderr
	flush := func() {}

	if path := *logFile; path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			bw := bufio.NewWriter(f)
			out = bw
			flush = func() {
				bw.Flush()
				f.Close()
			}
		}
	}

	logger := newLogger(*logLevel, *logFormat, out).With("app", name)
	slog.SetDefault(logger)

	return &Session{logger: logger, flush: flush}
}

// Logger returns the session's logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Shutdown flushes and releases the log sink. Exactly one shutdown runs per
// session regardless of how many times it is called.
func (s *Session) Shutdown() {
	s.shutdown.Do(s.flush)
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
