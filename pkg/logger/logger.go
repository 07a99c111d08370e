package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Log is the process-wide logger. It falls back to slog's default until Init runs.
var Log = slog.Default()

// Options configures Init.
type Options struct {
	Level             string // debug, info, warn, error
	SentryDSN         string
	SentryEnvironment string
	Output            io.Writer // defaults to os.Stdout
	// Extractors add request-scoped attributes such as the request ID.
	Extractors []ContextExtractor
}

// Init builds the JSON logger and, when a Sentry DSN is present,
// forwards warnings and errors to Sentry as well.
func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handler := slog.Handler(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	}))

	if opts.SentryDSN != "" {
		if sentryHandler, err := newSentryHandler(opts.SentryDSN, opts.SentryEnvironment); err != nil {
			slog.New(handler).Error("failed to initialize Sentry", "error", err)
		} else {
			handler = fanout{handler, sentryHandler}
		}
	}

	Log = slog.New(withExtractors(handler, opts.Extractors))
}

// Flush waits for buffered Sentry events. It is a no-op without Sentry.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
