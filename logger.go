package beacon

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// A componentLevel is one override pairing a component identifier
// with the minimum severity accepted for it.
type componentLevel struct {
	component string
	level     Level
}

// A Logger filters log events against a global threshold
// plus per-component overrides and writes accepted events,
// one formatted line each, to its output stream.
//
// The global threshold and the override table sit behind separate locks;
// all methods are safe for concurrent use without external locking.
type Logger struct {
	mu    sync.RWMutex // guards level
	level Level

	cmu        sync.RWMutex // guards components
	components []componentLevel

	out      io.Writer
	color    bool
	env      string
	reporter *sentryReporter
}

// New constructs a Logger.
//
// Events are printed to os.Stderr by default.
// The default global threshold is Info.
// Color defaults to on, overridable through BEACON_COLOR.
// The default environment is DEVELOPMENT, overridable through BEACON_ENV.
//
// When SENTRY_DSN is set, Error-severity events are additionally
// shipped to Sentry.
func New(opts ...LoggerOptFn) *Logger {
	l := &Logger{
		level: LevelInfo,
		out:   os.Stderr,
		color: EnvVarOrBool("BEACON_COLOR", true),
		env:   envVarOrString("BEACON_ENV", "DEVELOPMENT"),
	}
	for _, opt := range opts {
		opt(l)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		l.reporter = newSentryReporter(l, dsn)
	}

	return l
}

// SetLevel replaces the global threshold.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the global threshold.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// RegisterComponentLevel appends an override setting the minimum severity
// accepted for the given component identifier.
//
// The override table is append-only and searched in insertion order with the
// first match winning. Re-registering a component adds a shadowed stale entry
// rather than replacing the prior one, so a component keeps the level it was
// first registered with.
func (l *Logger) RegisterComponentLevel(component string, level Level) {
	l.cmu.Lock()
	l.components = append(l.components, componentLevel{component, level})
	l.cmu.Unlock()
}

// Threshold returns the minimum severity accepted for the given component:
// the first matching override in insertion order, else the global threshold.
func (l *Logger) Threshold(component string) Level {
	l.cmu.RLock()
	defer l.cmu.RUnlock()

	for _, cl := range l.components {
		if cl.component == component {
			return cl.level
		}
	}

	return l.Level()
}

// Enabled reports whether an event at level originating from target
// would be emitted.
//
// The component identifier is the portion of target before the first "/",
// so "store/cache" and "store/gc" share the "store" override.
func (l *Logger) Enabled(level Level, target string) bool {
	component, _, _ := strings.Cut(target, "/")
	return level <= l.Threshold(component)
}

// Log emits msg at level under target, if Enabled accepts it.
//
// Write failures are swallowed; logging never fails its caller.
func (l *Logger) Log(level Level, target, msg string) {
	if !l.Enabled(level, target) {
		return
	}

	_, _ = io.WriteString(l.out, l.format(time.Now(), level, target, msg))

	if level == LevelError && l.reporter != nil {
		l.reporter.send(target, msg)
	}
}

// Error writes an error log under target.
func (l *Logger) Error(target, msg string) { l.Log(LevelError, target, msg) }

// Warn writes a warning log under target.
func (l *Logger) Warn(target, msg string) { l.Log(LevelWarn, target, msg) }

// Info writes an info log under target.
func (l *Logger) Info(target, msg string) { l.Log(LevelInfo, target, msg) }

// Debug writes a debug log under target.
func (l *Logger) Debug(target, msg string) { l.Log(LevelDebug, target, msg) }

// Trace writes a trace log under target.
func (l *Logger) Trace(target, msg string) { l.Log(LevelTrace, target, msg) }

// Flush is a no-op; the output stream is unbuffered.
func (l *Logger) Flush() {}
