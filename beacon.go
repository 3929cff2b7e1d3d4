package beacon

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
)

// LevelEnvVar seeds the global threshold when Init constructs the
// process-wide Logger. Its value is a level name parsed per [ParseLevel],
// defaulting to Info when absent or unrecognized.
const LevelEnvVar = "BEACON_LOG"

var (
	std       atomic.Pointer[Logger]
	stdOnce   sync.Once
	sinkTaken atomic.Bool
)

// Init constructs the process-wide Logger on first call and installs it as
// the default log/slog sink.
//
// The Logger is seeded from BEACON_LOG after a best-effort .env load,
// with opts applied on top. The singleton is get-or-create: repeat calls
// never construct a second instance. Only the first call per process claims
// the sink slot; every later call returns an error wrapping
// [ErrAlreadyInitialized] while the existing Logger stays valid.
func Init(opts ...LoggerOptFn) error {
	stdOnce.Do(func() {
		// A missing .env file is the common case outside development.
		_ = godotenv.Load()

		level := EnvVarOrLevel(LevelEnvVar, LevelInfo)
		std.Store(New(append([]LoggerOptFn{WithLevel(level)}, opts...)...))
	})

	if !sinkTaken.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: a sink is already registered", ErrAlreadyInitialized)
	}

	// The slog layer is a pass-through gate;
	// all filtering happens in Logger.Enabled.
	slog.SetDefault(slog.New(NewHandler(std.Load(), "app")))

	return nil
}

// Default returns the process-wide Logger, or nil before Init.
func Default() *Logger { return std.Load() }

// SetLevel replaces the process-wide Logger's global threshold.
// It is a no-op before Init, as are all package-level emit functions.
func SetLevel(level Level) {
	if l := std.Load(); l != nil {
		l.SetLevel(level)
	}
}

// RegisterComponentLevel appends a component override on the process-wide
// Logger; see [Logger.RegisterComponentLevel] for the first-match semantics.
func RegisterComponentLevel(component string, level Level) {
	if l := std.Load(); l != nil {
		l.RegisterComponentLevel(component, level)
	}
}

// IsEnabled reports whether the process-wide Logger would emit an event
// at level originating from target.
func IsEnabled(level Level, target string) bool {
	l := std.Load()
	return l != nil && l.Enabled(level, target)
}

// Flush flushes the process-wide Logger.
func Flush() {
	if l := std.Load(); l != nil {
		l.Flush()
	}
}

// Error writes an error log under target to the process-wide Logger.
func Error(target, msg string) { emit(LevelError, target, msg) }

// Warn writes a warning log under target to the process-wide Logger.
func Warn(target, msg string) { emit(LevelWarn, target, msg) }

// Info writes an info log under target to the process-wide Logger.
func Info(target, msg string) { emit(LevelInfo, target, msg) }

// Debug writes a debug log under target to the process-wide Logger.
func Debug(target, msg string) { emit(LevelDebug, target, msg) }

// Trace writes a trace log under target to the process-wide Logger.
func Trace(target, msg string) { emit(LevelTrace, target, msg) }

func emit(level Level, target, msg string) {
	if l := std.Load(); l != nil {
		l.Log(level, target, msg)
	}
}
