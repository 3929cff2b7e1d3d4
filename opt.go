package beacon

import "io"

// A LoggerOptFn is a functional option configuring a Logger when constructing a new one.
type LoggerOptFn func(*Logger)

// WithColor toggles colorized output.
//
// Colors are embedded as ANSI escape sequences;
// disable them when the output is consumed by something
// that does not strip escapes on its own.
func WithColor(on bool) func(*Logger) {
	return func(l *Logger) {
		l.color = on
	}
}

// WithEnv sets the environment the Logger is operating in.
func WithEnv(env string) func(*Logger) {
	return func(l *Logger) {
		l.env = env
	}
}

// WithLevel sets the global threshold the Logger uses
// when no component-specific override matches.
func WithLevel(level Level) func(*Logger) {
	return func(l *Logger) {
		l.level = level
	}
}

// WithWriter sets the io.Writer the Logger writes accepted events to.
func WithWriter(w io.Writer) func(*Logger) {
	return func(l *Logger) {
		l.out = w
	}
}
