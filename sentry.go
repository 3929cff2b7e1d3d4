package beacon

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// A sentryReporter ships Error-severity events to Sentry.
// It exists on a Logger only when SENTRY_DSN was set at construction.
type sentryReporter struct{}

// newSentryReporter initializes the Sentry SDK for the Logger's environment.
// Initialization failure degrades to plain logging.
func newSentryReporter(l *Logger, dsn string) *sentryReporter {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  l.env,
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		l.Warn("beacon", fmt.Sprintf("unable to init Sentry: %s", err))
		return nil
	}

	return &sentryReporter{}
}

// send ships one Error-severity message, tagged with its component target.
func (sr *sentryReporter) send(target, msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", target)
		scope.SetLevel(sentry.LevelError)
		sentry.CaptureMessage(msg)
	})
}

// flush gives in-flight events a bounded window to leave the process,
// for reports emitted while the process is about to terminate.
func (sr *sentryReporter) flush() {
	sentry.Flush(2 * time.Second)
}
