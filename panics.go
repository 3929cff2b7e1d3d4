package beacon

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

// BacktraceEnvVar opts panic reports into capturing a full runtime backtrace.
// Only its presence matters; any value enables capture.
const BacktraceEnvVar = "BEACON_BACKTRACE"

const (
	unknownLocation    = "Unknown location"
	unknownPayload     = "Unknown Payload"
	enableBacktraceMsg = "  Run with BEACON_BACKTRACE=1 environment variable to display backtrace"
)

// InterceptPanics reports a panic unwinding the calling goroutine through the
// process-wide Logger, then re-raises it so default termination handling
// proceeds.
//
// It must be deferred directly at the top of the goroutine it guards:
//
//	defer beacon.InterceptPanics()
func InterceptPanics() {
	v := recover()
	if v == nil {
		return
	}

	if l := Default(); l != nil {
		l.ReportPanic(v)
	}

	panic(v)
}

// ReportPanic emits an Error-severity report for the recovered panic value v.
//
// Each field of the report degrades on its own: a call site the runtime
// cannot provide, a payload exposing no text, and an uncaptured backtrace
// each render as a placeholder. The report path never raises; a secondary
// panic while formatting is swallowed.
func (l *Logger) ReportPanic(v any) {
	defer func() {
		_ = recover()
	}()

	msg := fmt.Sprintf("Panic occurred at: %s\n\t\t-----------------> %s\n%s",
		l.paint(color.FgBlack, panicLocation()),
		l.paint(color.FgHiRed, indentPayload(payloadText(v))),
		backtrace(),
	)
	l.Log(LevelError, "beacon", msg)

	if l.reporter != nil {
		l.reporter.flush()
	}
}

// panicLocation walks the caller stack for the first frame past the
// runtime's panic machinery, i.e., the call site that raised the fault.
func panicLocation() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return unknownLocation
	}

	var seenPanic bool
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.") {
			if strings.Contains(frame.Function, "panic") {
				seenPanic = true
			}
		} else if seenPanic && frame.File != "" {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}

		if !more {
			break
		}
	}

	return unknownLocation
}

// payloadText extracts a textual representation of the panic payload.
// The payload either exposes text or gets a placeholder; no reflection.
func payloadText(v any) string {
	switch p := v.(type) {
	case string:
		return p
	case error:
		return p.Error()
	case fmt.Stringer:
		return p.String()
	default:
		return unknownPayload
	}
}

// indentPayload treats embedded newlines as a pseudo stack trace:
// blank lines drop, the first line stands bare,
// and every later line gets the "||" gutter.
func indentPayload(payload string) string {
	var lines []string
	for i, line := range strings.Split(payload, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if i == 0 {
			lines = append(lines, line)
			continue
		}

		lines = append(lines, "\t\t||  "+strings.TrimSpace(line))
	}

	return strings.Join(lines, "\n")
}

// backtrace captures the runtime stack when the opt-in toggle is set,
// otherwise returns instructions for enabling it.
// Every line carries the "|" gutter.
func backtrace() string {
	trace := enableBacktraceMsg
	if _, ok := os.LookupEnv(BacktraceEnvVar); ok {
		trace = string(debug.Stack())
	}

	lines := strings.Split(strings.TrimRight(trace, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "\t\t|" + line
	}

	return strings.Join(lines, "\n")
}
