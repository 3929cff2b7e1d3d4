package beacon

import (
	"fmt"
	"strings"
)

// A Level is the severity of a log event,
// ordered from most severe (always shown)
// to least severe (shown only at maximum verbosity).
type Level int

const (
	LevelError Level = iota + 1
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// ParseLevel converts a textual level name into a Level, ignoring case.
//
// Unrecognized text returns an error wrapping [ErrInvalidLevel].
// When parsing user or environment input, supply a fallback instead of
// surfacing the error; [EnvVarOrLevel] does exactly that.
func ParseLevel(val string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(val)) {
	case "ERROR":
		return LevelError, nil
	case "WARN":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	case "TRACE":
		return LevelTrace, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, val)
	}
}

// String returns the canonical short name for the Level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNK"
	}
}
