package beacon

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

const timestampFormat = "2006-01-02 15:04:05"

var levelColors = map[Level]color.Attribute{
	LevelError: color.FgRed,
	LevelWarn:  color.FgYellow,
	LevelInfo:  color.FgGreen,
	LevelDebug: color.FgBlue,
	LevelTrace: color.FgMagenta,
}

// format renders one accepted event as a single line:
// timestamp, severity tag, originating component, message.
// The message passes through verbatim, control characters included.
func (l *Logger) format(ts time.Time, level Level, target, msg string) string {
	return fmt.Sprintf("%s %s: %s - %s\n",
		l.paint(color.FgHiBlack, ts.Format(timestampFormat)),
		l.colorize(level),
		l.paint(color.FgHiBlue, target),
		msg,
	)
}

// colorize renders the severity tag per the fixed severity→color mapping.
func (l *Logger) colorize(level Level) string {
	attr, ok := levelColors[level]
	if !ok {
		return level.String()
	}

	return l.paint(attr, level.String())
}

// paint wraps s in the ANSI escape for attr when color is enabled.
func (l *Logger) paint(attr color.Attribute, s string) string {
	if !l.color {
		return s
	}

	return color.New(attr).Sprint(s)
}
