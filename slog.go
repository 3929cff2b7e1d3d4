package beacon

import (
	"context"
	"log/slog"
)

// A Handler adapts a Logger into a [log/slog.Handler].
//
// It carries a base hierarchical target; WithGroup extends it
// (e.g. "app" becomes "app/http"), so slog groups line up with
// component-level overrides.
type Handler struct {
	l      *Logger
	target string
	attrs  []slog.Attr
}

// NewHandler constructs a Handler routing records to l under target.
func NewHandler(l *Logger, target string) *Handler {
	return &Handler{l: l, target: target}
}

// Enabled always reports true: the slog layer is a gate, not the
// enforcement point. Handle applies the Logger's own accept decision.
func (h *Handler) Enabled(context.Context, slog.Level) bool { return true }

// Handle renders the record's attrs into the message
// and routes it through the Logger.
func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	msg := rec.Message
	for _, a := range h.attrs {
		msg += " " + a.String()
	}
	rec.Attrs(func(a slog.Attr) bool {
		msg += " " + a.String()
		return true
	})

	h.l.Log(levelFromSlog(rec.Level), h.target, msg)
	return nil
}

// WithAttrs returns a Handler rendering attrs into every record it handles.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

// WithGroup returns a Handler whose hierarchical target is extended by name.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.target = h.target + "/" + name
	return &nh
}

// levelFromSlog maps slog's levels onto the severity model;
// anything below Debug is Trace.
func levelFromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}
