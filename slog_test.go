package beacon_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/beacon"
)

func TestHandlerEnabled(t *testing.T) {
	// Arrange - the handler is a pass-through gate even when the Logger
	// would reject everything
	l := newTestLogger(new(bytes.Buffer), beacon.WithLevel(beacon.LevelError))
	h := beacon.NewHandler(l, "svc")

	// Act + Assert
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		require.True(t, h.Enabled(context.Background(), level))
	}
}

func TestHandlerLevelMapping(t *testing.T) {
	// Arrange
	buf := new(bytes.Buffer)
	l := newTestLogger(buf, beacon.WithLevel(beacon.LevelTrace))
	lg := slog.New(beacon.NewHandler(l, "svc"))

	// Act
	lg.Error("e")
	lg.Warn("w")
	lg.Info("i")
	lg.Debug("d")
	lg.Log(context.Background(), slog.LevelDebug-4, "t")

	// Assert
	out := buf.String()
	require.Contains(t, out, "ERROR: svc - e\n")
	require.Contains(t, out, "WARN: svc - w\n")
	require.Contains(t, out, "INFO: svc - i\n")
	require.Contains(t, out, "DEBUG: svc - d\n")
	require.Contains(t, out, "TRACE: svc - t\n")
}

func TestHandlerAttrs(t *testing.T) {
	// Arrange
	buf := new(bytes.Buffer)
	l := newTestLogger(buf)
	lg := slog.New(beacon.NewHandler(l, "svc")).With("version", "1.4.2")

	// Act
	lg.Info("booted", "port", 8080)

	// Assert
	require.Contains(t, buf.String(), "INFO: svc - booted version=1.4.2 port=8080\n")
}

func TestHandlerWithGroup(t *testing.T) {
	// Arrange
	buf := new(bytes.Buffer)
	l := newTestLogger(buf)
	lg := slog.New(beacon.NewHandler(l, "svc")).WithGroup("db")

	// Act
	lg.Info("connected")

	// Assert - the group extends the hierarchical target
	require.Contains(t, buf.String(), "INFO: svc/db - connected\n")

	// Arrange - grouped targets still filter on the base component
	buf.Reset()
	l.RegisterComponentLevel("svc", beacon.LevelError)

	// Act
	lg.Info("connected")

	// Assert
	require.Empty(t, buf.String())
}
