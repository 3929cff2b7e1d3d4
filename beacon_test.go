package beacon_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/beacon"
)

// The process-wide Logger is constructed at most once, so its whole
// lifecycle is exercised in a single sequential test.
func TestInit(t *testing.T) {
	// Arrange
	t.Setenv(beacon.LevelEnvVar, "warn")
	buf := new(bytes.Buffer)

	// Act
	err := beacon.Init(beacon.WithWriter(buf), beacon.WithColor(false))

	// Assert - env-seeded threshold
	require.Nil(t, err)
	require.NotNil(t, beacon.Default())
	require.Equal(t, beacon.LevelWarn, beacon.Default().Level())

	// Arrange
	first := beacon.Default()

	// Act - the sink slot is claimed; the singleton is not rebuilt
	err = beacon.Init()

	// Assert
	require.ErrorIs(t, err, beacon.ErrAlreadyInitialized)
	require.Same(t, first, beacon.Default())

	// Act - boundary inclusivity through the package-level facade
	beacon.Warn("app", "heads up")
	beacon.Info("app", "chatty")

	// Assert
	require.Contains(t, buf.String(), "WARN: app - heads up\n")
	require.NotContains(t, buf.String(), "chatty")

	// Act
	buf.Reset()
	beacon.SetLevel(beacon.LevelTrace)
	beacon.Trace("app", "deep")

	// Assert
	require.True(t, beacon.IsEnabled(beacon.LevelTrace, "app"))
	require.Contains(t, buf.String(), "TRACE: app - deep\n")

	// Act - component overrides through the facade
	beacon.RegisterComponentLevel("quiet", beacon.LevelError)

	// Assert
	require.False(t, beacon.IsEnabled(beacon.LevelInfo, "quiet/worker"))
	require.True(t, beacon.IsEnabled(beacon.LevelError, "quiet/worker"))

	// Act - Init routed the default slog sink here too
	buf.Reset()
	slog.Warn("spinning down", "reason", "deploy")

	// Assert
	require.Contains(t, buf.String(), "WARN: app - spinning down reason=deploy\n")

	// Act + Assert
	beacon.Flush()
}
