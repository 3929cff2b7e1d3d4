package beacon_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/beacon"
)

func TestEnvVarOrBool(t *testing.T) {
	// Arrange
	t.Setenv("TEST_BOOL", "TRUE")

	// Act + Assert
	require.True(t, beacon.EnvVarOrBool("TEST_BOOL", false))

	// Arrange
	t.Setenv("TEST_BOOL", "false")

	// Act + Assert
	require.False(t, beacon.EnvVarOrBool("TEST_BOOL", true))

	// Arrange
	t.Setenv("TEST_BOOL", "yep")

	// Act + Assert
	require.True(t, beacon.EnvVarOrBool("TEST_BOOL", true))
}

func TestEnvVarOrLevel(t *testing.T) {
	// Arrange
	t.Setenv("TEST_LEVEL", "debug")

	// Act + Assert
	require.Equal(t, beacon.LevelDebug, beacon.EnvVarOrLevel("TEST_LEVEL", beacon.LevelInfo))

	// Arrange - unrecognized text falls back to the documented default
	t.Setenv("TEST_LEVEL", "verbose")

	// Act + Assert
	require.Equal(t, beacon.LevelInfo, beacon.EnvVarOrLevel("TEST_LEVEL", beacon.LevelInfo))

	// Act + Assert
	require.Equal(t, beacon.LevelWarn, beacon.EnvVarOrLevel("TEST_LEVEL_UNSET", beacon.LevelWarn))
}
