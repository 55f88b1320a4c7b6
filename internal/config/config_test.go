package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/illmade-knight/great-circle/internal/config"
	"github.com/illmade-knight/great-circle/pkg/geo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "greatcircle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "legacy", cfg.Formula)
	assert.Equal(t, geo.DisplayPrecision, cfg.Precision)
	assert.False(t, cfg.Trace)
	assert.Empty(t, cfg.Waypoints)

	level, err := cfg.ParseLogLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
formula: haversine
precision: 4
waypoints:
  - code: SFO
    name: San Francisco International
    latitude: "37.621313"
    longitude: "-122.378955"
`)
	t.Setenv("GREATCIRCLE_PRECISION", "3")
	t.Setenv("GREATCIRCLE_TRACE", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Precision, "environment overrides the file")
	assert.True(t, cfg.Trace)
	require.Len(t, cfg.Waypoints, 1)
	assert.Equal(t, "SFO", cfg.Waypoints[0].Code)
	assert.Equal(t, "-122.378955", cfg.Waypoints[0].Longitude)

	a := geo.NewCoordinate(0, 0)
	b := geo.NewCoordinate(60, 0)
	assert.Equal(t, geo.Haversine(a, b), cfg.DistanceFormula()(a, b))
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"unknown formula", "formula: vincenty\n"},
		{"bad log level", "log_level: loud\n"},
		{"negative precision", "precision: -1\n"},
		{"waypoint without code", "waypoints:\n  - name: nowhere\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
