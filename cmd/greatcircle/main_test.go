package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Codes(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"JFK", "LAX"}, &out, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "2144.39 nm\n", out.String())
}

func TestRun_Verbose(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"-v", "LAX", "40.788139,-111.980268"}, &out, zerolog.Nop())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "from: LAX (Los Angeles International)", lines[0])
	assert.Equal(t, "to:   SLC (Salt Lake City International)", lines[1])
	assert.Equal(t, "MagicDistance((33° 56′ N, 118° 25′ W) ==> (40° 47′ N, 111° 59′ W))", lines[2])
	assert.Equal(t, "511.65 nm", lines[3])
}

func TestRun_ConfigFileWaypointAndTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greatcircle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
formula: haversine
precision: 1
trace: true
log_level: debug
waypoints:
  - code: NUL
    name: Null Island
    latitude: "0"
    longitude: "0"
`), 0o600))
	var out, logs bytes.Buffer

	err := run(context.Background(), []string{"-config", path, "nul", "0,1"}, &out, zerolog.New(&logs))

	require.NoError(t, err)
	assert.Equal(t, "60.0 nm\n", out.String())
	assert.Equal(t, 3, strings.Count(logs.String(), "Value released"))
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"-list"}, &out, zerolog.Nop())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "JFK")
	assert.Contains(t, out.String(), "40° 38′ N, 73° 47′ W")
	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	ctx := context.Background()

	assert.ErrorIs(t, run(ctx, []string{"JFK"}, &out, zerolog.Nop()), errUsage)
	assert.Contains(t, out.String(), "usage: greatcircle")

	assert.Error(t, run(ctx, []string{"JFK", "ORD"}, &out, zerolog.Nop()))
	assert.Error(t, run(ctx, []string{"JFK", "1,x"}, &out, zerolog.Nop()))
}

func TestRun_InvalidLogLevel(t *testing.T) {
	t.Setenv("GREATCIRCLE_LOG_LEVEL", "loud")
	var out bytes.Buffer

	err := run(context.Background(), []string{"JFK", "LAX"}, &out, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
	assert.Empty(t, out.String())
}
