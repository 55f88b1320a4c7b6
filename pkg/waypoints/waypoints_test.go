package waypoints_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/illmade-knight/great-circle/pkg/geo"
	"github.com/illmade-knight/great-circle/pkg/waypoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (context.Context, *waypoints.Service) {
	t.Helper()
	ctx := context.Background()
	svc := waypoints.NewService(waypoints.NewInMemoryStore())
	require.NoError(t, svc.SeedDefaults(ctx))
	return ctx, svc
}

func TestService_SeedAndLookup(t *testing.T) {
	ctx, svc := setupService(t)

	// Act & Assert: lookup ignores case
	jfk, err := svc.Lookup(ctx, "jfk")
	require.NoError(t, err)
	assert.Equal(t, "JFK", jfk.Code)
	assert.Equal(t, "JFK (John F. Kennedy International)", jfk.Label())
	assert.Equal(t, "40° 38′ N, 73° 47′ W", jfk.Position.Coordinates())
	assert.NotEqual(t, uuid.Nil, jfk.ID)

	byID, err := svc.GetWaypoint(ctx, jfk.ID)
	require.NoError(t, err)
	assert.True(t, byID.Position.Equal(jfk.Position))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"JFK", "LAX", "SLC"}, []string{all[0].Code, all[1].Code, all[2].Code})
}

func TestService_Errors(t *testing.T) {
	ctx, svc := setupService(t)

	_, err := svc.Lookup(ctx, "ORD")
	assert.ErrorIs(t, err, waypoints.ErrNotFound)

	_, err = svc.GetWaypoint(ctx, uuid.New())
	assert.ErrorIs(t, err, waypoints.ErrNotFound)

	_, err = svc.AddWaypoint(ctx, " lax ", "Duplicate", waypoints.LAX)
	assert.ErrorIs(t, err, waypoints.ErrDuplicateCode)

	_, err = svc.AddWaypoint(ctx, "", "No code", waypoints.LAX)
	assert.Error(t, err)

	_, err = svc.AddWaypoint(ctx, "BAD", "Bad", [2]string{"north", "1"})
	var perr *geo.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "latitude", perr.Field)
}

func TestWaypoint_Match(t *testing.T) {
	ctx, svc := setupService(t)
	jfk, err := svc.Lookup(ctx, "JFK")
	require.NoError(t, err)

	assert.Equal(t, waypoints.MatchExact, jfk.Match(jfk.Position))
	assert.Equal(t, waypoints.MatchPossible, jfk.Match(geo.NewCoordinate(40.65, -73.78)))
	assert.Equal(t, waypoints.MatchNone, jfk.Match(geo.NewCoordinate(41.0, -73.78)))
}

func TestService_FindMatch(t *testing.T) {
	ctx, svc := setupService(t)

	wp, level, err := svc.FindMatch(ctx, geo.NewCoordinate(33.941544, -118.408755))
	require.NoError(t, err)
	assert.Equal(t, waypoints.MatchExact, level)
	assert.Equal(t, "LAX", wp.Code)

	wp, level, err = svc.FindMatch(ctx, geo.NewCoordinate(40.79, -111.98))
	require.NoError(t, err)
	assert.Equal(t, waypoints.MatchPossible, level)
	assert.Equal(t, "SLC", wp.Code)

	_, level, err = svc.FindMatch(ctx, geo.NewCoordinate(0, 0))
	require.NoError(t, err)
	assert.Equal(t, waypoints.MatchNone, level)
}

func TestInMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	svc := waypoints.NewService(waypoints.NewInMemoryStore())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := string(rune('A'+i)) + "XX"
			_, err := svc.AddWaypoint(ctx, code, "", [2]string{"1", "2"})
			assert.NoError(t, err)
			_, err = svc.Lookup(ctx, code)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
