// FILE: waypoints/service.go

package waypoints

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/illmade-knight/great-circle/pkg/geo"
)

// Default waypoints, as decimal-degree latitude/longitude pairs.
var (
	JFK = [2]string{"40.641108", "-73.778246"}
	LAX = [2]string{"33.941544", "-118.408755"}
	SLC = [2]string{"40.788139", "-111.980268"}
)

// Service provides the business logic for managing waypoints.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddWaypoint parses a decimal-degree pair and registers it under code.
func (s *Service) AddWaypoint(ctx context.Context, code, name string, pair [2]string) (Waypoint, error) {
	code = normalizeCode(code)
	if code == "" {
		return Waypoint{}, errors.New("waypoint code must not be empty")
	}
	pos, err := geo.ParseCoordinate(pair)
	if err != nil {
		return Waypoint{}, fmt.Errorf("failed to parse position for %s: %w", code, err)
	}
	wp := Waypoint{
		ID:        uuid.New(),
		Code:      code,
		Name:      name,
		Position:  pos,
		CreatedAt: time.Now(),
	}
	if err := s.store.Add(ctx, wp); err != nil {
		return Waypoint{}, err
	}
	return wp, nil
}

// SeedDefaults registers JFK, LAX and SLC.
func (s *Service) SeedDefaults(ctx context.Context) error {
	defaults := []struct {
		code, name string
		pair       [2]string
	}{
		{"JFK", "John F. Kennedy International", JFK},
		{"LAX", "Los Angeles International", LAX},
		{"SLC", "Salt Lake City International", SLC},
	}
	for _, d := range defaults {
		if _, err := s.AddWaypoint(ctx, d.code, d.name, d.pair); err != nil {
			return err
		}
	}
	return nil
}

// GetWaypoint fetches a single waypoint by its ID.
func (s *Service) GetWaypoint(ctx context.Context, id uuid.UUID) (Waypoint, error) {
	return s.store.GetByID(ctx, id)
}

// Lookup fetches a waypoint by code.
func (s *Service) Lookup(ctx context.Context, code string) (Waypoint, error) {
	return s.store.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context) ([]Waypoint, error) {
	return s.store.List(ctx)
}

// FindMatch returns the waypoint that best matches c. An exact match wins
// over a possible one; among possible matches the closest wins.
func (s *Service) FindMatch(ctx context.Context, c geo.Coordinate) (Waypoint, MatchResult, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return Waypoint{}, MatchNone, err
	}

	var best Waypoint
	bestLevel := MatchNone
	bestNM := 0.0
	for _, wp := range all {
		switch wp.Match(c) {
		case MatchExact:
			return wp, MatchExact, nil
		case MatchPossible:
			nm := wp.Position.DistanceTo(c)
			if bestLevel == MatchNone || nm < bestNM {
				best, bestLevel, bestNM = wp, MatchPossible, nm
			}
		}
	}
	return best, bestLevel, nil
}
