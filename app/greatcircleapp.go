// Package app provides the central orchestrator for the great-circle application.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/illmade-knight/great-circle/pkg/geo"
	"github.com/illmade-knight/great-circle/pkg/waypoints"
	"github.com/rs/zerolog"
)

// Config tunes how the App measures and renders distances.
type Config struct {
	Formula     geo.Formula // nil means geo.LegacyFormula
	Precision   int         // decimals in Report.Display
	ReleaseHook ReleaseHook // nil disables release tracing
}

// DefaultConfig mirrors the historical output: legacy formula, two decimals.
func DefaultConfig() Config {
	return Config{Formula: geo.LegacyFormula, Precision: geo.DisplayPrecision}
}

// Endpoint is a resolved point reference.
type Endpoint struct {
	Ref      string
	Position geo.Coordinate
	Waypoint *waypoints.Waypoint // set when the reference names or matches a waypoint
	Match    waypoints.MatchResult
}

// Label is the waypoint label when there is one, else the degree/minute form.
func (e Endpoint) Label() string {
	if e.Waypoint != nil && e.Match == waypoints.MatchExact {
		return e.Waypoint.Label()
	}
	if e.Waypoint != nil && e.Match == waypoints.MatchPossible {
		return e.Position.Coordinates() + " near " + e.Waypoint.Code
	}
	return e.Position.Coordinates()
}

// Measurement pairs a Distance with the references it was resolved from.
type Measurement struct {
	From     Endpoint
	To       Endpoint
	Distance geo.Distance
}

// Report is the printable form of a Measurement.
type Report struct {
	From    string
	To      string
	Display string // nautical miles at the configured precision
	Debug   string
}

// App is the central application struct.
type App struct {
	WaypointSvc *waypoints.Service
	Config      Config
	Logger      zerolog.Logger
}

// New creates a new, fully initialized App.
func New(waypointSvc *waypoints.Service, cfg Config, logger zerolog.Logger) *App {
	if cfg.Formula == nil {
		cfg.Formula = geo.LegacyFormula
	}
	if cfg.Precision < 0 {
		cfg.Precision = geo.DisplayPrecision
	}
	return &App{
		WaypointSvc: waypointSvc,
		Config:      cfg,
		Logger:      logger,
	}
}

// Resolve turns a reference into an Endpoint. A reference is a waypoint
// code such as "JFK" or a "lat,lon" pair.
func (a *App) Resolve(ctx context.Context, ref string) (Endpoint, error) {
	ref = strings.TrimSpace(ref)
	if !strings.Contains(ref, ",") {
		wp, err := a.WaypointSvc.Lookup(ctx, ref)
		if err != nil {
			return Endpoint{}, fmt.Errorf("failed to resolve %q: %w", ref, err)
		}
		return Endpoint{Ref: ref, Position: wp.Position, Waypoint: &wp, Match: waypoints.MatchExact}, nil
	}

	pos, err := geo.ParseLatLon(ref)
	if err != nil {
		return Endpoint{}, fmt.Errorf("failed to resolve %q: %w", ref, err)
	}
	ep := Endpoint{Ref: ref, Position: pos, Match: waypoints.MatchNone}

	wp, level, err := a.WaypointSvc.FindMatch(ctx, pos)
	if err != nil {
		a.Logger.Warn().Err(err).Str("ref", ref).Msg("Waypoint matching failed")
		return ep, nil
	}
	if level != waypoints.MatchNone {
		ep.Waypoint = &wp
		ep.Match = level
	}
	return ep, nil
}

// Measure resolves both references and measures the distance between them.
func (a *App) Measure(ctx context.Context, from, to string) (Measurement, error) {
	logger := a.Logger.With().Str("from", from).Str("to", to).Logger()

	src, err := a.Resolve(ctx, from)
	if err != nil {
		return Measurement{}, err
	}
	dst, err := a.Resolve(ctx, to)
	if err != nil {
		return Measurement{}, err
	}

	d := geo.NewDistanceWith(a.Config.Formula, src.Position, dst.Position)
	logger.Debug().
		Float64("nautical_miles", d.NauticalMiles()).
		Str("match_from", string(src.Match)).
		Str("match_to", string(dst.Match)).
		Msg("Measured great-circle distance")

	return Measurement{From: src, To: dst, Distance: d}, nil
}

// Describe renders a Measurement for display.
func (a *App) Describe(m Measurement) Report {
	return Report{
		From:    m.From.Label(),
		To:      m.To.Label(),
		Display: m.Distance.Display(a.Config.Precision),
		Debug:   m.Distance.GoString(),
	}
}
