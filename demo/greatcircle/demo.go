// FILE: main.go
// This demo walks through points, distances and their display forms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/illmade-knight/great-circle/app"
	"github.com/illmade-knight/great-circle/pkg/geo"
	"github.com/illmade-knight/great-circle/pkg/waypoints"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	logger.Info().Msg("--- Starting Great Circle Demo ---")
	ctx := context.Background()

	// 1. Points
	jfk, err := geo.ParseCoordinate(waypoints.JFK)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse JFK")
	}
	lax, err := geo.ParseCoordinate(waypoints.LAX)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse LAX")
	}
	slc, err := geo.ParseCoordinate(waypoints.SLC)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse SLC")
	}

	logger.Info().Msg("--- Points ---")
	fmt.Printf("JFK: %v\n", jfk)
	fmt.Printf("JFK radians: %.2f\n", jfk)
	fmt.Printf("JFK repr: %#v\n", jfk)
	fmt.Printf("JFK == JFK: %t, JFK == LAX: %t\n", jfk.Equal(jfk), jfk.Equal(lax))

	// 2. Distances without a Distance value
	logger.Info().Msg("--- One-shot distances ---")
	fmt.Println("JFK -> LAX:", geo.ComputeDistance(jfk, lax))
	fmt.Println("JFK -> SLC:", geo.ComputeDistance(jfk, slc))

	// 3. Distance values and their ordering
	logger.Info().Msg("--- Distance values ---")
	jfkLax := jfk.Sub(lax)
	laxSlc := geo.NewDistance(lax, slc)
	fmt.Printf("%#v = %s nm\n", jfkLax, jfkLax)
	fmt.Printf("%#v = %s nm\n", laxSlc, laxSlc)
	fmt.Printf("JFK->LAX < LAX->SLC: %t\n", jfkLax.Less(laxSlc))
	fmt.Printf("JFK->LAX >= LAX->SLC: %t\n", jfkLax.GreaterOrEqual(laxSlc))
	fmt.Printf("canonical haversine JFK->LAX: %s nm\n", geo.NewDistanceWith(geo.Haversine, jfk, lax))

	// 4. The same through the application, with release tracing
	logger.Info().Msg("--- Application session ---")
	waypointSvc := waypoints.NewService(waypoints.NewInMemoryStore())
	if err := waypointSvc.SeedDefaults(ctx); err != nil {
		logger.Fatal().Err(err).Msg("seed waypoints")
	}
	cfg := app.DefaultConfig()
	cfg.ReleaseHook = app.LogReleaseHook(logger)
	application := app.New(waypointSvc, cfg, logger)

	session := application.NewSession()
	m, err := session.Measure(ctx, "SLC", "JFK")
	if err != nil {
		logger.Fatal().Err(err).Msg("measure")
	}
	report := application.Describe(m)
	fmt.Printf("%s -> %s: %s nm\n", report.From, report.To, report.Display)
	session.Close()

	logger.Info().Msg("--- Demo Complete ---")
}
