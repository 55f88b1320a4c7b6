package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/illmade-knight/great-circle/app"
	"github.com/illmade-knight/great-circle/internal/config"
	"github.com/illmade-knight/great-circle/pkg/waypoints"
	"github.com/rs/zerolog"
)

const usage = `usage: greatcircle [flags] FROM TO

FROM and TO are waypoint codes (JFK, LAX, SLC, or any from the config file)
or "lat,lon" pairs in decimal degrees.

flags:
`

var errUsage = errors.New("expected FROM and TO")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Fatal().Err(err).Msg("greatcircle failed")
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("greatcircle", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "path to a config file (default: greatcircle.yaml if present)")
	verbose := fs.Bool("v", false, "also print endpoints and the debug form")
	list := fs.Bool("list", false, "list known waypoints and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	level, err := cfg.ParseLogLevel()
	if err != nil {
		return err
	}
	logger = logger.Level(level)

	// 2. Build the waypoint catalog
	waypointSvc := waypoints.NewService(waypoints.NewInMemoryStore())
	if err := waypointSvc.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed waypoints: %w", err)
	}
	for _, wp := range cfg.Waypoints {
		if _, err := waypointSvc.AddWaypoint(ctx, wp.Code, wp.Name, [2]string{wp.Latitude, wp.Longitude}); err != nil {
			return fmt.Errorf("failed to add configured waypoint: %w", err)
		}
	}
	logger.Debug().Int("configured", len(cfg.Waypoints)).Msg("Waypoint catalog initialized")

	if *list {
		return printWaypoints(ctx, stdout, waypointSvc)
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}

	// 3. Instantiate the Application
	appCfg := app.Config{
		Formula:   cfg.DistanceFormula(),
		Precision: cfg.Precision,
	}
	if cfg.Trace {
		appCfg.ReleaseHook = app.LogReleaseHook(logger)
	}
	application := app.New(waypointSvc, appCfg, logger)

	// 4. Measure
	session := application.NewSession()
	defer session.Close()

	m, err := session.Measure(ctx, fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}
	report := application.Describe(m)

	if *verbose {
		fmt.Fprintf(stdout, "from: %s\n", report.From)
		fmt.Fprintf(stdout, "to:   %s\n", report.To)
		fmt.Fprintln(stdout, report.Debug)
	}
	fmt.Fprintf(stdout, "%s nm\n", report.Display)
	return nil
}

func printWaypoints(ctx context.Context, w io.Writer, svc *waypoints.Service) error {
	all, err := svc.List(ctx)
	if err != nil {
		return err
	}
	for _, wp := range all {
		fmt.Fprintf(w, "%-5s %-24s %s\n", wp.Code, wp.Position.Coordinates(), wp.Name)
	}
	return nil
}
