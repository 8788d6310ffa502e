package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/carryloop/internal/autopilot"
	"github.com/plus3/carryloop/internal/config"
	"github.com/plus3/carryloop/internal/eventbus"
	"github.com/plus3/carryloop/internal/logging"
	"github.com/plus3/carryloop/internal/scene"
	"github.com/plus3/carryloop/internal/shell"
	"github.com/plus3/carryloop/internal/zone"
)

type simOptions struct {
	GameTime  time.Duration
	FrameTime time.Duration
	Laps      int
	Timing    autopilot.Timing
	Verbose   bool
	GCMetrics bool
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)

	timing := autopilot.DefaultTiming()
	opts := simOptions{Timing: timing}
	flag.DurationVar(&opts.GameTime, "duration", 5*time.Minute, "The game time to simulate.")
	flag.DurationVar(&opts.FrameTime, "frame", time.Second/60, "The game time advanced per frame.")
	flag.IntVar(&opts.Laps, "laps", 0, "Stop after this many autopilot laps (0 runs for the full duration).")
	flag.DurationVar(&opts.Timing.Gather, "gather", timing.Gather, "Time the autopilot spends in the carry zone per lap.")
	flag.DurationVar(&opts.Timing.Process, "process-wait", timing.Process, "Time the autopilot waits for processing per lap.")
	flag.DurationVar(&opts.Timing.Pickup, "pickup", timing.Pickup, "Time the autopilot spends in the pickup zone per lap.")
	flag.BoolVar(&opts.Verbose, "v", false, "Log zone events.")
	flag.BoolVar(&opts.GCMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := logging.Discard()
	if opts.Verbose {
		logger = logging.New()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New()
	if cfg.ShellAddr != "" {
		hub := shell.NewHub(logging.New())
		defer hub.Relay(bus, eventbus.SceneReady)()
		go func() {
			if err := shell.Serve(ctx, cfg.ShellAddr, hub); err != nil {
				log.Printf("shell bridge stopped: %v", err)
			}
		}()
	}

	log.Println("Starting carry loop simulation...")
	report, err := run(cfg, opts, bus, logger)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func run(cfg config.Config, opts simOptions, bus *eventbus.Bus, logger *logging.Logger) (*Report, error) {
	if opts.FrameTime <= 0 {
		return nil, errors.New("frame time must be positive")
	}

	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	route, err := autopilot.LoopRoute(layout, opts.Timing)
	if err != nil {
		return nil, err
	}
	pilot := autopilot.New(route, true)

	s, err := scene.New(scene.Options{
		Layout:         layout,
		Keyboard:       pilot,
		Bus:            bus,
		Logger:         logger,
		Speed:          cfg.Speed,
		ActionInterval: cfg.ActionInterval,
		ProcessDelay:   cfg.ProcessDelay,
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		GameTime:       opts.GameTime,
		FrameTime:      opts.FrameTime,
		ActionPeriod:   cfg.ActionInterval,
		ProcessDelay:   cfg.ProcessDelay,
		LayoutSource:   "built-in",
		RequestedLaps:  opts.Laps,
		GCPauseMetrics: opts.GCMetrics,
	}
	if cfg.LayoutPath != "" {
		report.LayoutSource = cfg.LayoutPath
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	for s.Elapsed() < opts.GameTime {
		if opts.Laps > 0 && pilot.Laps() >= opts.Laps {
			break
		}
		pilot.Steer(s.PlayerRect(), opts.FrameTime)

		updateStart := time.Now()
		s.Update(opts.FrameTime)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	runtime.ReadMemStats(&report.MemStatsEnd)
	report.UpdateTime.Finalize()

	session := s.Session()
	stats := s.Scheduler().GetStats()
	report.Frames = stats.Frames
	report.Systems = stats.Systems
	report.Storage = *s.Storage().CollectStats()
	report.Laps = pilot.Laps()
	report.Elapsed = s.Elapsed()
	report.Inventory = session.State.Snapshot()
	report.TasksFired = session.Clock.Fired()
	report.ItemsProcessed = session.Processor.Completed()
	for _, k := range zone.Kinds() {
		report.Entries = append(report.Entries, ZoneEntries{Kind: k, Entries: session.Entries[k]})
	}

	return report, nil
}
