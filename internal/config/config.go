// Package config loads game settings from .env files, CARRYLOOP_* variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/carryloop/internal/zone"
)

var ErrInvalid = errors.New("invalid config")

const envPrefix = "CARRYLOOP_"

type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int

	// Speed is the player speed in units per second.
	Speed          float64
	ActionInterval time.Duration
	ProcessDelay   time.Duration

	// LayoutPath is an optional YAML layout; empty means the built-in one.
	LayoutPath string

	// ShellAddr enables the websocket shell bridge when set, e.g. ":8080".
	ShellAddr string
	Debug     bool
}

func Default() Config {
	return Config{
		Width:          1024,
		Height:         768,
		Title:          "Carry Loop",
		TPS:            60,
		Speed:          200,
		ActionInterval: 500 * time.Millisecond,
		ProcessDelay:   1500 * time.Millisecond,
	}
}

// Load applies the given .env files (missing ones are skipped) and then the
// process environment on top of Default. Variables already set in the
// environment win over .env files.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		return v, ok && v != ""
	}
	parseInt := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: %w", envPrefix, name, v, ErrInvalid))
				return
			}
			*dst = n
		}
	}
	parseDuration := func(name string, dst *time.Duration) {
		if v, ok := get(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: %w", envPrefix, name, v, ErrInvalid))
				return
			}
			*dst = d
		}
	}

	parseInt("WIDTH", &c.Width)
	parseInt("HEIGHT", &c.Height)
	parseInt("TPS", &c.TPS)
	parseDuration("ACTION_INTERVAL", &c.ActionInterval)
	parseDuration("PROCESS_DELAY", &c.ProcessDelay)

	if v, ok := get("TITLE"); ok {
		c.Title = v
	}
	if v, ok := get("LAYOUT"); ok {
		c.LayoutPath = v
	}
	if v, ok := get("SHELL_ADDR"); ok {
		c.ShellAddr = v
	}
	if v, ok := get("SPEED"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSPEED=%q: %w", envPrefix, v, ErrInvalid))
		} else {
			c.Speed = f
		}
	}
	if v, ok := get("DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sDEBUG=%q: %w", envPrefix, v, ErrInvalid))
		} else {
			c.Debug = b
		}
	}

	return errors.Join(errs...)
}

// RegisterFlags binds flags to c using its current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.TPS, "tps", c.TPS, "game ticks per second")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "player speed in units per second")
	fs.DurationVar(&c.ActionInterval, "action-interval", c.ActionInterval, "period of zone actions")
	fs.DurationVar(&c.ProcessDelay, "process-delay", c.ProcessDelay, "time to process one item")
	fs.StringVar(&c.LayoutPath, "layout", c.LayoutPath, "YAML layout file")
	fs.StringVar(&c.ShellAddr, "shell", c.ShellAddr, "address for the websocket shell bridge (empty disables)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the debug overlay")
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window %dx%d: %w", c.Width, c.Height, ErrInvalid)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d: %w", c.TPS, ErrInvalid)
	case c.Speed <= 0:
		return fmt.Errorf("speed %g: %w", c.Speed, ErrInvalid)
	case c.ActionInterval <= 0:
		return fmt.Errorf("action interval %s: %w", c.ActionInterval, ErrInvalid)
	case c.ProcessDelay <= 0:
		return fmt.Errorf("process delay %s: %w", c.ProcessDelay, ErrInvalid)
	}
	return nil
}

// Layout returns the configured layout, or the built-in one.
func (c Config) Layout() (zone.Layout, error) {
	if c.LayoutPath == "" {
		return zone.DefaultLayout(), nil
	}
	return zone.LoadLayout(c.LayoutPath)
}
