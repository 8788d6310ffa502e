package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/carryloop/internal/autopilot"
	"github.com/plus3/carryloop/internal/config"
	"github.com/plus3/carryloop/internal/eventbus"
	"github.com/plus3/carryloop/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompletesLaps(t *testing.T) {
	bus := eventbus.New()
	ready := 0
	bus.On(eventbus.SceneReady, func(any) { ready++ })

	report, err := run(config.Default(), simOptions{
		GameTime:  5 * time.Minute,
		FrameTime: time.Second / 60,
		Laps:      2,
		Timing:    autopilot.DefaultTiming(),
	}, bus, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, 1, ready)
	assert.Equal(t, 2, report.Laps)
	assert.Less(t, report.Elapsed, 5*time.Minute)
	assert.Positive(t, report.Inventory.Coins)
	assert.Positive(t, report.ItemsProcessed)
	assert.Len(t, report.Systems, 6)
	assert.Equal(t, 6, report.Storage.TotalEntityCount)
	assert.Len(t, report.UpdateTime.Samples, int(report.Frames))

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "# Carry Loop Simulation Report")
	assert.Contains(t, out.String(), "- **Laps Completed:** 2")
	assert.Contains(t, out.String(), "| ZoneEnterSystem |")
	assert.Contains(t, out.String(), "| sell |")
	assert.NotContains(t, out.String(), "GC Pause")
}

func TestRunStopsAtGameTime(t *testing.T) {
	report, err := run(config.Default(), simOptions{
		GameTime:  2 * time.Second,
		FrameTime: 100 * time.Millisecond,
		Timing:    autopilot.DefaultTiming(),
	}, eventbus.New(), logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, uint64(20), report.Frames)
	assert.Equal(t, 2*time.Second, report.Elapsed)
	assert.Zero(t, report.Laps)
}

func TestRunRejectsBadFrameTime(t *testing.T) {
	_, err := run(config.Default(), simOptions{GameTime: time.Second}, eventbus.New(), logging.Discard())
	assert.Error(t, err)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
}
