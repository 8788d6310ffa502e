package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/carryloop/ecs"
	"github.com/plus3/carryloop/internal/inventory"
	"github.com/plus3/carryloop/internal/item"
	"github.com/plus3/carryloop/internal/zone"
)

type Report struct {
	// Configuration
	GameTime      time.Duration
	FrameTime     time.Duration
	ActionPeriod  time.Duration
	ProcessDelay  time.Duration
	LayoutSource  string
	RequestedLaps int

	// Results
	Frames         uint64
	Laps           int
	Elapsed        time.Duration
	Inventory      inventory.Snapshot
	Entries        []ZoneEntries
	TasksFired     uint64
	ItemsProcessed int
	UpdateTime     Stats
	Systems        []ecs.SystemStats
	Storage        ecs.StorageStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type ZoneEntries struct {
	Kind    zone.Kind
	Entries int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Carry Loop Simulation Report

## Configuration
- **Game Time Limit:** {{.GameTime}}
- **Frame Time:** {{.FrameTime}}
- **Action Interval:** {{.ActionPeriod}}
- **Process Delay:** {{.ProcessDelay}}
- **Layout:** {{.LayoutSource}}
{{- if .RequestedLaps}}
- **Laps Requested:** {{.RequestedLaps}}
{{- end}}

## Economy
- **Laps Completed:** {{.Laps}}
- **Game Time Simulated:** {{.Elapsed}}
- **Coins:** {{.Inventory.Coins}}
- **Items Processed:** {{.ItemsProcessed}}
- **Carried:** {{counter .Inventory.Carried}}
- **Dropped:** {{counter .Inventory.Dropped}}
- **Processed:** {{counter .Inventory.Processed}}

## Zone Entries
| zone | entries |
|---|---|
{{- range .Entries}}
| {{.Kind}} | {{.Entries}} |
{{- end}}

## Performance Results
- **Frames:** {{.Frames}}
- **Clock Tasks Fired:** {{.TasksFired}}
- **Entities:** {{.Storage.TotalEntityCount}} in {{.Storage.ArchetypeCount}} archetypes
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| system | runs | avg | max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"counter": func(c item.Counter) string {
			return fmt.Sprintf("%s (%d items)", item.FormatCounter("", c), c.Total())
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
