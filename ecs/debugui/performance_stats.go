package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/carryloop/ecs"
)

// PerformanceStats is a window with frame time history, storage counts and
// per-system timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	lastFrameTime time.Time
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores the wall time since the previous call.
func (ps *PerformanceStats) Record(now time.Time) {
	if !ps.lastFrameTime.IsZero() {
		ps.frameHistory[ps.frameIndex] = float32(now.Sub(ps.lastFrameTime).Seconds() * 1000)
		ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	}
	ps.lastFrameTime = now
}

// AverageFrameMillis returns the mean of the recorded history.
func (ps *PerformanceStats) AverageFrameMillis() float32 {
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.historyFrames)
}

// Spawn adds the window to the scheduler's storage.
func (ps *PerformanceStats) Spawn(scheduler *ecs.Scheduler) {
	scheduler.Storage().Spawn(ImguiItem{
		Render: func() {
			ps.Record(time.Now())
			ps.Render(scheduler)
		},
	})
}

func (ps *PerformanceStats) Render(scheduler *ecs.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(760, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(250, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	storageStats := scheduler.Storage().CollectStats()
	avg := ps.AverageFrameMillis()

	imgui.Text(fmt.Sprintf("Entities: %d", storageStats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", storageStats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", storageStats.SingletonCount))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, system := range scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(system.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, singletonType := range storageStats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}
