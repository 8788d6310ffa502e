package render

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/carryloop/ecs/debugui"
	"github.com/plus3/carryloop/internal/scene"
	"github.com/plus3/carryloop/internal/zone"
)

// spawnInspector adds a window showing inventory, zone occupancy and the
// clock's pending tasks.
func spawnInspector(s *scene.Scene) {
	s.Storage().Spawn(debugui.ImguiItem{
		Render: func() {
			session := s.Session()
			snap := session.State.Snapshot()

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 160), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(280, 320), imgui.CondOnce)

			if !imgui.BeginV("Carry Loop", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			imgui.Text(fmt.Sprintf("Elapsed: %s", s.Elapsed().Truncate(time.Millisecond)))
			imgui.Text(fmt.Sprintf("Coins: %d", snap.Coins))
			imgui.Text(fmt.Sprintf("Revision: %d", snap.Revision))
			imgui.Separator()

			imgui.Text("Inventory")
			imgui.BulletText(fmt.Sprintf("Carried   RAW %d  PROC %d", snap.Carried.Raw, snap.Carried.Processed))
			imgui.BulletText(fmt.Sprintf("Dropped   RAW %d  PROC %d", snap.Dropped.Raw, snap.Dropped.Processed))
			imgui.BulletText(fmt.Sprintf("Processed RAW %d  PROC %d", snap.Processed.Raw, snap.Processed.Processed))
			imgui.Text(fmt.Sprintf("Pipeline busy: %t (%d done)", session.Processor.Busy(), session.Processor.Completed()))

			if imgui.TreeNodeStr("Zones") {
				for _, k := range zone.Kinds() {
					state := "outside"
					if session.Tracker.Inside(k) {
						state = "inside"
					}
					imgui.BulletText(fmt.Sprintf("%-7s %-7s entries %d", k, state, session.Entries[k]))
				}
				imgui.TreePop()
			}

			if imgui.TreeNodeStr("Tasks") {
				for _, key := range session.Clock.Pending() {
					remaining, _ := session.Clock.Remaining(key)
					imgui.BulletText(fmt.Sprintf("task %#x due in %s", uint32(key), remaining))
				}
				imgui.TreePop()
			}

			imgui.End()
		},
	})
}
