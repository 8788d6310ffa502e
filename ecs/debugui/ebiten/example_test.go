package ebiten_test

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/carryloop/ecs"
	"github.com/plus3/carryloop/ecs/debugui"
	debugui_ebiten "github.com/plus3/carryloop/ecs/debugui/ebiten"
)

type Game struct {
	scheduler *ecs.Scheduler
	backend   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// ImguiSystem and the deferred renders must run inside the frame.
	g.backend.BeginFrame()
	g.scheduler.Once(time.Second / 60)
	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Debug Overlay", 1280, 720)

	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	scheduler := ecs.NewScheduler(storage)
	debugui.Install(scheduler)
	debugui.NewPerformanceStats(120).Spawn(scheduler)

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the overlay")
			imgui.End()
		},
	})

	if err := ebiten.RunGame(&Game{scheduler: scheduler, backend: backend}); err != nil {
		panic(err)
	}
}
