package ecs_test

import (
	"fmt"
	"time"

	"github.com/plus3/carryloop/ecs"
)

// ExampleScheduler runs two systems in registration order. Query and
// Singleton fields are bound on Register.
func ExampleScheduler() {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 200, DY: 0})
	storage.Spawn(Position{X: 100, Y: 100}, Velocity{DX: -50, DY: 50})
	ecs.NewSingleton[Clock](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&TickSystem{})

	scheduler.Once(500 * time.Millisecond)
	scheduler.Once(500 * time.Millisecond)

	for item := range ecs.NewView[struct{ *Position }](storage).Values() {
		fmt.Printf("(%.0f, %.0f)\n", item.Position.X, item.Position.Y)
	}

	var clock *Clock
	storage.ReadSingleton(&clock)
	fmt.Println("ticks:", clock.Ticks)

	stats := scheduler.GetStats()
	for _, system := range stats.Systems {
		fmt.Println(system.Name, system.ExecutionCount)
	}

	// Output:
	// (200, 0)
	// (50, 150)
	// ticks: 2
	// MovementSystem 2
	// TickSystem 2
}
