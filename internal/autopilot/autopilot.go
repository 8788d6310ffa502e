// Package autopilot drives a scene without a human: it is a scene.Keyboard
// that steers the player through a route of waypoints, waiting at each one.
package autopilot

import (
	"fmt"
	"math"
	"time"

	"github.com/plus3/carryloop/internal/geom"
	"github.com/plus3/carryloop/internal/scene"
	"github.com/plus3/carryloop/internal/zone"
)

// Waypoint is a point to reach and how long to stay there.
type Waypoint struct {
	Name   string
	Target geom.Vec2
	Dwell  time.Duration
}

// Pilot walks its route once, or forever when Loop is set.
type Pilot struct {
	Route     []Waypoint
	Loop      bool
	Tolerance float64

	index   int
	dwelled time.Duration
	laps    int
	held    scene.KeySet
}

func New(route []Waypoint, loop bool) *Pilot {
	return &Pilot{
		Route:     route,
		Loop:      loop,
		Tolerance: 4,
		held:      scene.KeySet{},
	}
}

// Pressed implements scene.Keyboard.
func (p *Pilot) Pressed(key scene.Key) bool {
	return p.held[key]
}

// Steer updates the held keys for a player at rect. Call it once per frame
// before the scene updates, with the frame delta.
func (p *Pilot) Steer(player geom.Rect, dt time.Duration) {
	clear(p.held)
	if p.Done() {
		return
	}

	wp := p.Route[p.index]
	pos := player.Center()
	dx, dy := wp.Target.X-pos.X, wp.Target.Y-pos.Y

	if math.Abs(dx) <= p.Tolerance && math.Abs(dy) <= p.Tolerance {
		p.dwelled += dt
		if p.dwelled >= wp.Dwell {
			p.advance()
		}
		return
	}

	switch {
	case dx > p.Tolerance:
		p.held[scene.KeyD] = true
	case dx < -p.Tolerance:
		p.held[scene.KeyA] = true
	}
	switch {
	case dy > p.Tolerance:
		p.held[scene.KeyS] = true
	case dy < -p.Tolerance:
		p.held[scene.KeyW] = true
	}
}

func (p *Pilot) advance() {
	p.dwelled = 0
	p.index++
	if p.index < len(p.Route) {
		return
	}
	p.laps++
	if p.Loop {
		p.index = 0
	}
}

// Done reports whether a non-looping pilot has finished its route.
func (p *Pilot) Done() bool {
	return p.index >= len(p.Route)
}

// Laps returns the number of completed passes over the route.
func (p *Pilot) Laps() int {
	return p.laps
}

// Current returns the waypoint being approached.
func (p *Pilot) Current() (Waypoint, bool) {
	if p.Done() {
		return Waypoint{}, false
	}
	return p.Route[p.index], true
}

// Timing sets how long the pilot lingers at each stop of a lap.
type Timing struct {
	Gather  time.Duration
	Process time.Duration
	Pickup  time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Gather:  3 * time.Second,
		Process: 12 * time.Second,
		Pickup:  5 * time.Second,
	}
}

// LoopRoute builds a lap over layout: gather, drop, wait for processing,
// pick up, then walk a lane above the bottom zones to the sell zone so the
// drop zone is not crossed with items in hand.
func LoopRoute(layout zone.Layout, timing Timing) ([]Waypoint, error) {
	centers := make(map[zone.Kind]geom.Vec2)
	lane := math.Inf(1)
	for _, z := range layout.Resolve() {
		centers[z.Kind] = z.Rect.Center()
		if z.Kind != zone.Carry {
			lane = min(lane, z.Rect.Y)
		}
	}
	for _, k := range zone.Kinds() {
		if _, ok := centers[k]; !ok {
			return nil, fmt.Errorf("route needs a %s zone: %w", k, zone.ErrUnknownKind)
		}
	}
	lane -= layout.Player.Height

	carry, drop := centers[zone.Carry], centers[zone.Drop]
	pickup, sell := centers[zone.Pickup], centers[zone.Sell]

	return []Waypoint{
		{Name: "gather", Target: carry, Dwell: timing.Gather},
		{Name: "drop", Target: drop, Dwell: timing.Gather + time.Second},
		{Name: "wait", Target: geom.Vec2{X: sell.X, Y: lane - layout.Player.Height}, Dwell: timing.Process},
		{Name: "pickup", Target: pickup, Dwell: timing.Pickup},
		{Name: "lane", Target: geom.Vec2{X: pickup.X, Y: lane}},
		{Name: "lane", Target: geom.Vec2{X: sell.X, Y: lane}},
		{Name: "sell", Target: sell, Dwell: 500 * time.Millisecond},
	}, nil
}
