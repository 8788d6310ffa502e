package scene

import (
	"image/color"

	"github.com/plus3/carryloop/ecs"
	"github.com/plus3/carryloop/internal/geom"
	"github.com/plus3/carryloop/internal/zone"
)

// Body is the entity's rectangle in world units.
type Body struct {
	Rect geom.Rect
}

// Velocity is in world units per second.
type Velocity struct {
	X, Y float64
}

// Player marks the controlled entity.
type Player struct {
	Speed float64
}

// Solid marks bodies that block movement.
type Solid struct{}

// Area attaches a zone kind to a body.
type Area struct {
	Kind zone.Kind
}

type Fill struct {
	Color color.RGBA
}

// Label is text drawn centered on the entity's body.
type Label struct {
	Text  string
	Color color.RGBA
}

// CounterSource picks the collection a Counter label shows.
type CounterSource uint8

const (
	CarriedCounter CounterSource = iota
	DroppedCounter
	ProcessedCounter
)

// Counter makes the HUD system keep the entity's Label in sync with the
// inventory.
type Counter struct {
	Source CounterSource
}

// RegisterComponents registers every scene component with r.
func RegisterComponents(r *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Body](r)
	ecs.RegisterComponent[Velocity](r)
	ecs.RegisterComponent[Player](r)
	ecs.RegisterComponent[Solid](r)
	ecs.RegisterComponent[Area](r)
	ecs.RegisterComponent[Fill](r)
	ecs.RegisterComponent[Label](r)
	ecs.RegisterComponent[Counter](r)
}

var (
	colorPlayer    = color.RGBA{R: 0xff, A: 0xff}
	colorSolid     = color.RGBA{B: 0xff, A: 0xff}
	colorWhite     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBlack     = color.RGBA{A: 0xff}
	colorSellZone  = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}
	colorZoneBlue  = color.RGBA{B: 0xff, A: 0xff}
	colorPickupBox = colorWhite
)

type zoneStyle struct {
	fill     color.RGBA
	label    color.RGBA
	counter  CounterSource
	labelled bool
}

// Zone fills and the counter each zone shows, if any.
var zoneStyles = map[zone.Kind]zoneStyle{
	zone.Carry:  {fill: colorZoneBlue},
	zone.Pickup: {fill: colorPickupBox, label: colorBlack, counter: ProcessedCounter, labelled: true},
	zone.Drop:   {fill: colorZoneBlue, label: colorWhite, counter: DroppedCounter, labelled: true},
	zone.Sell:   {fill: colorSellZone},
}
