package render

import (
	"image/color"

	"github.com/plus3/carryloop/ecs"
	"github.com/plus3/carryloop/internal/geom"
	"github.com/plus3/carryloop/internal/scene"
)

// Layers are drawn in increasing order.
const (
	layerZone = iota
	layerSolid
	layerPlayer
)

type sprite struct {
	Rect  geom.Rect
	Color color.RGBA
	Layer int
}

type caption struct {
	Text   string
	Center geom.Vec2
	Color  color.RGBA
}

// spriteQueries collects what to draw from the scene's storage.
type spriteQueries struct {
	zones *ecs.Query[struct {
		*scene.Body
		*scene.Area
		*scene.Fill
	}]
	solids *ecs.Query[struct {
		*scene.Body
		*scene.Solid
		*scene.Fill
	}]
	players *ecs.Query[struct {
		*scene.Body
		*scene.Player
		*scene.Fill
	}]
	labels *ecs.Query[struct {
		*scene.Body
		*scene.Label
	}]

	sprites  []sprite
	captions []caption
}

func newSpriteQueries(storage *ecs.Storage) *spriteQueries {
	q := &spriteQueries{}
	q.zones = ecs.NewQuery[struct {
		*scene.Body
		*scene.Area
		*scene.Fill
	}](storage)
	q.solids = ecs.NewQuery[struct {
		*scene.Body
		*scene.Solid
		*scene.Fill
	}](storage)
	q.players = ecs.NewQuery[struct {
		*scene.Body
		*scene.Player
		*scene.Fill
	}](storage)
	q.labels = ecs.NewQuery[struct {
		*scene.Body
		*scene.Label
	}](storage)
	return q
}

// collect refreshes the sprite and caption lists. Sprites come out ordered
// by layer; captions follow their bodies.
func (q *spriteQueries) collect() ([]sprite, []caption) {
	q.sprites = q.sprites[:0]
	q.captions = q.captions[:0]

	for z := range q.zones.Values() {
		q.sprites = append(q.sprites, sprite{Rect: z.Body.Rect, Color: z.Fill.Color, Layer: layerZone})
	}
	for s := range q.solids.Values() {
		q.sprites = append(q.sprites, sprite{Rect: s.Body.Rect, Color: s.Fill.Color, Layer: layerSolid})
	}
	for p := range q.players.Values() {
		q.sprites = append(q.sprites, sprite{Rect: p.Body.Rect, Color: p.Fill.Color, Layer: layerPlayer})
	}
	for l := range q.labels.Values() {
		if l.Label.Text == "" {
			continue
		}
		q.captions = append(q.captions, caption{Text: l.Label.Text, Center: l.Body.Rect.Center(), Color: l.Label.Color})
	}

	return q.sprites, q.captions
}
