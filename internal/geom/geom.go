// Package geom has the axis-aligned rectangle math used for zone overlap and
// blocking movement.
package geom

import "fmt"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Rect is anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// FromCenter builds a rect of size w×h centered on (cx, cy).
func FromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Min() Vec2 { return Vec2{X: r.X, Y: r.Y} }
func (r Rect) Max() Vec2 { return Vec2{X: r.X + r.W, Y: r.Y + r.H} }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether r and o share interior area. Rects that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Within reports whether r lies entirely inside bounds.
func (r Rect) Within(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y &&
		r.X+r.W <= bounds.X+bounds.W && r.Y+r.H <= bounds.Y+bounds.H
}

// Clamp moves r the least distance needed to lie inside bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	r.X = min(max(r.X, bounds.X), bounds.X+bounds.W-r.W)
	r.Y = min(max(r.Y, bounds.Y), bounds.Y+bounds.H-r.H)
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// Move displaces body by delta one axis at a time. A step that would overlap
// any solid is cut short so body ends flush against it, and the result is
// clamped to bounds. The returned mask tells which axes were blocked.
func Move(body Rect, delta Vec2, solids []Rect, bounds Rect) (Rect, Blocked) {
	var blocked Blocked

	if delta.X != 0 {
		body.X += delta.X
		for _, s := range solids {
			if !body.Overlaps(s) {
				continue
			}
			if delta.X > 0 {
				body.X = s.X - body.W
			} else {
				body.X = s.X + s.W
			}
			blocked |= BlockedX
		}
	}

	if delta.Y != 0 {
		body.Y += delta.Y
		for _, s := range solids {
			if !body.Overlaps(s) {
				continue
			}
			if delta.Y > 0 {
				body.Y = s.Y - body.H
			} else {
				body.Y = s.Y + s.H
			}
			blocked |= BlockedY
		}
	}

	if !bounds.Empty() {
		clamped := body.Clamp(bounds)
		if clamped.X != body.X {
			blocked |= BlockedX
		}
		if clamped.Y != body.Y {
			blocked |= BlockedY
		}
		body = clamped
	}

	return body, blocked
}

// Blocked is a bit mask of axes on which movement was stopped.
type Blocked uint8

const (
	BlockedX Blocked = 1 << iota
	BlockedY
)
