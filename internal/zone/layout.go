package zone

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/plus3/carryloop/internal/geom"
	"gopkg.in/yaml.v3"
)

var (
	ErrOverlap       = errors.New("rectangles overlap")
	ErrOutOfBounds   = errors.New("rectangle outside world")
	ErrDuplicateKind = errors.New("duplicate zone kind")
	ErrUnknownKind   = errors.New("unknown zone kind")
	ErrEmpty         = errors.New("rectangle has no area")
)

// Box is a rectangle as written in layout files: centered on X, Y.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (b Box) Rect() geom.Rect {
	return geom.FromCenter(b.X, b.Y, b.Width, b.Height)
}

type ZoneSpec struct {
	Kind Kind `yaml:"kind"`
	Box  `yaml:",inline"`
}

type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Layout places the player, the solid obstacles and the zones.
type Layout struct {
	World     World      `yaml:"world"`
	Player    Box        `yaml:"player"`
	Obstacles []Box      `yaml:"obstacles"`
	Zones     []ZoneSpec `yaml:"zones"`
}

// Zone is a resolved zone rectangle.
type Zone struct {
	Kind Kind
	Rect geom.Rect
}

// DefaultLayout is the built-in 1024×768 screen.
func DefaultLayout() Layout {
	return Layout{
		World:  World{Width: 1024, Height: 768},
		Player: Box{X: 512, Y: 384, Width: 32, Height: 32},
		Obstacles: []Box{
			{X: 612, Y: 384, Width: 50, Height: 50},
		},
		Zones: []ZoneSpec{
			{Kind: Carry, Box: Box{X: 300, Y: 384, Width: 50, Height: 50}},
			{Kind: Pickup, Box: Box{X: 250, Y: 600, Width: 40, Height: 60}},
			{Kind: Drop, Box: Box{X: 300, Y: 600, Width: 50, Height: 50}},
			{Kind: Sell, Box: Box{X: 420, Y: 600, Width: 50, Height: 50}},
		},
	}
}

// LoadLayout reads and validates a YAML layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	layout, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes a YAML layout and validates it. Unknown fields are
// rejected.
func ParseLayout(data []byte) (Layout, error) {
	var layout Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// Marshal encodes the layout as YAML.
func (l Layout) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

func (l Layout) Bounds() geom.Rect {
	return geom.Rect{W: l.World.Width, H: l.World.Height}
}

func (l Layout) PlayerRect() geom.Rect {
	return l.Player.Rect()
}

func (l Layout) Solids() []geom.Rect {
	rects := make([]geom.Rect, len(l.Obstacles))
	for i, b := range l.Obstacles {
		rects[i] = b.Rect()
	}
	return rects
}

func (l Layout) Resolve() []Zone {
	zones := make([]Zone, len(l.Zones))
	for i, spec := range l.Zones {
		zones[i] = Zone{Kind: spec.Kind, Rect: spec.Rect()}
	}
	return zones
}

// Validate checks that every rectangle has area and lies inside the world,
// that no kind repeats, that zones overlap neither each other nor an
// obstacle, and that the player does not start inside an obstacle.
func (l Layout) Validate() error {
	bounds := l.Bounds()
	if bounds.Empty() {
		return fmt.Errorf("world %gx%g: %w", l.World.Width, l.World.Height, ErrEmpty)
	}

	check := func(name string, r geom.Rect) error {
		if r.Empty() {
			return fmt.Errorf("%s %v: %w", name, r, ErrEmpty)
		}
		if !r.Within(bounds) {
			return fmt.Errorf("%s %v: %w", name, r, ErrOutOfBounds)
		}
		return nil
	}

	player := l.PlayerRect()
	if err := check("player", player); err != nil {
		return err
	}

	solids := l.Solids()
	for i, s := range solids {
		if err := check(fmt.Sprintf("obstacle %d", i), s); err != nil {
			return err
		}
		if s.Overlaps(player) {
			return fmt.Errorf("obstacle %d and player: %w", i, ErrOverlap)
		}
	}

	var seen [kindCount]bool
	zones := l.Resolve()
	for i, z := range zones {
		if z.Kind >= kindCount {
			return fmt.Errorf("zone %d: %w", i, ErrUnknownKind)
		}
		if seen[z.Kind] {
			return fmt.Errorf("zone %s: %w", z.Kind, ErrDuplicateKind)
		}
		seen[z.Kind] = true

		if err := check("zone "+z.Kind.String(), z.Rect); err != nil {
			return err
		}
		for j, s := range solids {
			if z.Rect.Overlaps(s) {
				return fmt.Errorf("zone %s and obstacle %d: %w", z.Kind, j, ErrOverlap)
			}
		}
		for _, other := range zones[:i] {
			if z.Rect.Overlaps(other.Rect) {
				return fmt.Errorf("zone %s and zone %s: %w", z.Kind, other.Kind, ErrOverlap)
			}
		}
	}

	return nil
}
