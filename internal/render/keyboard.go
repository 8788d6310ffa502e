package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/carryloop/internal/scene"
)

var keyBindings = map[scene.Key][]ebiten.Key{
	scene.KeyW: {ebiten.KeyW, ebiten.KeyArrowUp},
	scene.KeyA: {ebiten.KeyA, ebiten.KeyArrowLeft},
	scene.KeyS: {ebiten.KeyS, ebiten.KeyArrowDown},
	scene.KeyD: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// Keyboard reads movement keys from ebiten. While Captured returns true the
// keyboard belongs to the debug overlay and every key reads as released.
type Keyboard struct {
	Captured func() bool
}

func (k *Keyboard) Pressed(key scene.Key) bool {
	if k.Captured != nil && k.Captured() {
		return false
	}
	for _, bound := range keyBindings[key] {
		if ebiten.IsKeyPressed(bound) {
			return true
		}
	}
	return false
}
