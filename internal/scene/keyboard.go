package scene

// Key is a movement key.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
)

// Keyboard reports which keys are held this frame.
type Keyboard interface {
	Pressed(Key) bool
}

// KeySet is a Keyboard backed by a fixed set of held keys.
type KeySet map[Key]bool

func (k KeySet) Pressed(key Key) bool {
	return k[key]
}
