package zone

import (
	"fmt"

	"github.com/plus3/carryloop/internal/clock"
	"gopkg.in/yaml.v3"
)

// Kind names what a zone does when the player enters it.
type Kind uint8

const (
	Carry Kind = iota
	Pickup
	Drop
	Sell

	kindCount
)

var kindNames = [...]string{
	Carry:  "carry",
	Pickup: "pickup",
	Drop:   "drop",
	Sell:   "sell",
}

// Area names shown in status texts.
var kindAreas = [...]string{
	Carry:  "carry area",
	Pickup: "processed area",
	Drop:   "drop area",
	Sell:   "selling area",
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Carry, Pickup, Drop, Sell}
}

func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Area is the human name of the zone, e.g. "drop area".
func (k Kind) Area() string {
	if k < kindCount {
		return kindAreas[k]
	}
	return k.String()
}

// Repeating reports whether entering the zone starts a repeating task.
// Selling happens once, on entry.
func (k Kind) Repeating() bool {
	return k != Sell
}

// TaskKey is the clock key of this zone's repeating task.
func (k Kind) TaskKey() clock.Key {
	return clock.Key(k) + 1
}

func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}
