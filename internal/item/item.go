// Package item defines the two kinds of goods moved around the loop and the
// helpers that count and price collections of them.
package item

import "fmt"

// Type is the closed tag of an item.
type Type uint8

const (
	Raw Type = iota
	Processed
)

var typeNames = [...]string{
	Raw:       "RAW",
	Processed: "PROCESSED",
}

// Unit sale prices.
var prices = [...]int{
	Raw:       5,
	Processed: 15,
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Price returns the coin value of one item of this type.
func (t Type) Price() int {
	if int(t) < len(prices) {
		return prices[t]
	}
	return 0
}

// Item is an immutable value. Processing replaces it rather than mutating it.
type Item struct {
	Type Type
}

func NewRaw() Item {
	return Item{Type: Raw}
}

// Process returns the processed replacement of it.
func Process(it Item) Item {
	return Item{Type: Processed}
}

func (it Item) String() string {
	return it.Type.String()
}

// Counter summarizes a collection by type.
type Counter struct {
	Raw       int
	Processed int
}

// Count tallies items by type.
func Count(items []Item) Counter {
	var c Counter
	for _, it := range items {
		switch it.Type {
		case Raw:
			c.Raw++
		case Processed:
			c.Processed++
		}
	}
	return c
}

func (c Counter) Total() int {
	return c.Raw + c.Processed
}

// Value is the coin value of the counted items.
func (c Counter) Value() int {
	return c.Raw*Raw.Price() + c.Processed*Processed.Price()
}

// FormatCounter renders c as "<prefix>RAW: r PROC: p".
func FormatCounter(prefix string, c Counter) string {
	return fmt.Sprintf("%sRAW: %d PROC: %d", prefix, c.Raw, c.Processed)
}
