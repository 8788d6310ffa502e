// Package zone tracks which zones the player occupies and runs each zone's
// action: repeating item transfers for carry, pickup and drop, a one-off
// sale for sell.
package zone

import (
	"fmt"
	"time"

	"github.com/plus3/carryloop/internal/clock"
	"github.com/plus3/carryloop/internal/geom"
	"github.com/plus3/carryloop/internal/inventory"
	"github.com/plus3/carryloop/internal/pipeline"
)

const DefaultInterval = 500 * time.Millisecond

// Transition is one edge of a zone's OUTSIDE/INSIDE state.
type Transition struct {
	Kind    Kind
	Entered bool

	// Sale is set when entering a sell zone.
	Sale inventory.Sale
}

// Status is the status line shown for the transition.
func (t Transition) Status() string {
	if !t.Entered {
		return "Outside " + t.Kind.Area()
	}
	switch t.Kind {
	case Carry:
		return "Carrying RAW items"
	case Pickup:
		return "Picking processed items"
	case Drop:
		return "Dropping items"
	case Sell:
		return fmt.Sprintf("Sold %d RAW and %d PROCESSED for %d coins",
			t.Sale.Sold.Raw, t.Sale.Sold.Processed, t.Sale.Earned)
	}
	return ""
}

// Tracker is the per-zone state machine. Each repeating zone owns its own
// clock task keyed by Kind.TaskKey, so zones never share a timer.
type Tracker struct {
	inside    [kindCount]bool
	clock     *clock.Clock
	state     *inventory.State
	processor *pipeline.Processor
	interval  time.Duration
}

func NewTracker(c *clock.Clock, state *inventory.State, processor *pipeline.Processor, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tracker{
		clock:     c,
		state:     state,
		processor: processor,
		interval:  interval,
	}
}

// Inside reports whether the player is currently inside the zone of kind k.
func (t *Tracker) Inside(k Kind) bool {
	return k < kindCount && t.inside[k]
}

// Ready reports whether entering a zone of kind k is allowed right now.
func (t *Tracker) Ready(k Kind) bool {
	switch k {
	case Carry:
		return true
	case Pickup:
		return t.state.ProcessedLen() > 0
	case Drop, Sell:
		return t.state.CarriedLen() > 0
	}
	return false
}

// CheckExits marks every occupied zone the player no longer overlaps as
// OUTSIDE and cancels its task before returning.
func (t *Tracker) CheckExits(player geom.Rect, zones []Zone) []Transition {
	var out []Transition
	for _, z := range zones {
		if !t.Inside(z.Kind) || player.Overlaps(z.Rect) {
			continue
		}
		t.inside[z.Kind] = false
		t.clock.Cancel(z.Kind.TaskKey())
		out = append(out, Transition{Kind: z.Kind})
	}
	return out
}

// CheckEnters marks newly overlapped zones whose precondition holds as
// INSIDE and runs their entry action. A zone whose precondition fails stays
// OUTSIDE and is checked again next call.
func (t *Tracker) CheckEnters(player geom.Rect, zones []Zone) []Transition {
	var out []Transition
	for _, z := range zones {
		if z.Kind >= kindCount || t.inside[z.Kind] || !player.Overlaps(z.Rect) || !t.Ready(z.Kind) {
			continue
		}
		t.inside[z.Kind] = true
		out = append(out, t.enter(z.Kind))
	}
	return out
}

func (t *Tracker) enter(k Kind) Transition {
	tr := Transition{Kind: k, Entered: true}
	switch k {
	case Carry:
		t.clock.Every(k.TaskKey(), t.interval, t.carry)
	case Pickup:
		t.clock.Every(k.TaskKey(), t.interval, t.pickUp)
	case Drop:
		t.clock.Every(k.TaskKey(), t.interval, t.drop)
	case Sell:
		tr.Sale = t.state.Sell()
	}
	return tr
}

func (t *Tracker) carry(time.Duration) {
	t.state.Gather()
}

func (t *Tracker) pickUp(time.Duration) {
	if !t.state.PickUp() {
		t.clock.Cancel(Pickup.TaskKey())
	}
}

func (t *Tracker) drop(time.Duration) {
	if !t.state.Drop() {
		t.clock.Cancel(Drop.TaskKey())
		return
	}
	t.processor.Trigger()
}

// Reset forgets all occupancy and cancels every zone task.
func (t *Tracker) Reset() {
	for _, k := range Kinds() {
		t.inside[k] = false
		t.clock.Cancel(k.TaskKey())
	}
}
