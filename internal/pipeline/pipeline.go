// Package pipeline converts dropped RAW items into PROCESSED items one at a
// time with a fixed delay per item.
package pipeline

import (
	"time"

	"github.com/plus3/carryloop/internal/clock"
	"github.com/plus3/carryloop/internal/inventory"
	"github.com/plus3/carryloop/internal/item"
)

// TaskKey is the clock key of the pending conversion.
const TaskKey clock.Key = 0x100

const DefaultDelay = 1500 * time.Millisecond

// Processor is a single-slot pipeline over the dropped queue of an inventory.
type Processor struct {
	clock *clock.Clock
	state *inventory.State
	delay time.Duration

	busy      bool
	completed int
	onDone    func(item.Item)
}

func New(c *clock.Clock, state *inventory.State, delay time.Duration) *Processor {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Processor{
		clock: c,
		state: state,
		delay: delay,
	}
}

// OnProcessed sets a callback run after every conversion.
func (p *Processor) OnProcessed(fn func(item.Item)) {
	p.onDone = fn
}

// Trigger starts converting the oldest dropped item unless the pipeline is
// busy or the queue is empty. It reports whether a conversion was started.
func (p *Processor) Trigger() bool {
	if p.busy || p.state.DroppedLen() == 0 {
		return false
	}
	p.busy = true
	p.clock.After(TaskKey, p.delay, p.finish)
	return true
}

func (p *Processor) finish(time.Duration) {
	out, ok := p.state.ProcessNext()
	p.busy = false
	if ok {
		p.completed++
		if p.onDone != nil {
			p.onDone(out)
		}
	}
	if p.state.DroppedLen() > 0 {
		p.Trigger()
	}
}

func (p *Processor) Busy() bool {
	return p.busy
}

// Completed returns the number of items converted so far.
func (p *Processor) Completed() int {
	return p.completed
}

func (p *Processor) Delay() time.Duration {
	return p.delay
}
