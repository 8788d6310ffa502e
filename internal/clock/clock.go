// Package clock is a deterministic scheduler of repeating and one-shot tasks
// driven by explicit Advance calls from the game loop. Tasks are keyed so
// each owner can start, query and cancel its own task independently.
package clock

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Key identifies a task. At most one task per key is active.
type Key uint32

// Func is called with the time the task was due.
type Func func(due time.Duration)

type task struct {
	key    Key
	due    time.Duration
	period time.Duration
	fn     Func
	seq    uint64
}

// Clock is not safe for concurrent use; it belongs to the game thread.
type Clock struct {
	now    time.Duration
	tasks  *intmap.Map[Key, *task]
	queue  []*task
	seq    uint64
	fired  uint64
	firing bool
	dueAt  time.Duration
}

func New() *Clock {
	return &Clock{
		tasks: intmap.New[Key, *task](8),
	}
}

// Now returns the virtual time elapsed through Advance.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Fired returns how many task callbacks have run.
func (c *Clock) Fired() uint64 {
	return c.fired
}

// Every starts a repeating task that first fires one period from now. It
// returns false and changes nothing if key already has an active task.
func (c *Clock) Every(key Key, period time.Duration, fn Func) bool {
	if period <= 0 {
		panic("clock: period must be positive")
	}
	return c.schedule(key, period, period, fn)
}

// After starts a one-shot task. Like Every it refuses an active key.
func (c *Clock) After(key Key, delay time.Duration, fn Func) bool {
	return c.schedule(key, delay, 0, fn)
}

func (c *Clock) schedule(key Key, delay, period time.Duration, fn Func) bool {
	if c.tasks.Has(key) {
		return false
	}

	// Tasks started from a callback are anchored at that callback's due
	// time, not at the end of the Advance window.
	start := c.now
	if c.firing {
		start = c.dueAt
	}

	c.seq++
	t := &task{
		key:    key,
		due:    start + max(delay, 0),
		period: period,
		fn:     fn,
		seq:    c.seq,
	}
	c.tasks.Put(key, t)
	c.queue = append(c.queue, t)
	return true
}

// Cancel stops the task for key. It may be called from inside a callback,
// including the task's own.
func (c *Clock) Cancel(key Key) bool {
	t, ok := c.tasks.Get(key)
	if !ok {
		return false
	}
	c.tasks.Del(key)
	c.remove(t)
	return true
}

// Active reports whether key has a pending task.
func (c *Clock) Active(key Key) bool {
	return c.tasks.Has(key)
}

// Len returns the number of pending tasks.
func (c *Clock) Len() int {
	return c.tasks.Len()
}

// Pending returns the keys of pending tasks in the order they were started.
func (c *Clock) Pending() []Key {
	keys := make([]Key, 0, len(c.queue))
	for _, t := range c.queue {
		keys = append(keys, t.key)
	}
	return keys
}

// Remaining returns the time until key's next firing.
func (c *Clock) Remaining(key Key) (time.Duration, bool) {
	t, ok := c.tasks.Get(key)
	if !ok {
		return 0, false
	}
	return t.due - c.now, true
}

// Advance moves time forward by dt and runs every task that falls due, in
// due order (ties in start order). A repeating task may fire several times
// in one Advance.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := c.now + dt

	for {
		next := c.next(target)
		if next == nil {
			break
		}

		c.now = next.due
		if next.period > 0 {
			next.due += next.period
		} else {
			c.tasks.Del(next.key)
			c.remove(next)
		}

		c.firing = true
		c.dueAt = c.now
		c.fired++
		next.fn(c.now)
		c.firing = false
	}

	c.now = target
}

// Reset cancels every task and rewinds time to zero.
func (c *Clock) Reset() {
	c.tasks.Clear()
	clear(c.queue)
	c.queue = c.queue[:0]
	c.now = 0
	c.fired = 0
}

func (c *Clock) next(target time.Duration) *task {
	var best *task
	for _, t := range c.queue {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *Clock) remove(t *task) {
	for i, queued := range c.queue {
		if queued == t {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}
