package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keyA Key = iota + 1
	keyB
)

func TestEveryFiresOncePerPeriod(t *testing.T) {
	c := New()
	count := 0
	require.True(t, c.Every(keyA, 500*time.Millisecond, func(time.Duration) { count++ }))

	c.Advance(499 * time.Millisecond)
	assert.Equal(t, 0, count)

	c.Advance(time.Millisecond)
	assert.Equal(t, 1, count)

	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, 4, count, "several firings in one advance")
	assert.True(t, c.Active(keyA))
}

func TestKeyedTasksAreIndependent(t *testing.T) {
	c := New()
	var a, b int
	c.Every(keyA, 500*time.Millisecond, func(time.Duration) { a++ })
	c.Every(keyB, 500*time.Millisecond, func(time.Duration) { b++ })

	assert.False(t, c.Every(keyA, time.Second, func(time.Duration) {}), "active key is refused")

	c.Advance(time.Second)
	require.True(t, c.Cancel(keyA))
	c.Advance(time.Second)

	assert.Equal(t, 2, a)
	assert.Equal(t, 4, b)
	assert.Equal(t, []Key{keyB}, c.Pending())
}

func TestAfterFiresOnceAndFreesKey(t *testing.T) {
	c := New()
	var at []time.Duration
	c.After(keyA, 1500*time.Millisecond, func(due time.Duration) { at = append(at, due) })

	c.Advance(time.Second)
	remaining, ok := c.Remaining(keyA)
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, remaining)

	c.Advance(time.Second)
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, at)
	assert.False(t, c.Active(keyA))
	assert.Equal(t, 2*time.Second, c.Now())
}

func TestRescheduleFromCallbackAnchorsAtDueTime(t *testing.T) {
	c := New()
	var at []time.Duration
	var step Func
	step = func(due time.Duration) {
		at = append(at, due)
		if len(at) < 3 {
			c.After(keyA, 1500*time.Millisecond, step)
		}
	}
	c.After(keyA, 1500*time.Millisecond, step)

	c.Advance(10 * time.Second)

	assert.Equal(t, []time.Duration{
		1500 * time.Millisecond,
		3000 * time.Millisecond,
		4500 * time.Millisecond,
	}, at)
}

func TestCancelFromOwnCallback(t *testing.T) {
	c := New()
	count := 0
	c.Every(keyA, 100*time.Millisecond, func(time.Duration) {
		count++
		if count == 2 {
			c.Cancel(keyA)
		}
	})

	c.Advance(time.Second)
	assert.Equal(t, 2, count)
	assert.Zero(t, c.Len())
}

func TestTiesRunInStartOrder(t *testing.T) {
	c := New()
	var order []Key
	c.After(keyB, time.Second, func(time.Duration) { order = append(order, keyB) })
	c.After(keyA, time.Second, func(time.Duration) { order = append(order, keyA) })

	c.Advance(time.Second)
	assert.Equal(t, []Key{keyB, keyA}, order)
	assert.Equal(t, uint64(2), c.Fired())
}

func TestReset(t *testing.T) {
	c := New()
	c.Every(keyA, time.Second, func(time.Duration) {})
	c.Advance(3 * time.Second)

	c.Reset()
	assert.Zero(t, c.Now())
	assert.Zero(t, c.Len())
	assert.False(t, c.Cancel(keyA))
}

func TestEveryRejectsZeroPeriod(t *testing.T) {
	assert.Panics(t, func() {
		New().Every(keyA, 0, func(time.Duration) {})
	})
}
