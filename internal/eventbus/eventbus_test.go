package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitInSubscriptionOrder(t *testing.T) {
	bus := New()
	var got []string

	bus.On(SceneReady, func(p any) { got = append(got, "a:"+p.(string)) })
	bus.On(SceneReady, func(p any) { got = append(got, "b:"+p.(string)) })
	bus.On("other", func(any) { got = append(got, "other") })

	n := bus.Emit(SceneReady, "Game")

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a:Game", "b:Game"}, got)
}

func TestUnsubscribe(t *testing.T) {
	bus := New()
	calls := 0
	off := bus.On("t", func(any) { calls++ })

	bus.Emit("t", nil)
	off()
	off()
	bus.Emit("t", nil)

	assert.Equal(t, 1, calls)
	assert.Zero(t, bus.Count("t"))
}

func TestOnce(t *testing.T) {
	bus := New()
	calls := 0
	bus.Once("t", func(any) { calls++ })

	assert.Equal(t, 1, bus.Emit("t", nil))
	assert.Equal(t, 0, bus.Emit("t", nil))
	assert.Equal(t, 1, calls)
}

func TestHandlerMaySubscribe(t *testing.T) {
	bus := New()
	bus.On("t", func(any) {
		bus.On("t", func(any) {})
	})

	assert.NotPanics(t, func() { bus.Emit("t", nil) })
	assert.Equal(t, 2, bus.Count("t"))
}

func TestConcurrentUse(t *testing.T) {
	bus := New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			off := bus.On("t", func(any) {})
			bus.Emit("t", nil)
			off()
		}()
	}
	wg.Wait()
	assert.Zero(t, bus.Count("t"))
}
