// Package eventbus is a small topic-based publish/subscribe bus connecting
// the scene to whatever hosts it.
package eventbus

import "sync"

// SceneReady is emitted once a scene finishes setup; the payload is the scene.
const SceneReady = "current-scene-ready"

type Handler func(payload any)

type subscription struct {
	id      uint64
	handler Handler
	once    bool
}

// Bus is safe for concurrent use. Handlers run synchronously on the emitting
// goroutine, outside the bus lock.
type Bus struct {
	mu     sync.Mutex
	topics map[string][]subscription
	nextID uint64
}

func New() *Bus {
	return &Bus{topics: make(map[string][]subscription)}
}

// On subscribes fn to topic and returns a function that unsubscribes it.
func (b *Bus) On(topic string, fn Handler) func() {
	return b.subscribe(topic, fn, false)
}

// Once subscribes fn for the next emit of topic only.
func (b *Bus) Once(topic string, fn Handler) func() {
	return b.subscribe(topic, fn, true)
}

func (b *Bus) subscribe(topic string, fn Handler, once bool) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.topics[topic] = append(b.topics[topic], subscription{id: id, handler: fn, once: once})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.remove(topic, id)
	}
}

func (b *Bus) remove(topic string, id uint64) {
	subs := b.topics[topic]
	for i, sub := range subs {
		if sub.id == id {
			b.topics[topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.topics[topic]) == 0 {
		delete(b.topics, topic)
	}
}

// Emit calls every handler of topic in subscription order and returns how
// many ran.
func (b *Bus) Emit(topic string, payload any) int {
	b.mu.Lock()
	subs := append([]subscription(nil), b.topics[topic]...)
	for _, sub := range subs {
		if sub.once {
			b.remove(topic, sub.id)
		}
	}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.handler(payload)
	}
	return len(subs)
}

// Count returns the number of handlers subscribed to topic.
func (b *Bus) Count(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.topics[topic])
}
