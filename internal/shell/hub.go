// Package shell relays event bus notifications to an external UI shell over
// websocket. Connected shells receive every relayed event as JSON; a shell
// that connects late first receives the most recent one.
package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/plus3/carryloop/internal/eventbus"
	"github.com/plus3/carryloop/internal/logging"
)

// Message is the JSON frame sent to shells.
type Message struct {
	Event string    `json:"event"`
	Scene string    `json:"scene,omitempty"`
	At    time.Time `json:"at"`
}

// Named is implemented by payloads that carry a display name, such as scenes.
type Named interface {
	Name() string
}

// Hub tracks connected shells and fans messages out to them. Run must be
// running for connections and broadcasts to be served.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	last       []byte

	// done is closed when Run returns; pumps stop waiting on the hub then.
	done  chan struct{}
	pumps sync.WaitGroup

	mu     sync.Mutex
	logger *logging.Logger
	now    func() time.Time
}

func NewHub(logger *logging.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		logger:     logger,
		now:        time.Now,
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every connection. Call it once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.logger.Info("shell hub shutting down")
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			if h.last != nil {
				c.send <- h.last
			}
			h.mu.Unlock()
			h.logger.Info("shell connected")
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Info("shell disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			h.last = message
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					close(c.send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues msg for every connected shell. It never blocks; when the
// queue is full the message is dropped and logged.
func (h *Hub) Publish(msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode shell message: %w", err)
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warnf("shell queue full, dropped %s", msg.Event)
	}
	return nil
}

// Relay forwards every emit of the given topics to connected shells and
// returns a function that stops relaying.
func (h *Hub) Relay(bus *eventbus.Bus, topics ...string) func() {
	offs := make([]func(), 0, len(topics))
	for _, topic := range topics {
		offs = append(offs, bus.On(topic, func(payload any) {
			msg := Message{Event: topic, At: h.now().UTC()}
			if named, ok := payload.(Named); ok {
				msg.Scene = named.Name()
			}
			if err := h.Publish(msg); err != nil {
				h.logger.Error(err.Error())
			}
		}))
	}

	return func() {
		for _, off := range offs {
			off()
		}
	}
}

// Wait blocks until every client pump has exited. After Run returns this
// happens once the closed connections are noticed.
func (h *Hub) Wait() {
	h.pumps.Wait()
}

// Clients returns the number of connected shells.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
