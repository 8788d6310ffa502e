// Package scene assembles the carry loop: it spawns the player, the obstacle
// and the zones as ECS entities, wires the inventory, clock, pipeline and
// zone tracker into a Session singleton, and runs the per-frame systems in
// a fixed order.
package scene

import (
	"fmt"
	"time"

	"github.com/plus3/carryloop/ecs"
	"github.com/plus3/carryloop/internal/clock"
	"github.com/plus3/carryloop/internal/eventbus"
	"github.com/plus3/carryloop/internal/geom"
	"github.com/plus3/carryloop/internal/inventory"
	"github.com/plus3/carryloop/internal/logging"
	"github.com/plus3/carryloop/internal/pipeline"
	"github.com/plus3/carryloop/internal/zone"
)

const (
	Name = "Game"

	DefaultSpeed = 200.0

	initialStatus = "Move with W A S D"
)

type Options struct {
	Layout zone.Layout

	// Keyboard may be nil, in which case the player cannot move.
	Keyboard Keyboard
	Bus      *eventbus.Bus
	Logger   *logging.Logger

	Speed          float64
	ActionInterval time.Duration
	ProcessDelay   time.Duration
}

type Scene struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	session   *Session
	hud       *HUD
	player    ecs.EntityId
}

// New builds the scene from opts and emits eventbus.SceneReady with the
// scene as payload once setup is complete.
func New(opts Options) (*Scene, error) {
	if err := opts.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("scene layout: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Speed <= 0 {
		opts.Speed = DefaultSpeed
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	c := clock.New()
	state := inventory.New()
	processor := pipeline.New(c, state, opts.ProcessDelay)
	tracker := zone.NewTracker(c, state, processor, opts.ActionInterval)

	storage.AddSingleton(Session{
		State:     state,
		Clock:     c,
		Processor: processor,
		Tracker:   tracker,
		Keyboard:  opts.Keyboard,
		Logger:    opts.Logger,
		Bounds:    opts.Layout.Bounds(),
		Entries:   make(map[zone.Kind]int),
	})
	storage.AddSingleton(HUD{Status: initialStatus, dirty: true})

	s := &Scene{
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
	}
	storage.ReadSingleton(&s.session)
	storage.ReadSingleton(&s.hud)

	s.spawn(opts.Layout, opts.Speed)

	s.scheduler.Register(&ZoneExitSystem{})
	s.scheduler.Register(&ClockSystem{})
	if opts.Keyboard != nil {
		s.scheduler.Register(&InputSystem{})
	} else {
		opts.Logger.Warn("Keyboard input is not available")
	}
	s.scheduler.Register(&MovementSystem{})
	s.scheduler.Register(&ZoneEnterSystem{})
	s.scheduler.Register(&HUDSystem{})

	if opts.Bus != nil {
		opts.Bus.Emit(eventbus.SceneReady, s)
	}
	opts.Logger.Infof("scene %s ready: %d zones, %d obstacles", Name, len(opts.Layout.Zones), len(opts.Layout.Obstacles))
	return s, nil
}

func (s *Scene) spawn(layout zone.Layout, speed float64) {
	for _, z := range layout.Resolve() {
		style := zoneStyles[z.Kind]
		if style.labelled {
			s.storage.Spawn(
				Body{Rect: z.Rect},
				Area{Kind: z.Kind},
				Fill{Color: style.fill},
				Label{Color: style.label},
				Counter{Source: style.counter},
			)
			continue
		}
		s.storage.Spawn(Body{Rect: z.Rect}, Area{Kind: z.Kind}, Fill{Color: style.fill})
	}

	for _, rect := range layout.Solids() {
		s.storage.Spawn(Body{Rect: rect}, Solid{}, Fill{Color: colorSolid})
	}

	s.player = s.storage.Spawn(
		Body{Rect: layout.PlayerRect()},
		Velocity{},
		Player{Speed: speed},
		Fill{Color: colorPlayer},
		Label{Color: colorWhite},
		Counter{Source: CarriedCounter},
	)
}

// Name identifies the scene to shells listening for SceneReady.
func (s *Scene) Name() string {
	return Name
}

// Update runs one frame of dt.
func (s *Scene) Update(dt time.Duration) {
	s.scheduler.Once(dt)
}

func (s *Scene) Storage() *ecs.Storage {
	return s.storage
}

func (s *Scene) Scheduler() *ecs.Scheduler {
	return s.scheduler
}

func (s *Scene) Session() *Session {
	return s.session
}

func (s *Scene) State() *inventory.State {
	return s.session.State
}

// HUD returns a copy of the current presentational strings.
func (s *Scene) HUD() HUD {
	return *s.hud
}

func (s *Scene) PlayerRect() geom.Rect {
	if body := ecs.ReadComponent[Body](s.storage, s.player); body != nil {
		return body.Rect
	}
	return geom.Rect{}
}

// Elapsed is the game time simulated so far.
func (s *Scene) Elapsed() time.Duration {
	return s.session.Clock.Now()
}
