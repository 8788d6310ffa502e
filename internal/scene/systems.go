package scene

import (
	"fmt"

	"github.com/plus3/carryloop/ecs"
	"github.com/plus3/carryloop/internal/geom"
	"github.com/plus3/carryloop/internal/item"
	"github.com/plus3/carryloop/internal/zone"
)

type playerQuery = ecs.Query[struct {
	*Body
	*Player
}]

type zoneQuery = ecs.Query[struct {
	*Body
	*Area
}]

func playerRect(q *playerQuery) (geom.Rect, bool) {
	for p := range q.Values() {
		return p.Body.Rect, true
	}
	return geom.Rect{}, false
}

func collectZones(q *zoneQuery, buf []zone.Zone) []zone.Zone {
	buf = buf[:0]
	for z := range q.Values() {
		buf = append(buf, zone.Zone{Kind: z.Area.Kind, Rect: z.Body.Rect})
	}
	return buf
}

// ZoneExitSystem polls occupied zones and cancels the task of every zone the
// player has left, before the clock advances.
type ZoneExitSystem struct {
	Player  playerQuery
	Zones   zoneQuery
	Session ecs.Singleton[Session]
	HUD     ecs.Singleton[HUD]
}

func (z *ZoneExitSystem) Execute(frame *ecs.UpdateFrame) {
	rect, ok := playerRect(&z.Player)
	if !ok {
		return
	}
	session := z.Session.Get()
	session.zones = collectZones(&z.Zones, session.zones)
	session.record(z.HUD.Get(), session.Tracker.CheckExits(rect, session.zones))
}

// ClockSystem advances the task clock by the frame delta.
type ClockSystem struct {
	Session ecs.Singleton[Session]
}

func (c *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	c.Session.Get().Clock.Advance(frame.DeltaTime)
}

// InputSystem resets the player's velocity and applies held movement keys.
type InputSystem struct {
	Players ecs.Query[struct {
		*Player
		*Velocity
	}]
	Session ecs.Singleton[Session]
}

func (i *InputSystem) Execute(frame *ecs.UpdateFrame) {
	keyboard := i.Session.Get().Keyboard
	if keyboard == nil {
		return
	}

	for p := range i.Players.Values() {
		p.Velocity.X, p.Velocity.Y = 0, 0
		speed := p.Player.Speed

		if keyboard.Pressed(KeyW) {
			p.Velocity.Y = -speed
		}
		if keyboard.Pressed(KeyS) {
			p.Velocity.Y = speed
		}
		if keyboard.Pressed(KeyA) {
			p.Velocity.X = -speed
		}
		if keyboard.Pressed(KeyD) {
			p.Velocity.X = speed
		}
	}
}

// MovementSystem integrates velocities, stopping bodies at solids and at the
// world edge.
type MovementSystem struct {
	Movers ecs.Query[struct {
		*Body
		*Velocity
	}]
	Solids ecs.Query[struct {
		*Body
		*Solid
	}]
	Session ecs.Singleton[Session]

	solids []geom.Rect
}

func (m *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	m.solids = m.solids[:0]
	for s := range m.Solids.Values() {
		m.solids = append(m.solids, s.Body.Rect)
	}

	bounds := m.Session.Get().Bounds
	dt := frame.Seconds()

	for mover := range m.Movers.Values() {
		if mover.Velocity.X == 0 && mover.Velocity.Y == 0 {
			continue
		}
		delta := geom.Vec2{X: mover.Velocity.X, Y: mover.Velocity.Y}.Scale(dt)
		mover.Body.Rect, _ = geom.Move(mover.Body.Rect, delta, m.solids, bounds)
	}
}

// ZoneEnterSystem detects zones the player has just entered and runs their
// entry actions.
type ZoneEnterSystem struct {
	Player  playerQuery
	Zones   zoneQuery
	Session ecs.Singleton[Session]
	HUD     ecs.Singleton[HUD]
}

func (z *ZoneEnterSystem) Execute(frame *ecs.UpdateFrame) {
	rect, ok := playerRect(&z.Player)
	if !ok {
		return
	}
	session := z.Session.Get()
	session.zones = collectZones(&z.Zones, session.zones)
	session.record(z.HUD.Get(), session.Tracker.CheckEnters(rect, session.zones))
}

// HUDSystem rebuilds counter texts whenever the inventory revision moves.
type HUDSystem struct {
	Counters ecs.Query[struct {
		*Label
		*Counter
	}]
	Session ecs.Singleton[Session]
	HUD     ecs.Singleton[HUD]
}

func (h *HUDSystem) Execute(frame *ecs.UpdateFrame) {
	hud := h.HUD.Get()
	state := h.Session.Get().State
	if !hud.dirty && hud.revision == state.Revision() {
		return
	}
	hud.revision = state.Revision()
	hud.dirty = false

	carried := state.Carried()
	dropped := state.Dropped()
	processed := state.Processed()

	hud.Player = item.FormatCounter("", carried)
	hud.Dropped = fmt.Sprintf("RAW: %d", dropped.Raw)
	hud.Processed = fmt.Sprintf("PROCESSED: %d", processed.Processed)
	hud.Coins = fmt.Sprintf("Coins: %d", state.Coins())

	for c := range h.Counters.Values() {
		switch c.Counter.Source {
		case CarriedCounter:
			c.Label.Text = hud.Player
		case DroppedCounter:
			c.Label.Text = hud.Dropped
		case ProcessedCounter:
			c.Label.Text = hud.Processed
		}
	}
}
