package scene

import (
	"fmt"

	"github.com/plus3/carryloop/internal/clock"
	"github.com/plus3/carryloop/internal/geom"
	"github.com/plus3/carryloop/internal/inventory"
	"github.com/plus3/carryloop/internal/logging"
	"github.com/plus3/carryloop/internal/pipeline"
	"github.com/plus3/carryloop/internal/zone"
)

// Session is the singleton holding the game state the systems share.
type Session struct {
	State     *inventory.State
	Clock     *clock.Clock
	Processor *pipeline.Processor
	Tracker   *zone.Tracker
	Keyboard  Keyboard
	Logger    *logging.Logger
	Bounds    geom.Rect

	// Entries counts zone entries per kind.
	Entries map[zone.Kind]int

	zones []zone.Zone
}

// HUD is the singleton of presentational strings, rebuilt by HUDSystem.
type HUD struct {
	Status    string
	Player    string
	Dropped   string
	Processed string
	Coins     string

	revision uint64
	dirty    bool
}

func (s *Session) record(hud *HUD, transitions []zone.Transition) {
	for _, tr := range transitions {
		hud.Status = tr.Status()
		if tr.Entered {
			s.Entries[tr.Kind]++
			s.Logger.Event("enter", tr.Kind.Area())
		} else {
			s.Logger.Event("exit", tr.Kind.Area())
		}
		if tr.Sale.Earned > 0 {
			s.Logger.Event("sell", fmt.Sprintf("raw=%d processed=%d earned=%d coins=%d",
				tr.Sale.Sold.Raw, tr.Sale.Sold.Processed, tr.Sale.Earned, s.State.Coins()))
		}
	}
}
