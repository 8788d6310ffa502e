// Package inventory holds the item collections and coin balance of one game,
// changed only through the transition methods below.
package inventory

import "github.com/plus3/carryloop/internal/item"

// State is the mutable inventory. Carried and Processed are stacks (last in,
// first out); Dropped is a queue.
type State struct {
	carried   []item.Item
	dropped   []item.Item
	processed []item.Item
	coins     int

	// revision increments on every successful transition.
	revision uint64
}

func New() *State {
	return &State{}
}

// Sale describes the result of one Sell.
type Sale struct {
	Sold   item.Counter
	Earned int
}

// Gather appends a freshly made RAW item to the carried stack.
func (s *State) Gather() {
	s.carried = append(s.carried, item.NewRaw())
	s.revision++
}

// Drop moves the top carried item onto the back of the dropped queue.
func (s *State) Drop() bool {
	it, ok := pop(&s.carried)
	if !ok {
		return false
	}
	s.dropped = append(s.dropped, it)
	s.revision++
	return true
}

// ProcessNext takes the oldest dropped item, processes it and pushes the
// result onto the processed stack.
func (s *State) ProcessNext() (item.Item, bool) {
	if len(s.dropped) == 0 {
		return item.Item{}, false
	}
	it := s.dropped[0]
	s.dropped[0] = item.Item{}
	s.dropped = s.dropped[1:]

	out := item.Process(it)
	s.processed = append(s.processed, out)
	s.revision++
	return out, true
}

// PickUp moves the top processed item onto the carried stack.
func (s *State) PickUp() bool {
	it, ok := pop(&s.processed)
	if !ok {
		return false
	}
	s.carried = append(s.carried, it)
	s.revision++
	return true
}

// Sell converts every carried item into coins. Selling nothing is a no-op
// and leaves the revision unchanged.
func (s *State) Sell() Sale {
	if len(s.carried) == 0 {
		return Sale{}
	}
	sold := item.Count(s.carried)
	sale := Sale{Sold: sold, Earned: sold.Value()}

	s.coins += sale.Earned
	clear(s.carried)
	s.carried = s.carried[:0]
	s.revision++
	return sale
}

func pop(stack *[]item.Item) (item.Item, bool) {
	n := len(*stack)
	if n == 0 {
		return item.Item{}, false
	}
	it := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return it, true
}

func (s *State) CarriedLen() int   { return len(s.carried) }
func (s *State) DroppedLen() int   { return len(s.dropped) }
func (s *State) ProcessedLen() int { return len(s.processed) }
func (s *State) Coins() int        { return s.coins }
func (s *State) Revision() uint64  { return s.revision }

// Total is the number of items across all three collections.
func (s *State) Total() int {
	return len(s.carried) + len(s.dropped) + len(s.processed)
}

func (s *State) Carried() item.Counter   { return item.Count(s.carried) }
func (s *State) Dropped() item.Counter   { return item.Count(s.dropped) }
func (s *State) Processed() item.Counter { return item.Count(s.processed) }

// Snapshot is a copy of the state for reports and debug views.
type Snapshot struct {
	Carried   item.Counter
	Dropped   item.Counter
	Processed item.Counter
	Coins     int
	Revision  uint64
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Carried:   s.Carried(),
		Dropped:   s.Dropped(),
		Processed: s.Processed(),
		Coins:     s.coins,
		Revision:  s.revision,
	}
}

// Seed replaces the collections, for tests and scripted starts.
func (s *State) Seed(carried, dropped, processed []item.Item) {
	s.carried = append([]item.Item(nil), carried...)
	s.dropped = append([]item.Item(nil), dropped...)
	s.processed = append([]item.Item(nil), processed...)
	s.revision++
}
