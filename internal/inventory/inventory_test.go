package inventory

import (
	"testing"

	"github.com/plus3/carryloop/internal/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	raw       = item.Item{Type: item.Raw}
	processed = item.Item{Type: item.Processed}
)

func TestGatherAddsOneRaw(t *testing.T) {
	s := New()
	for i := 1; i <= 5; i++ {
		s.Gather()
		assert.Equal(t, i, s.CarriedLen())
	}
	assert.Equal(t, item.Counter{Raw: 5}, s.Carried())
}

func TestRoundTripPreservesTotal(t *testing.T) {
	s := New()
	s.Gather()
	s.Gather()
	require.Equal(t, 2, s.Total())

	require.True(t, s.Drop())
	assert.Equal(t, 2, s.Total())
	assert.Equal(t, 1, s.DroppedLen())

	out, ok := s.ProcessNext()
	require.True(t, ok)
	assert.Equal(t, item.Processed, out.Type)
	assert.Equal(t, 2, s.Total())

	require.True(t, s.PickUp())
	assert.Equal(t, 2, s.Total())
	assert.Equal(t, item.Counter{Raw: 1, Processed: 1}, s.Carried())
}

func TestDroppedIsFIFO(t *testing.T) {
	s := New()
	s.Seed([]item.Item{processed, raw}, nil, nil)

	require.True(t, s.Drop()) // raw, last carried
	require.True(t, s.Drop()) // processed

	first, ok := s.ProcessNext()
	require.True(t, ok)
	assert.Equal(t, item.Processed, first.Type)
	assert.Equal(t, item.Counter{Processed: 1}, s.Dropped())
}

func TestEmptyTransitionsReportFalse(t *testing.T) {
	s := New()
	rev := s.Revision()

	assert.False(t, s.Drop())
	assert.False(t, s.PickUp())
	_, ok := s.ProcessNext()
	assert.False(t, ok)
	assert.Equal(t, Sale{}, s.Sell())
	assert.Equal(t, rev, s.Revision())
	assert.Zero(t, s.Coins())
}

func TestSellMixedInventory(t *testing.T) {
	s := New()
	s.Seed([]item.Item{raw, raw, processed}, nil, nil)

	sale := s.Sell()

	assert.Equal(t, 25, sale.Earned)
	assert.Equal(t, item.Counter{Raw: 2, Processed: 1}, sale.Sold)
	assert.Equal(t, 25, s.Coins())
	assert.Zero(t, s.CarriedLen())

	s.Gather()
	s.Sell()
	assert.Equal(t, 30, s.Coins(), "coins only increase")
}

func TestSnapshot(t *testing.T) {
	s := New()
	s.Seed([]item.Item{raw}, []item.Item{raw, raw}, []item.Item{processed})

	snap := s.Snapshot()
	assert.Equal(t, item.Counter{Raw: 1}, snap.Carried)
	assert.Equal(t, item.Counter{Raw: 2}, snap.Dropped)
	assert.Equal(t, item.Counter{Processed: 1}, snap.Processed)
	assert.Equal(t, s.Revision(), snap.Revision)
}
