package ecs_test

import (
	"testing"

	"github.com/plus3/carryloop/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewIter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 2}, Label{Text: "b"})
	storage.Spawn(Position{X: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	var xs []float64
	for _, item := range view.Iter() {
		item.Position.X += item.Velocity.DX
		xs = append(xs, item.Position.X)
	}
	assert.ElementsMatch(t, []float64{2, 4}, xs)
}

func TestViewIterIsStableAcrossCalls(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Label{Text: "carry"}, Marker{})
	storage.Spawn(Label{Text: "drop"})
	storage.Spawn(Label{Text: "sell"}, Position{})

	view := ecs.NewView[struct{ *Label }](storage)

	collect := func() []string {
		var out []string
		for item := range view.Values() {
			out = append(out, item.Label.Text)
		}
		return out
	}

	first := collect()
	assert.Equal(t, []string{"carry", "drop", "sell"}, first)
	for range 10 {
		assert.Equal(t, first, collect())
	}
}

func TestViewOptionalAndEntityId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	plain := storage.Spawn(Position{X: 1})
	labelled := storage.Spawn(Position{X: 2}, Label{Text: "x"})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
		Label *Label `ecs:"optional"`
	}](storage)

	seen := map[ecs.EntityId]bool{}
	for id, item := range view.Iter() {
		assert.Equal(t, id, item.EntityId)
		seen[id] = item.Label != nil
	}
	assert.Equal(t, map[ecs.EntityId]bool{plain: false, labelled: true}, seen)

	got := view.Get(labelled)
	require.NotNil(t, got)
	assert.Equal(t, labelled, got.EntityId)
	assert.Equal(t, "x", got.Label.Text)
}

func TestViewGetMissing(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	assert.Nil(t, view.Get(id))
	assert.Nil(t, view.Get(ecs.NewEntityId(7, 0, 7)))

	_, ok := view.First()
	assert.False(t, ok)
}

func TestViewGetStaleId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	old := storage.Spawn(Crate{Weight: 1})
	storage.Delete(old)
	fresh := storage.Spawn(Crate{Weight: 2})

	view := ecs.NewView[struct{ *Crate }](storage)
	assert.Nil(t, view.Get(old))
	require.NotNil(t, view.Get(fresh))
	assert.Equal(t, 2, view.Get(fresh).Weight)
}

func TestViewPanicsOnBadType(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"maybe"`
		}](storage)
	})
}

func TestQuerySeesNewArchetypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Crate }](storage)

	assert.Equal(t, 0, query.Count())

	storage.Spawn(Crate{Weight: 1})
	assert.Equal(t, 1, query.Count())

	storage.Spawn(Crate{Weight: 2}, Label{Text: "heavy"})
	assert.Equal(t, 2, query.Count())

	total := 0
	for item := range query.Values() {
		total += item.Crate.Weight
	}
	assert.Equal(t, 3, total)
}

func TestQuerySkipsDeleted(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Crate
	}](storage)

	a := storage.Spawn(Crate{Weight: 1})
	b := storage.Spawn(Crate{Weight: 2})
	storage.Delete(a)

	var ids []ecs.EntityId
	for id := range query.Iter() {
		ids = append(ids, id)
	}
	assert.Equal(t, []ecs.EntityId{b}, ids)
}

func TestQueryBeforeInitPanics(t *testing.T) {
	var query ecs.Query[struct{ *Crate }]
	assert.Panics(t, func() { query.Count() })
}
