package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/carryloop/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		generation  uint8
		index       uint32
	}{
		{0, 0, 0},
		{0xFFFFFFFF, 0xFF, 0xFFFFFF},
		{1, 0, 0},
		{0, 1, 1},
		{0x12345678, 0x9A, 0xBCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,gen=%d,index=%d", tt.archetypeId, tt.generation, tt.index), func(t *testing.T) {
			id := ecs.NewEntityId(tt.archetypeId, tt.generation, tt.index)
			assert.Equal(t, tt.archetypeId, id.ArchetypeId())
			assert.Equal(t, tt.generation, id.Generation())
			assert.Equal(t, tt.index, id.Index())
		})
	}
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3, Y: 4}, Label{Text: "player"})

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 4.0, pos.Y)

	label := ecs.ReadComponent[Label](storage, id)
	require.NotNil(t, label)
	assert.Equal(t, "player", label.Text)

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Label]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
}

func TestSpawnOrderDoesNotChangeArchetype(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.Index(), b.Index())
	assert.Same(t, storage.GetArchetype(Position{}, Velocity{}), storage.GetArchetype(Velocity{}, Position{}))
}

func TestComponentPointersAreStable(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Crate{Weight: 1})
	ptr := ecs.ReadComponent[Crate](storage, first)

	for i := range 200 {
		storage.Spawn(Crate{Weight: i + 2})
	}

	ptr.Weight = 99
	assert.Equal(t, 99, ecs.ReadComponent[Crate](storage, first).Weight)
}

func TestDeleteReusesSlot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Crate{Weight: 1})
	storage.Spawn(Crate{Weight: 2})

	storage.Delete(a)
	assert.Nil(t, ecs.ReadComponent[Crate](storage, a))

	c := storage.Spawn(Crate{Weight: 3})
	assert.Equal(t, a.Index(), c.Index())
	assert.NotEqual(t, a, c)
	assert.Equal(t, 3, ecs.ReadComponent[Crate](storage, c).Weight)
	assert.Nil(t, ecs.ReadComponent[Crate](storage, a))
	assert.False(t, storage.HasComponent(a, reflect.TypeFor[Crate]()))

	storage.Delete(a)
	assert.NotNil(t, ecs.ReadComponent[Crate](storage, c), "stale delete must not touch the new entity")

	storage.Delete(ecs.NewEntityId(12345, 0, 0))
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Clock{}) }, "unregistered component")
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var clock *Clock
	assert.False(t, storage.ReadSingleton(&clock))
	assert.Nil(t, clock)

	storage.AddSingleton(Clock{Ticks: 3})
	require.True(t, storage.ReadSingleton(&clock))
	assert.Equal(t, 3, clock.Ticks)

	clock.Ticks++
	var again *Clock
	require.True(t, storage.ReadSingleton(&again))
	assert.Same(t, clock, again)
	assert.Equal(t, 4, again.Ticks)

	storage.AddSingleton(Clock{Ticks: 10})
	assert.Equal(t, 10, clock.Ticks, "replacing keeps the same address")

	assert.Panics(t, func() { storage.AddSingleton(&Clock{}) })
	assert.Panics(t, func() { storage.ReadSingleton(clock) })
}

func TestLateRegistration(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	assert.False(t, ecs.Registered[Label](storage.Registry()))
	ecs.RegisterComponent[Label](storage.Registry())
	assert.True(t, ecs.Registered[Label](storage.Registry()))

	id := storage.Spawn(Label{Text: "late"})
	assert.Equal(t, "late", ecs.ReadComponent[Label](storage, id).Text)
}
