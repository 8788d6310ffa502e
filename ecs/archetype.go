package ecs

import (
	"fmt"
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that has exactly one particular set of
// component types. Column i stores components of types[i].
type Archetype struct {
	id          uint32
	types       []reflect.Type
	storages    []iComponentStorage
	generations []uint8
}

// NewArchetype creates an archetype for the given sorted component types.
// It panics if a type was never registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// Spawn appends one entity and returns its id. Columns are appended in lock
// step, so every column returns the same slot.
func (a *Archetype) Spawn(components []any) EntityId {
	slot := -1
	for _, comp := range components {
		idx := a.column(componentType(comp))
		if idx == -1 {
			continue
		}
		slot = a.storages[idx].Append(comp)
	}
	if slot > indexMask {
		panic("archetype " + fmt.Sprint(a.types) + " is full")
	}
	for len(a.generations) <= slot {
		a.generations = append(a.generations, 0)
	}
	return a.entityId(slot)
}

func (a *Archetype) entityId(slot int) EntityId {
	return NewEntityId(a.id, a.generations[slot], uint32(slot))
}

// Alive reports whether id names a live entity of this archetype, as
// opposed to a deleted one whose slot may since have been reused.
func (a *Archetype) Alive(id EntityId) bool {
	slot := int(id.Index())
	if id.ArchetypeId() != a.id || slot >= len(a.generations) || len(a.storages) == 0 {
		return false
	}
	return a.generations[slot] == id.Generation() && a.storages[0].Has(slot)
}

func (a *Archetype) column(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}

// GetComponent returns a pointer to the entity's component of compType, or
// nil if it has none or is not alive.
func (a *Archetype) GetComponent(id EntityId, compType reflect.Type) any {
	idx := a.column(compType)
	if idx == -1 || !a.Alive(id) {
		return nil
	}
	return a.storages[idx].Get(int(id.Index()))
}

// Delete frees the entity's slot in every column and bumps the slot's
// generation. Other slots keep their indices. Stale ids are ignored.
func (a *Archetype) Delete(id EntityId) {
	if !a.Alive(id) {
		return
	}
	slot := int(id.Index())
	for _, storage := range a.storages {
		storage.Delete(slot)
	}
	a.generations[slot]++
}

func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types of this archetype.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Iter yields the ids of all live entities.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}
		for slot := range a.storages[0].Iter() {
			if !yield(a.entityId(slot)) {
				return
			}
		}
	}
}
