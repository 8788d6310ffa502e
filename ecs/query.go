package ecs

import "iter"

// Query is a View that remembers which archetypes match. The cache is
// rebuilt only when the storage gains archetypes, which for a settled world
// is never.
type Query[T any] struct {
	view               *View[T]
	storage            *Storage
	cachedArchetypes   []*Archetype
	lastArchetypeCount int
}

func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage. The Scheduler calls it on Register.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
}

func (q *Query[T]) refresh() {
	if q.storage == nil {
		panic("Query used before Init")
	}
	if len(q.storage.order) == q.lastArchetypeCount {
		return
	}

	q.cachedArchetypes = q.cachedArchetypes[:0]
	for archetype := range q.storage.Archetypes() {
		if q.view.matchesArchetype(archetype) {
			q.cachedArchetypes = append(q.cachedArchetypes, archetype)
		}
	}
	q.lastArchetypeCount = len(q.storage.order)
}

// Iter yields every matching entity and its component struct.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.refresh()
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range q.cachedArchetypes {
			if !q.view.iterArchetype(archetype, yield) {
				return
			}
		}
	}
}

// Values yields only the component structs.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range q.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for range q.Iter() {
		n++
	}
	return n
}
