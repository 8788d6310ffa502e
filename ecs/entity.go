package ecs

const (
	indexBits = 24
	indexMask = 1<<indexBits - 1
)

// EntityId packs the archetype ID (upper 32 bits), a slot generation (next
// 8 bits) and the slot index (lower 24 bits). Deleting an entity bumps its
// slot's generation, so the old id stops resolving once the slot is reused.
type EntityId uint64

// NewEntityId creates an EntityId. Index bits above the lower 24 are dropped.
func NewEntityId(archetypeId uint32, generation uint8, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(generation)<<indexBits | uint64(index&indexMask))
}

func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

func (e EntityId) Generation() uint8 {
	return uint8(e >> indexBits)
}

func (e EntityId) Index() uint32 {
	return uint32(e & indexMask)
}
