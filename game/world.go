package game

import "fmt"

// Handle is a stable reference to an entity in the World. Handles stay valid
// across removals of other entities and go stale when their own slot is freed.
type Handle struct {
	index      uint32
	generation uint32
}

type slot struct {
	entity     *Entity
	generation uint32
	live       bool
}

// World is the entity registry. Entities live in a slot arena addressed by
// handles, and an ordered index list keeps spawn order for iteration and
// painter's-order drawing. The player is always at position 0.
type World struct {
	slots []slot
	free  []uint32

	// Spawn-ordered handles of live entities
	order []Handle
}

// NewWorld creates an empty registry
func NewWorld(capacity int) *World {
	return &World{
		slots: make([]slot, 0, capacity),
		order: make([]Handle, 0, capacity),
	}
}

// Spawn registers an entity and returns its handle
func (w *World) Spawn(e *Entity) Handle {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[index]
	s.generation++
	s.entity = e
	s.live = true

	h := Handle{index: index, generation: s.generation}
	w.order = append(w.order, h)
	return h
}

// Get resolves a handle
func (w *World) Get(h Handle) (*Entity, bool) {
	if int(h.index) >= len(w.slots) {
		return nil, false
	}
	s := &w.slots[h.index]
	if !s.live || s.generation != h.generation {
		return nil, false
	}
	return s.entity, true
}

// Remove unregisters an entity. The player at position 0 is pinned.
func (w *World) Remove(h Handle) error {
	e, ok := w.Get(h)
	if !ok {
		return fmt.Errorf("remove %v: %w", h, ErrStaleHandle)
	}
	if len(w.order) > 0 && w.order[0] == h && e.Kind == KindPlayer {
		return ErrPlayerPinned
	}

	s := &w.slots[h.index]
	s.entity = nil
	s.live = false
	w.free = append(w.free, h.index)

	for i, oh := range w.order {
		if oh == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.order)
}

// At returns the entity at a position in spawn order
func (w *World) At(i int) *Entity {
	return w.slots[w.order[i].index].entity
}

// HandleAt returns the handle at a position in spawn order
func (w *World) HandleAt(i int) Handle {
	return w.order[i]
}

// Handles returns a snapshot of the spawn order, safe to hold across removals
func (w *World) Handles() []Handle {
	snapshot := make([]Handle, len(w.order))
	copy(snapshot, w.order)
	return snapshot
}

// Player returns the entity at position 0 when it is the player
func (w *World) Player() (*Entity, bool) {
	if len(w.order) == 0 {
		return nil, false
	}
	e := w.At(0)
	if e.Kind != KindPlayer {
		return nil, false
	}
	return e, true
}

// Count returns the number of live entities of a kind
func (w *World) Count(kind Kind) int {
	n := 0
	for _, h := range w.order {
		if w.slots[h.index].entity.Kind == kind {
			n++
		}
	}
	return n
}

// Clear removes every entity, including the player. Slots keep their
// generations so handles issued before the clear stay stale.
func (w *World) Clear() {
	w.free = w.free[:0]
	for i := len(w.slots) - 1; i >= 0; i-- {
		w.slots[i].entity = nil
		w.slots[i].live = false
		w.free = append(w.free, uint32(i))
	}
	w.order = w.order[:0]
}

// Changes collects removals requested during a scan. They are applied once
// the scan finishes so iteration never sees a shifting index list.
type Changes struct {
	removals []Handle
}

// Remove marks an entity for removal; repeated marks are ignored
func (c *Changes) Remove(h Handle) {
	if c.Removed(h) {
		return
	}
	c.removals = append(c.removals, h)
}

// Removed reports whether an entity is pending removal
func (c *Changes) Removed(h Handle) bool {
	for _, r := range c.removals {
		if r == h {
			return true
		}
	}
	return false
}

// Reset drops every pending change
func (c *Changes) Reset() {
	c.removals = c.removals[:0]
}

// Apply commits pending removals and returns how many entities were removed
func (w *World) Apply(c *Changes) (int, error) {
	removed := 0
	for _, h := range c.removals {
		if err := w.Remove(h); err != nil {
			c.Reset()
			return removed, err
		}
		removed++
	}
	c.Reset()
	return removed, nil
}
