package entity

import "errors"

// ErrNoEntities is returned when an Alternator is built over nothing.
var ErrNoEntities = errors.New("entity: alternator needs at least one entity")

// Alternator keeps exactly one entity of a fixed group active, moving the
// flag to the next entity on every Next. It does not own the entities.
type Alternator struct {
	entities []*Entity
	index    int
}

// NewAlternator activates the first entity and deactivates the rest.
func NewAlternator(entities ...*Entity) (*Alternator, error) {
	if len(entities) == 0 {
		return nil, ErrNoEntities
	}

	a := &Alternator{entities: append([]*Entity(nil), entities...)}
	for i, e := range a.entities {
		e.UpdateState(Patch{}.SetActive(i == 0))
	}
	return a, nil
}

// Next deactivates the current entity and activates the one after it,
// wrapping around at the end of the group.
func (a *Alternator) Next() *Entity {
	a.entities[a.index].UpdateState(Patch{}.SetActive(false))
	a.index = (a.index + 1) % len(a.entities)
	a.entities[a.index].UpdateState(Patch{}.SetActive(true))
	return a.entities[a.index]
}

// Current returns the active entity.
func (a *Alternator) Current() *Entity {
	return a.entities[a.index]
}

// Len returns the size of the group.
func (a *Alternator) Len() int {
	return len(a.entities)
}

// Trigger returns Next as a plain callback for input bindings.
func (a *Alternator) Trigger() func() {
	return func() { a.Next() }
}
