package entity

import (
	"slices"
	"sync/atomic"

	"golang.org/x/image/colornames"
)

// BoundingBoxColor strokes the debug overlay drawn when RenderBoundingBox
// is set.
var BoundingBoxColor = colornames.Red

var lastID atomic.Uint64

// ID identifies an entity for lookups and debugging. IDs are assigned in
// construction order and are never reused within a process.
type ID uint64

// Props is the static configuration of an entity. It is copied when the
// entity is built and never changes afterwards.
type Props struct {
	// Updaters run in order; each sees the patches of the ones before it.
	Updaters []Updater
	// Renderers draw in order, each inside its own save/restore.
	Renderers []Renderer
	// BoundingBox computes the debug overlay rectangle. Defaults to
	// CenteredBox.
	BoundingBox BoxFunc
}

func (p Props) clone() Props {
	return Props{
		Updaters:    slices.Clone(p.Updaters),
		Renderers:   slices.Clone(p.Renderers),
		BoundingBox: p.BoundingBox,
	}
}

// Entity pairs immutable Props with mutable State.
type Entity struct {
	id    ID
	props Props
	state State
}

// New builds an entity. Fields left zero in props and initial take their
// zero defaults: no updaters, no renderers, a zero-sized box at the origin.
func New(props Props, initial State) *Entity {
	props = props.clone()
	if props.BoundingBox == nil {
		props.BoundingBox = CenteredBox
	}

	return &Entity{
		id:    ID(lastID.Add(1)),
		props: props,
		state: initial.Clone(),
	}
}

func (e *Entity) ID() ID { return e.id }

// Props returns a copy of the entity's configuration.
func (e *Entity) Props() Props {
	return e.props.clone()
}

// State returns a snapshot of the current state.
func (e *Entity) State() State {
	return e.state.Clone()
}

func (e *Entity) X() float64      { return e.state.X }
func (e *Entity) Y() float64      { return e.state.Y }
func (e *Entity) Width() float64  { return e.state.Width }
func (e *Entity) Height() float64 { return e.state.Height }
func (e *Entity) Active() bool    { return e.state.Active }

// UpdateState merges p into the state outside the updater pipeline and
// returns the resulting snapshot.
func (e *Entity) UpdateState(p Patch) State {
	e.state.Apply(p)
	return e.State()
}

// Update runs every updater in order against the state produced by the
// previous one.
func (e *Entity) Update(dt float64) {
	for _, u := range e.props.Updaters {
		patch := u.Update(dt, e.state.Clone())
		if patch.Empty() {
			continue
		}
		e.state.Apply(patch)
	}
}

// Draw runs every renderer with the surface translated to the entity
// position, restoring the surface after each one even if it panics.
// The bounding box overlay is drawn last, in surface coordinates.
func (e *Entity) Draw(surface Surface) {
	for _, r := range e.props.Renderers {
		e.render(surface, r)
	}

	if e.state.RenderBoundingBox {
		box := e.props.BoundingBox(e.state.Clone())

		surface.Save()
		defer surface.Restore()
		surface.SetStrokeColor(BoundingBoxColor)
		surface.StrokeRect(box.X, box.Y, box.Width, box.Height)
	}
}

func (e *Entity) render(surface Surface, r Renderer) {
	surface.Save()
	defer surface.Restore()

	surface.Translate(e.state.X, e.state.Y)
	r.Render(surface, e.state.Clone())
}
