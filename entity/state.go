package entity

import (
	"image/color"
	"maps"
)

// Attr identifies a declared State attribute. Patches carry a set of Attr
// bits naming which attributes they overwrite.
type Attr uint32

const (
	AttrX Attr = 1 << iota
	AttrY
	AttrWidth
	AttrHeight
	AttrRotation
	AttrColor
	AttrActive
	AttrRenderBoundingBox
	AttrFallingSpeed
	AttrRotationSpeed
	AttrGrowthRate
	AttrMovementSpeed
)

// State is the per-frame mutable attribute set of an entity.
// Attributes that are not declared fields live in Extra and are carried
// through untouched.
type State struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
	Color         color.RGBA

	Active            bool
	RenderBoundingBox bool

	FallingSpeed  float64
	RotationSpeed float64
	GrowthRate    float64
	MovementSpeed float64

	Extra map[string]float64
}

// Clone returns a copy of s that shares no memory with it.
func (s State) Clone() State {
	if s.Extra != nil {
		s.Extra = maps.Clone(s.Extra)
	}
	return s
}

// Apply merges p into s. Attributes named by p overwrite, everything else
// is preserved.
func (s *State) Apply(p Patch) {
	if p.set&AttrX != 0 {
		s.X = p.values.X
	}
	if p.set&AttrY != 0 {
		s.Y = p.values.Y
	}
	if p.set&AttrWidth != 0 {
		s.Width = p.values.Width
	}
	if p.set&AttrHeight != 0 {
		s.Height = p.values.Height
	}
	if p.set&AttrRotation != 0 {
		s.Rotation = p.values.Rotation
	}
	if p.set&AttrColor != 0 {
		s.Color = p.values.Color
	}
	if p.set&AttrActive != 0 {
		s.Active = p.values.Active
	}
	if p.set&AttrRenderBoundingBox != 0 {
		s.RenderBoundingBox = p.values.RenderBoundingBox
	}
	if p.set&AttrFallingSpeed != 0 {
		s.FallingSpeed = p.values.FallingSpeed
	}
	if p.set&AttrRotationSpeed != 0 {
		s.RotationSpeed = p.values.RotationSpeed
	}
	if p.set&AttrGrowthRate != 0 {
		s.GrowthRate = p.values.GrowthRate
	}
	if p.set&AttrMovementSpeed != 0 {
		s.MovementSpeed = p.values.MovementSpeed
	}

	if len(p.values.Extra) > 0 {
		if s.Extra == nil {
			s.Extra = make(map[string]float64, len(p.values.Extra))
		}
		maps.Copy(s.Extra, p.values.Extra)
	}
}

// Rect is an axis aligned rectangle in surface coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// BoxFunc computes the debug bounding box of an entity from its state.
type BoxFunc func(State) Rect

// CenteredBox is the default BoxFunc: a Width x Height box centered on
// the entity position.
func CenteredBox(s State) Rect {
	return Rect{
		X:      s.X - s.Width/2,
		Y:      s.Y - s.Height/2,
		Width:  s.Width,
		Height: s.Height,
	}
}
