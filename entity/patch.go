package entity

import (
	"image/color"
	"maps"
)

// Patch is a partial State. Only the attributes it was built with are
// written when it is applied; the zero Patch changes nothing.
//
//	p := entity.Patch{}.SetX(10).SetActive(true)
type Patch struct {
	set    Attr
	values State
}

// Empty reports whether applying p would leave any State unchanged.
func (p Patch) Empty() bool {
	return p.set == 0 && len(p.values.Extra) == 0
}

// Has reports whether p overwrites every attribute in attrs.
func (p Patch) Has(attrs Attr) bool {
	return attrs != 0 && p.set&attrs == attrs
}

// Values returns the attribute values carried by p. Attributes p does not
// set hold their zero value.
func (p Patch) Values() State {
	return p.values
}

// Merge returns a patch with the attributes of both p and other, other
// taking precedence where both set the same attribute.
func (p Patch) Merge(other Patch) Patch {
	p.values.Extra = maps.Clone(p.values.Extra)
	p.values.Apply(other)
	p.set |= other.set
	return p
}

func (p Patch) SetX(v float64) Patch {
	p.set |= AttrX
	p.values.X = v
	return p
}

func (p Patch) SetY(v float64) Patch {
	p.set |= AttrY
	p.values.Y = v
	return p
}

func (p Patch) SetWidth(v float64) Patch {
	p.set |= AttrWidth
	p.values.Width = v
	return p
}

func (p Patch) SetHeight(v float64) Patch {
	p.set |= AttrHeight
	p.values.Height = v
	return p
}

func (p Patch) SetRotation(v float64) Patch {
	p.set |= AttrRotation
	p.values.Rotation = v
	return p
}

func (p Patch) SetColor(c color.RGBA) Patch {
	p.set |= AttrColor
	p.values.Color = c
	return p
}

func (p Patch) SetActive(v bool) Patch {
	p.set |= AttrActive
	p.values.Active = v
	return p
}

func (p Patch) SetRenderBoundingBox(v bool) Patch {
	p.set |= AttrRenderBoundingBox
	p.values.RenderBoundingBox = v
	return p
}

func (p Patch) SetFallingSpeed(v float64) Patch {
	p.set |= AttrFallingSpeed
	p.values.FallingSpeed = v
	return p
}

func (p Patch) SetRotationSpeed(v float64) Patch {
	p.set |= AttrRotationSpeed
	p.values.RotationSpeed = v
	return p
}

func (p Patch) SetGrowthRate(v float64) Patch {
	p.set |= AttrGrowthRate
	p.values.GrowthRate = v
	return p
}

func (p Patch) SetMovementSpeed(v float64) Patch {
	p.set |= AttrMovementSpeed
	p.values.MovementSpeed = v
	return p
}

// SetExtra adds an undeclared attribute to the patch.
func (p Patch) SetExtra(name string, v float64) Patch {
	p.values.Extra = maps.Clone(p.values.Extra)
	if p.values.Extra == nil {
		p.values.Extra = make(map[string]float64, 1)
	}
	p.values.Extra[name] = v
	return p
}
