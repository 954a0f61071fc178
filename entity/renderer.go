package entity

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// HighlightColor replaces an entity's own color while it is active.
var HighlightColor = colornames.Lime

// Renderer issues drawing calls for an entity. The surface is already
// translated to the entity position; renderers only read the state.
type Renderer interface {
	Name() string
	Render(surface Surface, s State)
}

// SquareRenderer fills a Width x Height rectangle centered on the origin
// and rotated by Rotation.
type SquareRenderer struct{}

func (SquareRenderer) Name() string { return "square" }

func (SquareRenderer) Render(surface Surface, s State) {
	var fill color.Color = s.Color
	if s.Active {
		fill = HighlightColor
	}

	hw, hh := s.Width/2, s.Height/2

	surface.Rotate(s.Rotation)
	surface.SetFillColor(fill)
	surface.BeginPath()
	surface.MoveTo(-hw, -hh)
	surface.LineTo(hw, -hh)
	surface.LineTo(hw, hh)
	surface.LineTo(-hw, hh)
	surface.ClosePath()
	surface.Fill()
}
