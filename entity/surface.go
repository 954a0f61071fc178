package entity

import "image/color"

// Surface is the immediate-mode 2D drawing API entities render through.
// Transform operations compose with the current transform; Save and
// Restore push and pop the transform and the fill/stroke colors.
type Surface interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill()

	StrokeRect(x, y, width, height float64)
}
