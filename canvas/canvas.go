// Package canvas adapts ebiten to the entity drawing and input
// interfaces.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/bthesorceror/canvas-experiments/entity"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// StrokeWidth is the line width used by StrokeRect.
const StrokeWidth = 1

type drawState struct {
	geoM   ebiten.GeoM
	fill   color.Color
	stroke color.Color
}

// Canvas is an entity.Surface drawing into an ebiten image. Transforms
// compose the way an HTML canvas context does: each call applies in the
// local space established by the ones before it.
type Canvas struct {
	dst   *ebiten.Image
	cur   drawState
	stack []drawState

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ entity.Surface = (*Canvas)(nil)

// NewCanvas returns a canvas drawing into dst with an identity transform,
// black fill and white stroke.
func NewCanvas(dst *ebiten.Image) *Canvas {
	c := &Canvas{}
	c.Reset(dst)
	return c
}

// Reset retargets the canvas and drops all saved state. Call it at the
// start of every frame with the screen image.
func (c *Canvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	c.cur = drawState{fill: colornames.Black, stroke: colornames.White}
	c.stack = c.stack[:0]
	c.path = vector.Path{}
}

// Transform returns the current transform.
func (c *Canvas) Transform() ebiten.GeoM {
	return c.cur.geoM
}

// Depth returns the number of saved states.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the last saved state. Restoring with nothing saved does
// nothing.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) {
	var local ebiten.GeoM
	local.Translate(x, y)
	c.prepend(local)
}

func (c *Canvas) Rotate(angle float64) {
	var local ebiten.GeoM
	local.Rotate(angle)
	c.prepend(local)
}

func (c *Canvas) prepend(local ebiten.GeoM) {
	local.Concat(c.cur.geoM)
	c.cur.geoM = local
}

func (c *Canvas) SetFillColor(clr color.Color)   { c.cur.fill = clr }
func (c *Canvas) SetStrokeColor(clr color.Color) { c.cur.stroke = clr }

func (c *Canvas) BeginPath() {
	c.path = vector.Path{}
}

// MoveTo and LineTo transform their points when called, so a transform
// change halfway through a path affects only later points.
func (c *Canvas) MoveTo(x, y float64) {
	tx, ty := c.cur.geoM.Apply(x, y)
	c.path.MoveTo(float32(tx), float32(ty))
}

func (c *Canvas) LineTo(x, y float64) {
	tx, ty := c.cur.geoM.Apply(x, y)
	c.path.LineTo(float32(tx), float32(ty))
}

func (c *Canvas) ClosePath() {
	c.path.Close()
}

func (c *Canvas) Fill() {
	if c.dst == nil {
		return
	}

	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	if len(c.indices) == 0 {
		return
	}

	r, g, b, a := colorScale(c.cur.fill)
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}

	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokeRect outlines the rectangle under the current transform.
func (c *Canvas) StrokeRect(x, y, width, height float64) {
	if c.dst == nil {
		return
	}

	corners := [4][2]float64{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	}
	for i := range corners {
		x0, y0 := c.cur.geoM.Apply(corners[i][0], corners[i][1])
		next := corners[(i+1)%len(corners)]
		x1, y1 := c.cur.geoM.Apply(next[0], next[1])
		vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), StrokeWidth, c.cur.stroke, true)
	}
}

// colorScale converts clr to straight-alpha vertex color components.
func colorScale(clr color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
