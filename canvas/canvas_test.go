package canvas

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"

	"github.com/bthesorceror/canvas-experiments/entity"
)

func apply(c *Canvas, x, y float64) (float64, float64) {
	g := c.Transform()
	return g.Apply(x, y)
}

func TestCanvasTransformOrder(t *testing.T) {
	c := NewCanvas(nil)

	c.Translate(100, 200)
	c.Rotate(math.Pi / 2)

	// the rotation happens in the translated space
	x, y := apply(c, 10, 0)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 210, y, 1e-9)
}

func TestCanvasSaveRestore(t *testing.T) {
	c := NewCanvas(nil)
	c.Translate(5, 5)

	c.Save()
	c.Translate(10, 0)
	c.Rotate(1)
	c.SetFillColor(colornames.Red)
	assert.Equal(t, 1, c.Depth())
	c.Restore()

	x, y := apply(c, 0, 0)
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)
	assert.Equal(t, colornames.Black, c.cur.fill)
	assert.Equal(t, 0, c.Depth())

	c.Restore()
	assert.Equal(t, 0, c.Depth())
}

func TestCanvasResetClearsState(t *testing.T) {
	c := NewCanvas(nil)
	c.Save()
	c.Translate(1, 1)
	c.Reset(nil)

	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, ebiten.GeoM{}, c.Transform())
}

func TestCanvasSquareWithoutTarget(t *testing.T) {
	c := NewCanvas(nil)
	e := entity.Square(10, 10, entity.Props{}, entity.Patch{}.SetRenderBoundingBox(true))

	assert.NotPanics(t, func() { e.Draw(c) })
	assert.Equal(t, 0, c.Depth())
}

func TestKeyboard(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyD: true}
	kb := newKeyboard(func(k ebiten.Key) bool { return held[k] })

	assert.True(t, kb.IsPressed(entity.KeyCodeLeft))
	assert.True(t, kb.IsPressed(entity.KeyCodeD))
	assert.False(t, kb.IsPressed(entity.KeyCodeSpace))
	assert.False(t, kb.IsPressed(entity.KeyCode(999)))

	keys := kb.Keys()
	assert.True(t, keys.IsDown(entity.KeyLeft))
	assert.True(t, keys.IsDown(entity.KeyRight))
	assert.False(t, keys.IsDown(entity.KeyUp))

	key, ok := kb.Key(entity.KeyCodeW)
	assert.True(t, ok)
	assert.Equal(t, ebiten.KeyW, key)
}
