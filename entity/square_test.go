package entity_test

import (
	"image/color"
	"testing"

	"github.com/bthesorceror/canvas-experiments/entity"
	"github.com/bthesorceror/canvas-experiments/entity/entitytest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestSquareDefaults(t *testing.T) {
	e := entity.Square(400, 300, entity.Props{}, entity.Patch{})

	s := e.State()
	assert.Equal(t, colornames.White, s.Color)
	assert.Equal(t, 40.0, s.FallingSpeed)
	assert.Equal(t, 5.0, s.RotationSpeed)
	assert.Equal(t, 40.0, s.Width)
	assert.Equal(t, 40.0, s.Height)
	assert.Equal(t, 0.0, s.Rotation)
	assert.Equal(t, 400.0, s.X)
	assert.Equal(t, 300.0, s.Y)

	props := e.Props()
	assert.Equal(t, []entity.Updater{entity.Rotation{}, entity.Falling{}}, props.Updaters)
	assert.Equal(t, []entity.Renderer{entity.SquareRenderer{}}, props.Renderers)
}

func TestSquareOverrides(t *testing.T) {
	magenta := color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	e := entity.Square(100, 500, entity.Props{
		Updaters: []entity.Updater{entity.UserMovement{}},
	}, entity.Patch{}.
		SetColor(magenta).
		SetFallingSpeed(0).
		SetMovementSpeed(70).
		SetY(10).
		SetExtra("weight", 3))

	s := e.State()
	assert.Equal(t, magenta, s.Color)
	assert.Equal(t, 0.0, s.FallingSpeed)
	assert.Equal(t, 70.0, s.MovementSpeed)
	assert.Equal(t, 100.0, s.X)
	assert.Equal(t, 10.0, s.Y)
	assert.Equal(t, 3.0, s.Extra["weight"])
	assert.Equal(t, []entity.Updater{entity.UserMovement{}}, e.Props().Updaters)
}

func TestSquareDrawsCenteredAtTranslatedOrigin(t *testing.T) {
	e := entity.Square(100, 200, entity.Props{Updaters: []entity.Updater{}}, entity.Patch{})
	e.Update(1)

	rec := entitytest.NewRecorder()
	e.Draw(rec)

	want := []string{
		"save",
		"translate[100 200]",
		"rotate[0]",
		"fillColor(#FFFFFFFF)",
		"beginPath",
		"moveTo[-20 -20]",
		"lineTo[20 -20]",
		"lineTo[20 20]",
		"lineTo[-20 20]",
		"closePath",
		"fill",
		"restore",
	}
	got := make([]string, len(rec.Calls))
	for i, c := range rec.Calls {
		got[i] = c.String()
	}
	assert.Equal(t, want, got)
}

func TestSquareRendererHighlightsActive(t *testing.T) {
	rec := entitytest.NewRecorder()
	entity.SquareRenderer{}.Render(rec, entity.State{Width: 10, Height: 10, Color: colornames.White, Active: true})

	fills := rec.Find(entitytest.OpSetFillColor)
	if assert.Len(t, fills, 1) {
		assert.Equal(t, entity.HighlightColor, fills[0].Color)
	}
}
