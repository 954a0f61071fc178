package entity_test

import (
	"testing"

	"github.com/bthesorceror/canvas-experiments/entity"
	"github.com/bthesorceror/canvas-experiments/entity/entitytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setRotation struct{ value float64 }

func (setRotation) Name() string { return "set_rotation" }

func (u setRotation) Update(dt float64, s entity.State) entity.Patch {
	return entity.Patch{}.SetRotation(u.value)
}

type doubleRotation struct{}

func (doubleRotation) Name() string { return "double_rotation" }

func (doubleRotation) Update(dt float64, s entity.State) entity.Patch {
	return entity.Patch{}.SetRotation(s.Rotation * 2)
}

type decline struct{ calls *int }

func (decline) Name() string { return "decline" }

func (d decline) Update(dt float64, s entity.State) entity.Patch {
	*d.calls++
	return entity.Patch{}
}

type tagExtra struct{}

func (tagExtra) Name() string { return "tag_extra" }

func (tagExtra) Update(dt float64, s entity.State) entity.Patch {
	s.Extra["leak"] = 1
	return entity.Patch{}.SetExtra("ticks", s.Extra["ticks"]+1)
}

// named records which renderer ran and leaves the surface rotated and
// recolored without restoring it.
type named struct {
	name string
	log  *[]string
}

func (n named) Name() string { return n.name }

func (n named) Render(surface entity.Surface, s entity.State) {
	*n.log = append(*n.log, n.name)
	surface.Rotate(1)
	surface.Translate(5, 5)
}

type panicking struct{}

func (panicking) Name() string { return "panicking" }

func (panicking) Render(surface entity.Surface, s entity.State) {
	panic("boom")
}

func TestEntityDefaults(t *testing.T) {
	e := entity.New(entity.Props{}, entity.State{})

	s := e.State()
	assert.Equal(t, 0.0, s.X)
	assert.Equal(t, 0.0, s.Y)
	assert.Equal(t, 0.0, s.Width)
	assert.Equal(t, 0.0, s.Height)
	assert.False(t, s.Active)
	assert.Empty(t, e.Props().Updaters)
	assert.Empty(t, e.Props().Renderers)
	assert.NotNil(t, e.Props().BoundingBox)
}

func TestEntityIDs(t *testing.T) {
	a := entity.New(entity.Props{}, entity.State{})
	b := entity.New(entity.Props{}, entity.State{})
	assert.Less(t, a.ID(), b.ID())
}

func TestEntityUpdate(t *testing.T) {
	t.Run("updaters see earlier patches", func(t *testing.T) {
		e := entity.New(entity.Props{
			Updaters: []entity.Updater{setRotation{value: 1}, doubleRotation{}},
		}, entity.State{})

		e.Update(0.016)
		assert.Equal(t, 2.0, e.State().Rotation)
	})

	t.Run("declined patch leaves state alone", func(t *testing.T) {
		calls := 0
		e := entity.New(entity.Props{
			Updaters: []entity.Updater{decline{calls: &calls}},
		}, entity.State{X: 3, Y: 4})

		e.Update(1)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 3.0, e.X())
		assert.Equal(t, 4.0, e.Y())
	})

	t.Run("patch keys overwrite and the rest are preserved", func(t *testing.T) {
		e := entity.New(entity.Props{
			Updaters: []entity.Updater{entity.Falling{}},
		}, entity.State{X: 10, Y: 10, FallingSpeed: 5, Width: 40})

		e.Update(2)
		s := e.State()
		assert.Equal(t, 20.0, s.Y)
		assert.Equal(t, 10.0, s.X)
		assert.Equal(t, 40.0, s.Width)
	})

	t.Run("updaters get a snapshot, not the state", func(t *testing.T) {
		e := entity.New(entity.Props{
			Updaters: []entity.Updater{tagExtra{}},
		}, entity.State{Extra: map[string]float64{"ticks": 0}})

		e.Update(1)
		e.Update(1)

		s := e.State()
		assert.Equal(t, 2.0, s.Extra["ticks"])
		assert.NotContains(t, s.Extra, "leak")
	})

	t.Run("same input yields the same state", func(t *testing.T) {
		build := func() *entity.Entity {
			return entity.Square(10, 10, entity.Props{
				Updaters: []entity.Updater{entity.Growing{}, entity.Rotation{}, entity.Falling{}},
			}, entity.Patch{}.SetGrowthRate(20))
		}
		a, b := build(), build()
		for i := 0; i < 50; i++ {
			a.Update(0.1)
			b.Update(0.1)
		}
		assert.Equal(t, a.State(), b.State())
	})
}

func TestEntityUpdateState(t *testing.T) {
	e := entity.New(entity.Props{}, entity.State{X: 1, Y: 2})

	s := e.UpdateState(entity.Patch{}.SetActive(true).SetExtra("score", 7))
	assert.True(t, s.Active)
	assert.Equal(t, 1.0, s.X)
	assert.Equal(t, 7.0, s.Extra["score"])
	assert.True(t, e.Active())
}

func TestEntityPropsAreCopied(t *testing.T) {
	updaters := []entity.Updater{entity.Falling{}}
	e := entity.New(entity.Props{Updaters: updaters}, entity.State{FallingSpeed: 1})

	updaters[0] = entity.Rotation{}
	got := e.Props()
	got.Updaters[0] = entity.Growing{}

	assert.Equal(t, entity.Falling{}, e.Props().Updaters[0])
}

func TestEntityDraw(t *testing.T) {
	t.Run("each renderer once, in order, bracketed", func(t *testing.T) {
		var log []string
		e := entity.New(entity.Props{
			Renderers: []entity.Renderer{
				named{name: "first", log: &log},
				named{name: "second", log: &log},
			},
		}, entity.State{X: 7, Y: 9})

		rec := entitytest.NewRecorder()
		e.Draw(rec)

		assert.Equal(t, []string{"first", "second"}, log)
		assert.Equal(t, []entitytest.Op{
			entitytest.OpSave, entitytest.OpTranslate, entitytest.OpRotate, entitytest.OpTranslate, entitytest.OpRestore,
			entitytest.OpSave, entitytest.OpTranslate, entitytest.OpRotate, entitytest.OpTranslate, entitytest.OpRestore,
		}, rec.Ops())
		assert.Equal(t, []float64{7, 9}, rec.Calls[1].Args)
		assert.Equal(t, []float64{7, 9}, rec.Calls[6].Args)
		assert.Equal(t, 0, rec.Depth())
		assert.Equal(t, 1, rec.MaxDepth())
	})

	t.Run("restores when a renderer panics", func(t *testing.T) {
		e := entity.New(entity.Props{
			Renderers: []entity.Renderer{panicking{}},
		}, entity.State{})

		rec := entitytest.NewRecorder()
		assert.PanicsWithValue(t, "boom", func() { e.Draw(rec) })
		assert.Equal(t, 0, rec.Depth())
		assert.Equal(t, entitytest.OpRestore, rec.Calls[len(rec.Calls)-1].Op)
	})

	t.Run("draw does not touch state", func(t *testing.T) {
		e := entity.Square(1, 2, entity.Props{}, entity.Patch{})
		before := e.State()
		e.Draw(entitytest.NewRecorder())
		assert.Equal(t, before, e.State())
	})
}

func TestEntityBoundingBox(t *testing.T) {
	t.Run("default centered box after renderers", func(t *testing.T) {
		e := entity.Square(100, 200, entity.Props{}, entity.Patch{}.SetRenderBoundingBox(true))

		rec := entitytest.NewRecorder()
		e.Draw(rec)

		rects := rec.Find(entitytest.OpStrokeRect)
		require.Len(t, rects, 1)
		assert.Equal(t, []float64{80, 180, 40, 40}, rects[0].Args)

		ops := rec.Ops()
		assert.Equal(t, []entitytest.Op{
			entitytest.OpSave, entitytest.OpSetStrokeColor, entitytest.OpStrokeRect, entitytest.OpRestore,
		}, ops[len(ops)-4:])
		assert.Equal(t, 0, rec.Depth())
	})

	t.Run("custom box function", func(t *testing.T) {
		e := entity.New(entity.Props{
			BoundingBox: func(s entity.State) entity.Rect {
				return entity.Rect{X: s.X, Y: s.Y, Width: 1, Height: 2}
			},
		}, entity.State{X: 5, Y: 6, RenderBoundingBox: true})

		rec := entitytest.NewRecorder()
		e.Draw(rec)
		assert.Equal(t, []float64{5, 6, 1, 2}, rec.Find(entitytest.OpStrokeRect)[0].Args)
	})

	t.Run("off by default", func(t *testing.T) {
		rec := entitytest.NewRecorder()
		entity.Square(0, 0, entity.Props{}, entity.Patch{}).Draw(rec)
		assert.Zero(t, rec.Count(entitytest.OpStrokeRect))
	})
}
