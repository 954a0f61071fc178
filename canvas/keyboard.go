package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"

	"github.com/bthesorceror/canvas-experiments/entity"
)

// Keyboard is an entity.KeySource reading ebiten's keyboard state.
type Keyboard struct {
	codes   *intmap.Map[entity.KeyCode, ebiten.Key]
	pressed func(ebiten.Key) bool
}

var _ entity.KeySource = (*Keyboard)(nil)

// NewKeyboard binds the physical key codes to ebiten keys: arrows for
// the directions, the WASD letters, and space.
func NewKeyboard() *Keyboard {
	return newKeyboard(ebiten.IsKeyPressed)
}

func newKeyboard(pressed func(ebiten.Key) bool) *Keyboard {
	codes := intmap.New[entity.KeyCode, ebiten.Key](16)
	codes.Put(entity.KeyCodeLeft, ebiten.KeyArrowLeft)
	codes.Put(entity.KeyCodeRight, ebiten.KeyArrowRight)
	codes.Put(entity.KeyCodeUp, ebiten.KeyArrowUp)
	codes.Put(entity.KeyCodeDown, ebiten.KeyArrowDown)
	codes.Put(entity.KeyCodeA, ebiten.KeyA)
	codes.Put(entity.KeyCodeD, ebiten.KeyD)
	codes.Put(entity.KeyCodeS, ebiten.KeyS)
	codes.Put(entity.KeyCodeW, ebiten.KeyW)
	codes.Put(entity.KeyCodeSpace, ebiten.KeySpace)

	return &Keyboard{codes: codes, pressed: pressed}
}

// Key returns the ebiten key bound to code.
func (k *Keyboard) Key(code entity.KeyCode) (ebiten.Key, bool) {
	return k.codes.Get(code)
}

func (k *Keyboard) IsPressed(code entity.KeyCode) bool {
	key, ok := k.codes.Get(code)
	if !ok {
		return false
	}
	return k.pressed(key)
}

// Keys wraps the keyboard for use by updaters.
func (k *Keyboard) Keys() entity.Keys {
	return entity.NewKeys(k)
}
