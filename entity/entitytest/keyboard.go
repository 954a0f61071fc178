package entitytest

import (
	"github.com/bthesorceror/canvas-experiments/entity"
	"github.com/kamstrup/intmap"
)

// Keyboard is an entity.KeySource whose held keys are set by the test.
type Keyboard struct {
	held *intmap.Set[entity.KeyCode]
}

var _ entity.KeySource = (*Keyboard)(nil)

// NewKeyboard returns a keyboard holding codes.
func NewKeyboard(codes ...entity.KeyCode) *Keyboard {
	k := &Keyboard{held: intmap.NewSet[entity.KeyCode](16)}
	k.Press(codes...)
	return k
}

func (k *Keyboard) IsPressed(code entity.KeyCode) bool {
	return k.held.Has(code)
}

func (k *Keyboard) Press(codes ...entity.KeyCode) {
	for _, c := range codes {
		k.held.Add(c)
	}
}

func (k *Keyboard) Release(codes ...entity.KeyCode) {
	for _, c := range codes {
		k.held.Del(c)
	}
}

// Reset releases every key.
func (k *Keyboard) Reset() {
	k.held.Clear()
}

// Keys wraps the keyboard for use by updaters.
func (k *Keyboard) Keys() entity.Keys {
	return entity.NewKeys(k)
}
