package entity

// KeyCode identifies a physical key.
type KeyCode int

const (
	KeyCodeLeft KeyCode = iota + 1
	KeyCodeRight
	KeyCodeUp
	KeyCodeDown
	KeyCodeA
	KeyCodeD
	KeyCodeS
	KeyCodeW
	KeyCodeSpace
)

// KeySource reports which physical keys are held right now. It is owned
// and kept current by the caller; Keys only queries it.
type KeySource interface {
	IsPressed(code KeyCode) bool
}

// Key is a logical key name.
type Key string

const (
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeySpace Key = "space"
)

var keyCodes = map[Key][]KeyCode{
	KeyLeft:  {KeyCodeLeft, KeyCodeA},
	KeyRight: {KeyCodeRight, KeyCodeD},
	KeyDown:  {KeyCodeDown, KeyCodeS},
	KeyUp:    {KeyCodeUp, KeyCodeW},
	KeySpace: {KeyCodeSpace},
}

// Codes returns the physical codes bound to a logical key. Unknown keys
// have none.
func Codes(key Key) []KeyCode {
	return append([]KeyCode(nil), keyCodes[key]...)
}

// Keys answers level-sensitive "is it held" questions about logical keys.
type Keys struct {
	source KeySource
}

// NewKeys wraps source. A nil source reports every key as released.
func NewKeys(source KeySource) Keys {
	return Keys{source: source}
}

// IsDown reports whether any physical key bound to key is pressed.
func (k Keys) IsDown(key Key) bool {
	if k.source == nil {
		return false
	}
	for _, code := range keyCodes[key] {
		if k.source.IsPressed(code) {
			return true
		}
	}
	return false
}

// AllDown reports whether every given key is down.
func (k Keys) AllDown(keys ...Key) bool {
	for _, key := range keys {
		if !k.IsDown(key) {
			return false
		}
	}
	return true
}
