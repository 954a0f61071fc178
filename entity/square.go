package entity

import "golang.org/x/image/colornames"

// Square defaults.
const (
	DefaultFallingSpeed  = 40
	DefaultRotationSpeed = 5
	DefaultSquareSize    = 40
)

// DefaultSquareState is the state every square starts from before its
// position and overrides are applied.
func DefaultSquareState() State {
	return State{
		Color:         colornames.White,
		FallingSpeed:  DefaultFallingSpeed,
		RotationSpeed: DefaultRotationSpeed,
		Width:         DefaultSquareSize,
		Height:        DefaultSquareSize,
		Rotation:      0,
	}
}

// Square builds a rotating, falling square at (x, y). Nil Updaters or
// Renderers in props select the defaults; attributes set in overrides
// replace the default state, including the position.
func Square(x, y float64, props Props, overrides Patch) *Entity {
	if props.Updaters == nil {
		props.Updaters = []Updater{Rotation{}, Falling{}}
	}
	if props.Renderers == nil {
		props.Renderers = []Renderer{SquareRenderer{}}
	}

	state := DefaultSquareState()
	state.X, state.Y = x, y
	state.Apply(overrides)

	return New(props, state)
}
