package entity

// Updater computes a state patch from the time step and the entity's
// current state. It must not retain or mutate the state it is given.
// Returning an empty Patch leaves the state as it is.
type Updater interface {
	Name() string
	Update(dt float64, s State) Patch
}

// Growth bounds for the Growing updater.
const (
	MinSize = 20
	MaxSize = 200
)

// Rotation spins the entity at RotationSpeed radians per second.
type Rotation struct{}

func (Rotation) Name() string { return "rotation" }

func (Rotation) Update(dt float64, s State) Patch {
	return Patch{}.SetRotation(Spin(dt, s.Rotation, s.RotationSpeed))
}

// Falling moves the entity down at FallingSpeed units per second.
// A negative speed rises.
type Falling struct{}

func (Falling) Name() string { return "falling" }

func (Falling) Update(dt float64, s State) Patch {
	return Patch{}.SetY(s.Y + s.FallingSpeed*dt)
}

// Growing changes Width and Height by GrowthRate per second, reversing
// direction once either dimension reaches MaxSize while growing or
// MinSize while shrinking. A dimension may pass a bound by at most one
// step before the reversal.
type Growing struct{}

func (Growing) Name() string { return "growing" }

func (Growing) Update(dt float64, s State) Patch {
	rate := s.GrowthRate
	switch {
	case rate > 0 && (s.Width >= MaxSize || s.Height >= MaxSize):
		rate = -rate
	case rate < 0 && (s.Width <= MinSize || s.Height <= MinSize):
		rate = -rate
	}

	return Patch{}.
		SetWidth(s.Width + rate*dt).
		SetHeight(s.Height + rate*dt).
		SetGrowthRate(rate)
}

// UserMovement moves an active entity with the directional keys at
// MovementSpeed units per second per axis. Opposite keys cancel and
// diagonals are not normalized.
type UserMovement struct {
	Keys Keys
}

func (UserMovement) Name() string { return "user_movement" }

func (u UserMovement) Update(dt float64, s State) Patch {
	if !s.Active {
		return Patch{}
	}

	step := s.MovementSpeed * dt
	x, y := s.X, s.Y

	if u.Keys.IsDown(KeyLeft) {
		x -= step
	}
	if u.Keys.IsDown(KeyRight) {
		x += step
	}
	if u.Keys.IsDown(KeyUp) {
		y -= step
	}
	if u.Keys.IsDown(KeyDown) {
		y += step
	}

	return Patch{}.SetX(x).SetY(y)
}

// PlayerRotation spins an active entity while space is held together
// with left (positive) or right (negative).
type PlayerRotation struct {
	Keys Keys
}

func (PlayerRotation) Name() string { return "player_rotation" }

func (p PlayerRotation) Update(dt float64, s State) Patch {
	if !s.Active {
		return Patch{}
	}

	rotation := s.Rotation
	if p.Keys.AllDown(KeySpace, KeyRight) {
		rotation = Spin(dt, rotation, -s.RotationSpeed)
	}
	if p.Keys.AllDown(KeySpace, KeyLeft) {
		rotation = Spin(dt, rotation, s.RotationSpeed)
	}

	return Patch{}.SetRotation(rotation)
}
