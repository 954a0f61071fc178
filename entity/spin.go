package entity

import "math"

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// Spin advances rotation by speed*dt and wraps the result into [0, 2π).
// Negative results are floor-wrapped, so spinning backwards past zero
// lands just under 2π.
func Spin(dt, rotation, speed float64) float64 {
	return NormalizeAngle(rotation + speed*dt)
}

// NormalizeAngle wraps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	// a tiny negative remainder plus 2π can round up to exactly 2π
	if a >= FullTurn {
		a = 0
	}
	return a
}
