// Package frame drives per-tick work: an ordered list of systems run once
// per frame with the elapsed time, with timing statistics per system.
package frame

// Frame is passed to every system during one tick.
type Frame struct {
	// DeltaTime is the time since the previous tick in seconds.
	DeltaTime float64
	// Tick counts the frames run so far, starting at 1.
	Tick uint64
}

// System is work that runs once per frame.
type System interface {
	Execute(f *Frame)
}

// SystemFunc adapts a plain function to a System.
type SystemFunc func(f *Frame)

func (fn SystemFunc) Execute(f *Frame) { fn(f) }

// Named gives a system a display name in driver statistics.
func Named(name string, s System) System {
	return namedSystem{name: name, System: s}
}

type namedSystem struct {
	name string
	System
}
