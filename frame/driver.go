package frame

import (
	"context"
	"reflect"
	"time"
)

// Stats describes driver execution so far.
type Stats struct {
	SystemCount int
	Ticks       uint64
	Paused      bool
	Systems     []SystemStats
}

// SystemStats describes the executions of a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Driver runs registered systems in registration order once per frame.
// It is not safe for concurrent use; Run and Once must not overlap.
type Driver struct {
	systems     []System
	systemStats []*systemStatsInternal
	ticks       uint64
	paused      bool
}

func NewDriver() *Driver {
	return &Driver{
		systems: make([]System, 0),
	}
}

// Register appends a system to the frame.
func (d *Driver) Register(system System) {
	d.systems = append(d.systems, system)
	d.systemStats = append(d.systemStats, &systemStatsInternal{
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	if n, ok := system.(namedSystem); ok {
		return n.name
	}

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if name := systemType.Name(); name != "" {
		return name
	}
	return systemType.String()
}

// Pause stops Once from running systems until Resume is called.
func (d *Driver) Pause() { d.paused = true }

func (d *Driver) Resume() { d.paused = false }

func (d *Driver) Paused() bool { return d.paused }

// Ticks returns the number of frames run.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Once runs every system with the given delta time in seconds. It does
// nothing while paused. dt is passed through as is; large steps after a
// stall are not subdivided.
func (d *Driver) Once(dt float64) {
	if d.paused {
		return
	}

	d.ticks++
	frame := &Frame{DeltaTime: dt, Tick: d.ticks}

	for i, system := range d.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := d.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Run executes a frame every interval until the context is cancelled,
// measuring delta time from the wall clock. Ticks that arrive while the
// driver is paused are dropped, and the clock restarts on resume so the
// pause is not reported as one long frame.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if d.paused {
				lastTime = now
				continue
			}
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			d.Once(dt)
		}
	}
}

// Stats returns a snapshot of execution statistics.
func (d *Driver) Stats() *Stats {
	stats := &Stats{
		SystemCount: len(d.systems),
		Ticks:       d.ticks,
		Paused:      d.paused,
		Systems:     make([]SystemStats, len(d.systemStats)),
	}

	for i, internal := range d.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
