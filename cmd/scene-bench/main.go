package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/bthesorceror/canvas-experiments/entity"
	"github.com/bthesorceror/canvas-experiments/entity/entitytest"
	"github.com/bthesorceror/canvas-experiments/frame"
	"github.com/bthesorceror/canvas-experiments/scene"
)

// Held keys change every inputPeriod ticks and groups cycle every
// cyclePeriod ticks so the input-driven updaters do real work.
const (
	inputPeriod = 30
	cyclePeriod = 90
)

var inputPattern = [][]entity.KeyCode{
	{entity.KeyCodeRight},
	{entity.KeyCodeDown, entity.KeyCodeA},
	{entity.KeyCodeSpace, entity.KeyCodeLeft},
	{entity.KeyCodeW, entity.KeyCodeSpace, entity.KeyCodeD},
	nil,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the run should last.")
	interval := flag.Duration("interval", time.Second/60, "Time between frames.")
	sceneName := flag.String("scene", scene.DefaultName, "Scene file on disk, or the name of an embedded scene.")
	copies := flag.Int("copies", 200, "Number of copies of the scene to run side by side.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting scene bench...")

	def, err := scene.LoadDefinition(*sceneName)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	keyboard := entitytest.NewKeyboard()
	surface := entitytest.NewRecorder()
	driver := frame.NewDriver()

	driver.Register(frame.Named("input", frame.SystemFunc(func(f *frame.Frame) {
		if f.Tick%inputPeriod != 1 {
			return
		}
		keyboard.Reset()
		keyboard.Press(inputPattern[(f.Tick/inputPeriod)%uint64(len(inputPattern))]...)
	})))

	scenes := make([]*scene.Scene, 0, *copies)
	log.Printf("Building %d copies of scene %q...\n", *copies, def.Name)
	for i := 0; i < *copies; i++ {
		s, err := scene.Build(def, keyboard.Keys())
		if err != nil {
			log.Fatalf("Failed to build scene: %v", err)
		}
		scenes = append(scenes, s)
	}

	driver.Register(frame.Named("cycle", frame.SystemFunc(func(f *frame.Frame) {
		if f.Tick%cyclePeriod != 0 {
			return
		}
		for _, s := range scenes {
			for _, group := range s.Groups() {
				if _, err := s.Cycle(group); err != nil {
					log.Printf("cycle %s: %v", group, err)
				}
			}
		}
	})))

	driver.Register(frame.Named("update", frame.SystemFunc(func(f *frame.Frame) {
		for _, s := range scenes {
			s.Execute(f)
		}
	})))

	var drawCalls int64
	driver.Register(frame.Named("draw", frame.SystemFunc(func(f *frame.Frame) {
		surface.Reset()
		for _, s := range scenes {
			s.Draw(surface)
		}
		drawCalls += int64(len(surface.Calls))
	})))

	report := &Report{
		Duration:       *duration,
		Interval:       *interval,
		Scene:          def.Name,
		Copies:         *copies,
		Entities:       *copies * len(def.Entities),
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	driver.Run(ctx, *interval)

	report.TotalTime = time.Since(startTime)
	report.Stats = driver.Stats()
	report.DrawCalls = drawCalls
	runtime.ReadMemStats(&report.MemStatsEnd)

	if len(scenes) > 0 {
		for _, e := range scenes[0].Entities() {
			report.Final = append(report.Final, FinalState{
				Name:  scenes[0].NameOf(e.ID()),
				State: e.State(),
			})
		}
	}

	log.Println("Run finished.")

	fmt.Println("\n\n--- Scene Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
