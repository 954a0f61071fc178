package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/bthesorceror/canvas-experiments/entity"
	"github.com/bthesorceror/canvas-experiments/frame"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Interval time.Duration
	Scene    string
	Copies   int
	Entities int

	// Results
	TotalTime      time.Duration
	Stats          *frame.Stats
	DrawCalls      int64
	Final          []FinalState
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// FinalState is the state of one entity of the first scene copy when the
// run ended.
type FinalState struct {
	Name  string
	State entity.State
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Scene Bench Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Interval:** {{.Interval}}
- **Scene:** {{.Scene}} x {{.Copies}}
- **Entities:** {{.Entities}}

## Results
- **Frames:** {{.Stats.Ticks}}
- **Total Time:** {{.TotalTime}}
- **Surface Calls:** {{.DrawCalls}}{{if .Stats.Ticks}} ({{div .DrawCalls .Stats.Ticks}} per frame){{end}}

| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Stats.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Final State (first copy)
{{- range .Final}}
- {{if .Name}}{{.Name}}{{else}}(unnamed){{end}}: x={{f .State.X}} y={{f .State.Y}} size={{f .State.Width}}x{{f .State.Height}} rotation={{f .State.Rotation}} active={{.State.Active}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
		"f": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"div": func(a int64, b uint64) int64 {
			return a / int64(b)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
