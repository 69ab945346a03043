package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Config   game.Config
	Step     time.Duration
	BotRate  float64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          int
	BestScore      int
	Events         Events
	Scheduler      *engine.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Events tallies session notifications across every game.
type Events struct {
	Spawned  [piece.J + 1]int
	Locked   int
	Lines    int
	Clears   [piece.MaxSize + 1]int
	GameOver int
}

func (e *Events) Record(ev game.Event) {
	switch ev.Type {
	case game.EventSpawned:
		e.Spawned[ev.Kind]++
	case game.EventLocked:
		e.Locked++
		if ev.Rows >= 0 && ev.Rows < len(e.Clears) {
			e.Clears[ev.Rows]++
		}
	case game.EventCleared:
		e.Lines += ev.Rows
	case game.EventGameOver:
		e.GameOver++
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Config.Width}}x{{.Config.Height}}
- **Drop Interval:** {{.Config.DropInterval}}
- **Generator:** {{.Config.Generator}}
- **Simulated Step:** {{.Step}}
- **Bot Input Rate:** {{printf "%.2f" .BotRate}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{- with .Scheduler}}
- **Commands Applied:** {{.Applied}}
{{- range .Systems}}
  - **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}
{{- end}}

## Gameplay
- **Games Finished:** {{.Games}}
- **Best Score:** {{.BestScore}}
- **Pieces Locked:** {{.Events.Locked}}
- **Lines Cleared:** {{.Events.Lines}}
{{- range $rows, $count := .Events.Clears}}
  - {{$rows}} rows: {{$count}}
{{- end}}
- **Spawned:**
{{- range $kind, $count := .Events.Spawned}}{{if $kind}} {{kind $kind}}={{$count}}{{end}}{{end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"kind": func(i int) string {
			return piece.Kind(i).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	return tmpl.Execute(w, r)
}
