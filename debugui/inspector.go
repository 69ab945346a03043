package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

type PieceRow struct {
	Kind    piece.Kind
	Spawned int
}

type ClearRow struct {
	Rows  int
	Locks int
}

// PieceRows lists spawn counts in catalog draw order.
func PieceRows(stats *game.Stats) []PieceRow {
	rows := make([]PieceRow, 0, len(piece.Kinds))
	for _, kind := range piece.Kinds {
		rows = append(rows, PieceRow{Kind: kind, Spawned: stats.Spawned(kind)})
	}
	return rows
}

// ClearRows lists how many locks cleared 0 through piece.MaxSize rows.
func ClearRows(stats *game.Stats) []ClearRow {
	rows := make([]ClearRow, 0, piece.MaxSize+1)
	for n := range piece.MaxSize + 1 {
		rows = append(rows, ClearRow{Rows: n, Locks: stats.Clears(n)})
	}
	return rows
}

// Summary returns the one-line facts shown at the top of the inspector.
func Summary(s *game.Session) []string {
	active := s.Active()
	return []string{
		fmt.Sprintf("State: %v", s.State()),
		fmt.Sprintf("Score: %d  Lines: %d", s.Score(), s.Lines()),
		fmt.Sprintf("Drop Timer: %v / %v", s.DropTimer().Round(time.Millisecond), s.DropInterval()),
		fmt.Sprintf("Active: %v at (%d, %d)", active.Kind, active.X, active.Y),
		fmt.Sprintf("Board: %dx%d", s.Board().Width(), s.Board().Height()),
	}
}

// BoardLines renders the locked cells as text, one line per row.
func BoardLines(b board.Reader) []string {
	lines := make([]string, b.Height())
	row := make([]byte, b.Width())
	for y := range b.Height() {
		for x := range b.Width() {
			if c := b.At(x, y); c != piece.Empty {
				row[x] = c.Kind().String()[0]
			} else {
				row[x] = '.'
			}
		}
		lines[y] = string(row)
	}
	return lines
}

// Inspector is a window showing session state, statistics and scheduler
// timings.
type Inspector struct {
	Scheduler *engine.Scheduler
	history   *FrameHistory
	timer     *FrameTimer
}

func NewInspector(scheduler *engine.Scheduler, historyFrames int) *Inspector {
	return &Inspector{
		Scheduler: scheduler,
		history:   NewFrameHistory(historyFrames),
		timer:     NewFrameTimer(),
	}
}

// Item wraps the inspector for System.
func (in *Inspector) Item() Item {
	return Item{Render: in.Render}
}

func (in *Inspector) Render() {
	in.history.Push(in.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 420), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	session := in.Scheduler.Session()
	for _, line := range Summary(session) {
		imgui.Text(line)
	}

	avg := in.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := in.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg

	if imgui.TreeNodeStr("Pieces") {
		if imgui.BeginTableV("PieceTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for _, row := range PieceRows(session.Stats()) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.Kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Spawned))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears") {
		imgui.BulletText(fmt.Sprintf("Locks: %d", session.Stats().Locks()))
		if imgui.BeginTableV("ClearTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows")
			imgui.TableSetupColumn("Locks")
			imgui.TableHeadersRow()

			for _, row := range ClearRows(session.Stats()) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Locks))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		for _, line := range BoardLines(session.Board()) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Systems") {
		stats := in.Scheduler.GetStats()
		imgui.BulletText(fmt.Sprintf("Frames: %d  Commands applied: %d", stats.Frames, stats.Applied))
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
