// Package desktop runs a session in an ebiten window.
package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

const (
	DefaultCellSize = 28
	margin          = 16
	panelWidth      = 160
)

// Overlay draws on top of the game, such as a debug UI.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game implements ebiten.Game around a scheduler driving one session.
type Game struct {
	Scheduler *engine.Scheduler
	Input     *InputSystem
	Overlay   Overlay
	CellSize  int
}

// NewGame registers input and gravity systems on scheduler.
func NewGame(scheduler *engine.Scheduler, keys KeySource) *Game {
	input := NewInputSystem(keys)
	scheduler.Register(input)
	scheduler.Register(&engine.GravitySystem{})

	return &Game{
		Scheduler: scheduler,
		Input:     input,
		CellSize:  DefaultCellSize,
	}
}

// WindowSize returns a window size fitting the well and the side panel.
func (g *Game) WindowSize() (int, int) {
	b := g.Scheduler.Session().Board()
	return b.Width()*g.CellSize + panelWidth + 2*margin, b.Height()*g.CellSize + 2*margin
}

func (g *Game) Update() error {
	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}

	g.Scheduler.Once(tickDuration())

	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}

	if g.Input.Quit() {
		return ebiten.Termination
	}
	return nil
}

// CellRect returns the screen rectangle of board cell (x, y).
func (g *Game) CellRect(x, y int) (fx, fy, size float32) {
	size = float32(g.CellSize)
	return float32(margin) + float32(x)*size, float32(margin) + float32(y)*size, size
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s := g.Scheduler.Session()
	b := s.Board()

	wx, wy, size := g.CellRect(0, 0)
	vector.DrawFilledRect(screen, wx, wy, float32(b.Width())*size, float32(b.Height())*size, wellColor, false)

	for y := range b.Height() {
		for x := range b.Width() {
			fx, fy, size := g.CellRect(x, y)
			if c := b.At(x, y); c != piece.Empty {
				vector.DrawFilledRect(screen, fx+1, fy+1, size-2, size-2, KindColor(c.Kind()), false)
				continue
			}
			vector.StrokeRect(screen, fx, fy, size, size, 1, gridColor, false)
		}
	}

	if s.State() == game.StateFalling {
		ghost := s.Ghost()
		for p := range ghost.Blocks() {
			fx, fy, size := g.CellRect(p.X, p.Y)
			vector.StrokeRect(screen, fx+2, fy+2, size-4, size-4, 2, GhostColor(ghost.Kind), false)
		}

		active := s.Active()
		for p := range active.Blocks() {
			if p.Y < 0 {
				continue
			}
			fx, fy, size := g.CellRect(p.X, p.Y)
			vector.DrawFilledRect(screen, fx+1, fy+1, size-2, size-2, KindColor(active.Kind), false)
		}
	}

	px := margin*2 + b.Width()*g.CellSize
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d\nLines: %d", s.Score(), s.Lines()), px, margin)
	if s.State() == game.StateGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR to restart", px, margin+48)
	}

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
