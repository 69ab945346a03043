// Package term renders a session to a terminal with tcell and turns key
// events into session commands.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

const (
	// CellWidth is the number of terminal columns per board cell.
	CellWidth = 2

	blockRune = '█'
	ghostRune = '░'
)

var palette = map[piece.Kind]tcell.Color{
	piece.I: tcell.ColorDarkCyan,
	piece.O: tcell.ColorYellow,
	piece.T: tcell.ColorPurple,
	piece.S: tcell.ColorGreen,
	piece.Z: tcell.ColorRed,
	piece.J: tcell.ColorBlue,
	piece.L: tcell.ColorOrange,
}

// Renderer draws the well with its top-left border corner at (Left, Top).
type Renderer struct {
	screen tcell.Screen
	Left   int
	Top    int

	border tcell.Style
	text   tcell.Style
	alert  tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		border: tcell.StyleDefault.Foreground(tcell.ColorGray),
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		alert:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Origin returns the screen position of board cell (x, y).
func (r *Renderer) Origin(x, y int) (int, int) {
	return r.Left + 1 + x*CellWidth, r.Top + 1 + y
}

// Draw renders the session and shows the frame.
func (r *Renderer) Draw(s *game.Session) {
	r.screen.Clear()

	b := s.Board()
	r.drawBorder(b.Width(), b.Height())

	for y := range b.Height() {
		for x := range b.Width() {
			if c := b.At(x, y); c != piece.Empty {
				r.drawCell(x, y, blockRune, styleFor(c.Kind()))
			}
		}
	}

	if s.State() == game.StateFalling {
		ghost := s.Ghost()
		for p := range ghost.Blocks() {
			if p.Y >= 0 {
				r.drawCell(p.X, p.Y, ghostRune, styleFor(ghost.Kind))
			}
		}
		active := s.Active()
		for p := range active.Blocks() {
			if p.Y >= 0 {
				r.drawCell(p.X, p.Y, blockRune, styleFor(active.Kind))
			}
		}
	}

	r.drawPanel(s, b.Width())
	r.screen.Show()
}

func styleFor(kind piece.Kind) tcell.Style {
	return tcell.StyleDefault.Foreground(palette[kind])
}

func (r *Renderer) drawCell(x, y int, ch rune, style tcell.Style) {
	sx, sy := r.Origin(x, y)
	for i := range CellWidth {
		r.screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

func (r *Renderer) drawBorder(width, height int) {
	right := r.Left + 1 + width*CellWidth
	bottom := r.Top + 1 + height

	for x := r.Left + 1; x < right; x++ {
		r.screen.SetContent(x, r.Top, '─', nil, r.border)
		r.screen.SetContent(x, bottom, '─', nil, r.border)
	}
	for y := r.Top + 1; y < bottom; y++ {
		r.screen.SetContent(r.Left, y, '│', nil, r.border)
		r.screen.SetContent(right, y, '│', nil, r.border)
	}
	r.screen.SetContent(r.Left, r.Top, '┌', nil, r.border)
	r.screen.SetContent(right, r.Top, '┐', nil, r.border)
	r.screen.SetContent(r.Left, bottom, '└', nil, r.border)
	r.screen.SetContent(right, bottom, '┘', nil, r.border)
}

func (r *Renderer) drawPanel(s *game.Session, width int) {
	x := r.Left + 3 + width*CellWidth
	y := r.Top + 1

	r.drawText(x, y, r.text, fmt.Sprintf("Score: %d", s.Score()))
	r.drawText(x, y+1, r.text, fmt.Sprintf("Lines: %d", s.Lines()))

	if s.State() == game.StateGameOver {
		r.drawText(x, y+3, r.alert, "GAME OVER")
		r.drawText(x, y+4, r.text, "r to restart, q to quit")
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
