package term_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newSession(t *testing.T, kinds ...piece.Kind) *game.Session {
	t.Helper()
	s, err := game.New(game.DefaultConfig(), game.WithGenerator(piece.NewSequence(kinds...)))
	require.NoError(t, err)
	return s
}

func runeAt(screen tcell.Screen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc
}

func rowText(screen tcell.Screen, y, from, to int) string {
	var sb strings.Builder
	for x := from; x < to; x++ {
		sb.WriteRune(runeAt(screen, x, y))
	}
	return sb.String()
}

func TestRendererDrawsBorder(t *testing.T) {
	screen := newScreen(t)
	r := term.NewRenderer(screen)

	r.Draw(newSession(t, piece.O))

	assert.Equal(t, '┌', runeAt(screen, 0, 0))
	assert.Equal(t, '┐', runeAt(screen, 21, 0))
	assert.Equal(t, '└', runeAt(screen, 0, 21))
	assert.Equal(t, '┘', runeAt(screen, 21, 21))
	assert.Equal(t, '│', runeAt(screen, 0, 10))
	assert.Equal(t, '─', runeAt(screen, 10, 21))
}

func TestRendererDrawsActiveAndGhost(t *testing.T) {
	screen := newScreen(t)
	r := term.NewRenderer(screen)

	r.Draw(newSession(t, piece.O))

	x, y := r.Origin(4, 0)
	assert.Equal(t, 9, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, "████", rowText(screen, 1, 9, 13))
	assert.Equal(t, "████", rowText(screen, 2, 9, 13))
	assert.Equal(t, "░░░░", rowText(screen, 19, 9, 13))
	assert.Equal(t, "░░░░", rowText(screen, 20, 9, 13))
	assert.Equal(t, ' ', runeAt(screen, 7, 20))

	_, _, style, _ := screen.GetContent(9, 1)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
}

func TestRendererDrawsLockedCells(t *testing.T) {
	screen := newScreen(t)
	r := term.NewRenderer(screen)
	s := newSession(t, piece.O, piece.T)
	s.HardDrop()

	r.Draw(s)

	assert.Equal(t, "████", rowText(screen, 19, 9, 13))
	assert.Equal(t, "████", rowText(screen, 20, 9, 13))
	assert.Equal(t, "Score: 0", rowText(screen, 1, 23, 31))
	assert.Equal(t, "Lines: 0", rowText(screen, 2, 23, 31))
}

func TestRendererGameOver(t *testing.T) {
	screen := newScreen(t)
	r := term.NewRenderer(screen)
	s := newSession(t, piece.O)
	for s.State() == game.StateFalling {
		s.HardDrop()
	}

	r.Draw(s)

	assert.Equal(t, "GAME OVER", rowText(screen, 4, 23, 32))
	assert.Equal(t, "████", rowText(screen, 1, 9, 13))
}

func TestRendererOffset(t *testing.T) {
	screen := newScreen(t)
	r := term.NewRenderer(screen)
	r.Left, r.Top = 5, 1

	r.Draw(newSession(t, piece.O))

	assert.Equal(t, '┌', runeAt(screen, 5, 1))
	x, y := r.Origin(0, 0)
	assert.Equal(t, 6, x)
	assert.Equal(t, 2, y)
}
