package game_test

import (
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a 10-wide board whose bottom rows are given by lines; '.' is
// empty and letters are kinds. Rows above are empty up to height 20.
func fixture(t *testing.T, lines ...string) *board.Board {
	t.Helper()

	rows := make([][]piece.Cell, 20)
	for y := range rows {
		rows[y] = make([]piece.Cell, 10)
	}
	offset := len(rows) - len(lines)
	for i, line := range lines {
		require.Len(t, line, 10)
		for x, r := range line {
			if r == '.' {
				continue
			}
			kind, err := piece.ParseKind(string(r))
			require.NoError(t, err)
			rows[offset+i][x] = kind.Cell()
		}
	}

	b, err := board.FromRows(rows)
	require.NoError(t, err)
	return b
}

func newSession(t *testing.T, opts ...game.Option) *game.Session {
	t.Helper()
	s, err := game.New(game.DefaultConfig(), opts...)
	require.NoError(t, err)
	return s
}

func render(r board.Reader) string {
	var sb strings.Builder
	for y := range r.Height() {
		for x := range r.Width() {
			if c := r.At(x, y); c == piece.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(c.Kind().String())
			}
		}
		if y < r.Height()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type recorder struct {
	events []game.Event
}

func (r *recorder) listen(e game.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) of(typ game.EventType) []game.Event {
	var out []game.Event
	for _, e := range r.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestNewSpawnsFirstPiece(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.T)), game.WithListener(rec.listen))

	active := s.Active()
	assert.Equal(t, piece.T, active.Kind)
	assert.Equal(t, 4, active.X)
	assert.Equal(t, 0, active.Y)
	assert.Equal(t, game.StateFalling, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, []game.Event{{Type: game.EventSpawned, Kind: piece.T}}, rec.events)
	assert.Equal(t, 1, s.Stats().Spawned(piece.T))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Width = 2
	cfg.DropInterval = 0

	_, err := game.New(cfg)
	require.ErrorIs(t, err, game.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "width 2")
	assert.Contains(t, err.Error(), "drop interval")
}

func TestNewRejectsUnknownGenerator(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Generator = "nes"

	_, err := game.New(cfg)
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
	assert.ErrorIs(t, err, piece.ErrUnknownGenerator)
}

func TestWithBoardOverridesDimensions(t *testing.T) {
	b := board.New(6, 8)
	s := newSession(t, game.WithBoard(b), game.WithGenerator(piece.NewSequence(piece.O)))

	assert.Equal(t, 6, s.Board().Width())
	assert.Equal(t, 8, s.Board().Height())
	assert.Equal(t, 6, s.Config().Width)
	assert.Equal(t, 2, s.Active().X)
}

func TestOPieceDropsToFloor(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.O, piece.T)), game.WithListener(rec.listen))

	for step := range 18 {
		require.False(t, s.SoftDrop(), "step %d locked early", step)
		assert.Equal(t, step+1, s.Active().Y)
	}
	require.True(t, s.SoftDrop())

	b := s.Board()
	filled := 0
	for y := range b.Height() {
		for x := range b.Width() {
			if b.At(x, y) != piece.Empty {
				filled++
			}
		}
	}
	assert.Equal(t, 4, filled)
	for _, p := range []piece.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.Equal(t, piece.O.Cell(), b.At(p.X, p.Y), "cell %v", p)
	}

	assert.Empty(t, rec.of(game.EventCleared))
	locked := rec.of(game.EventLocked)
	require.Len(t, locked, 1)
	assert.Equal(t, game.Event{Type: game.EventLocked, Kind: piece.O, Rows: 0, Score: 0}, locked[0])

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, piece.T, s.Active().Kind)
	assert.Equal(t, 0, s.Active().Y)
}

// dropVerticalI stands the spawned I piece upright in the rightmost column
// and hard drops it.
func dropVerticalI(t *testing.T, s *game.Session) {
	t.Helper()

	require.Equal(t, piece.I, s.Active().Kind)
	require.True(t, s.Rotate(piece.Clockwise))
	for s.Move(1) {
	}
	require.Equal(t, 7, s.Active().X)
	s.HardDrop()
}

func TestSingleRowClearScoresTen(t *testing.T) {
	rec := &recorder{}
	s := newSession(t,
		game.WithBoard(fixture(t, "TTSSZZOOJ.")),
		game.WithGenerator(piece.NewSequence(piece.I, piece.O)),
		game.WithListener(rec.listen),
	)

	dropVerticalI(t, s)

	cleared := rec.of(game.EventCleared)
	require.Len(t, cleared, 1)
	assert.Equal(t, 1, cleared[0].Rows)
	assert.Equal(t, 10, s.Score())
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 1, s.Stats().Clears(1))

	lines := strings.Split(render(s.Board()), "\n")
	assert.Equal(t, ".........I", lines[17])
	assert.Equal(t, ".........I", lines[18])
	assert.Equal(t, ".........I", lines[19])
}

func TestDoubleRowClearShiftsRowsDownByTwo(t *testing.T) {
	s := newSession(t,
		game.WithBoard(fixture(t,
			"L.........",
			"TTSSZZOOJ.",
			"JJLLIIIIO.",
		)),
		game.WithGenerator(piece.NewSequence(piece.I, piece.O)),
	)

	dropVerticalI(t, s)

	assert.Equal(t, 20, s.Score())
	assert.Equal(t, 2, s.Lines())
	assert.Equal(t, 1, s.Stats().Clears(2))

	lines := strings.Split(render(s.Board()), "\n")
	require.Len(t, lines, 20)
	for y := range 18 {
		assert.Equal(t, "..........", lines[y], "row %d", y)
	}
	assert.Equal(t, ".........I", lines[18])
	assert.Equal(t, "L........I", lines[19])
}

func TestMoveBlockedByWall(t *testing.T) {
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.O)))

	moves := 0
	for s.Move(-1) {
		moves++
	}
	assert.Equal(t, 4, moves)
	assert.Equal(t, 0, s.Active().X)
	assert.False(t, s.Move(-1))
	assert.Equal(t, 0, s.Active().X)
}

func TestMoveBlockedByStack(t *testing.T) {
	s := newSession(t,
		game.WithBoard(fixture(t, "..J.......", "..J.......")),
		game.WithGenerator(piece.NewSequence(piece.O)),
	)
	for range 18 {
		s.SoftDrop()
	}
	require.Equal(t, 18, s.Active().Y)

	assert.True(t, s.Move(-1))
	assert.False(t, s.Move(-1))
	assert.Equal(t, 3, s.Active().X)
}

func TestRotateInOpenSpace(t *testing.T) {
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.T)))
	s.SoftDrop()

	require.True(t, s.Rotate(piece.Clockwise))
	assert.Equal(t, 4, s.Active().X)

	want := piece.ShapeFor(piece.T)
	want.Rotate(piece.Clockwise)
	assert.True(t, want.Equal(s.Active().Shape))
}

func TestRotateKicksOffRightWall(t *testing.T) {
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.I)))
	require.True(t, s.Rotate(piece.Clockwise))
	for s.Move(1) {
	}
	require.Equal(t, 7, s.Active().X)
	s.SoftDrop()

	require.True(t, s.Rotate(piece.Clockwise))
	assert.Equal(t, 6, s.Active().X)

	for p := range s.Active().Blocks() {
		assert.GreaterOrEqual(t, p.X, 6)
		assert.LessOrEqual(t, p.X, 9)
	}
}

func TestRotateWithoutKickRoomIsNoOp(t *testing.T) {
	shaft := make([]string, 8)
	for i := range shaft {
		shaft[i] = "OOOOOOOOO."
	}
	s := newSession(t,
		game.WithBoard(fixture(t, shaft...)),
		game.WithGenerator(piece.NewSequence(piece.I)),
	)

	require.True(t, s.Rotate(piece.Clockwise))
	for s.Move(1) {
	}
	for range 16 {
		require.False(t, s.SoftDrop())
	}
	before := s.Active()
	require.Equal(t, 16, before.Y)

	assert.False(t, s.Rotate(piece.Clockwise))
	assert.Equal(t, before, s.Active())

	assert.False(t, s.Rotate(piece.CounterClockwise))
	assert.Equal(t, before, s.Active())
}

func TestTickAccumulatesUntilIntervalExceeded(t *testing.T) {
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.T)))

	assert.False(t, s.Tick(999*time.Millisecond))
	assert.False(t, s.Tick(time.Millisecond))
	assert.Equal(t, time.Second, s.DropTimer())
	assert.Equal(t, 0, s.Active().Y)

	assert.True(t, s.Tick(time.Millisecond))
	assert.Equal(t, 1, s.Active().Y)
	assert.Equal(t, time.Duration(0), s.DropTimer())
}

func TestTickDoesNotCatchUp(t *testing.T) {
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.T)))

	assert.True(t, s.Tick(10*time.Second))
	assert.Equal(t, 1, s.Active().Y)
	assert.Equal(t, time.Duration(0), s.DropTimer())
}

func TestTickIgnoresNegativeElapsed(t *testing.T) {
	s := newSession(t)
	s.Tick(300 * time.Millisecond)
	s.Tick(-time.Second)
	assert.Equal(t, 300*time.Millisecond, s.DropTimer())
}

func TestSoftDropResetsTimer(t *testing.T) {
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.T)))

	s.Tick(700 * time.Millisecond)
	require.False(t, s.SoftDrop())
	assert.Equal(t, time.Duration(0), s.DropTimer())

	s.Tick(700 * time.Millisecond)
	assert.False(t, s.Tick(200*time.Millisecond))
	assert.Equal(t, 1, s.Active().Y)
}

func TestTickLocksAtFloor(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.O)), game.WithListener(rec.listen))

	for range 19 {
		require.True(t, s.Tick(1001*time.Millisecond))
	}
	assert.Len(t, rec.of(game.EventLocked), 1)
	assert.Equal(t, 0, s.Active().Y)
}

func TestHardDrop(t *testing.T) {
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.O)))
	s.Tick(500 * time.Millisecond)

	assert.Equal(t, 18, s.HardDrop())
	assert.Equal(t, piece.O.Cell(), s.Board().At(4, 19))
	assert.Equal(t, time.Duration(0), s.DropTimer())
	assert.Equal(t, 1, s.Stats().Locks())
}

func TestGhostMarksLandingRow(t *testing.T) {
	s := newSession(t,
		game.WithBoard(fixture(t, "....JJ....", "....JJ....")),
		game.WithGenerator(piece.NewSequence(piece.O)),
	)

	ghost := s.Ghost()
	assert.Equal(t, 16, ghost.Y)
	assert.Equal(t, s.Active().X, ghost.X)
	assert.Equal(t, 0, s.Active().Y)
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.O)), game.WithListener(rec.listen))

	for range 10 {
		require.Equal(t, game.StateFalling, s.State())
		s.HardDrop()
	}

	assert.Equal(t, game.StateGameOver, s.State())
	require.Len(t, rec.of(game.EventGameOver), 1)
	assert.Equal(t, 11, s.Stats().Spawned(piece.O))
	assert.Equal(t, 10, s.Stats().Locks())
	assert.Equal(t, 10, s.Stats().Clears(0))

	before := s.Active()
	assert.False(t, s.Tick(5*time.Second))
	assert.False(t, s.Move(1))
	assert.False(t, s.Rotate(piece.Clockwise))
	assert.False(t, s.SoftDrop())
	assert.Equal(t, 0, s.HardDrop())
	assert.False(t, s.Apply(game.CommandHardDrop))
	assert.Equal(t, before, s.Active())
}

func TestRestartAfterGameOver(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.O)), game.WithListener(rec.listen))
	for s.State() == game.StateFalling {
		s.HardDrop()
	}

	require.True(t, s.Apply(game.CommandRestart))

	assert.Equal(t, game.StateFalling, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, 0, s.Stats().Locks())
	assert.Equal(t, 1, s.Stats().Spawned(piece.O))
	assert.Equal(t, strings.Repeat("..........\n", 19)+"..........", render(s.Board()))
	require.Len(t, rec.of(game.EventRestarted), 1)
}

func TestApplyDispatch(t *testing.T) {
	tests := []struct {
		cmd   game.Command
		check func(t *testing.T, before, after piece.Active)
	}{
		{game.CommandMoveLeft, func(t *testing.T, before, after piece.Active) {
			assert.Equal(t, before.X-1, after.X)
		}},
		{game.CommandMoveRight, func(t *testing.T, before, after piece.Active) {
			assert.Equal(t, before.X+1, after.X)
		}},
		{game.CommandSoftDrop, func(t *testing.T, before, after piece.Active) {
			assert.Equal(t, before.Y+1, after.Y)
		}},
		{game.CommandRotate, func(t *testing.T, before, after piece.Active) {
			want := before.Shape
			want.Rotate(piece.Clockwise)
			assert.True(t, want.Equal(after.Shape))
		}},
		{game.CommandRotateCounterClockwise, func(t *testing.T, before, after piece.Active) {
			want := before.Shape
			want.Rotate(piece.CounterClockwise)
			assert.True(t, want.Equal(after.Shape))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			s := newSession(t, game.WithGenerator(piece.NewSequence(piece.T)))
			s.SoftDrop()
			before := s.Active()

			require.True(t, s.Apply(tt.cmd))
			tt.check(t, before, s.Active())
		})
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.Apply(game.CommandNone))
	assert.False(t, s.Apply(game.Command(99)))
	assert.Equal(t, "Command(99)", game.Command(99).String())
}

func TestSubscribeReceivesLaterEvents(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, game.WithGenerator(piece.NewSequence(piece.O)))
	s.Subscribe(rec.listen)

	s.HardDrop()

	require.Len(t, rec.events, 2)
	assert.Equal(t, game.EventLocked, rec.events[0].Type)
	assert.Equal(t, game.EventSpawned, rec.events[1].Type)
}
