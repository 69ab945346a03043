// Package game runs a single falling-block session: gravity, player commands,
// locking, row sweeps and scoring.
package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// State is the phase of a session.
type State int

const (
	// StateFalling means an active piece is in play.
	StateFalling State = iota
	// StateGameOver means a spawned piece was blocked. Only a restart leaves it.
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "falling"
}

// Session owns a board and the piece falling into it. It is not safe for
// concurrent use; drive it from one goroutine.
type Session struct {
	cfg       Config
	board     *board.Board
	active    piece.Active
	gen       piece.Generator
	state     State
	score     int
	lines     int
	dropTimer time.Duration
	stats     *Stats
	listeners []Listener
}

// Option customises a session at construction.
type Option func(*Session)

// WithBoard starts the session on b instead of an empty board. The session
// takes ownership of b and its dimensions override the config.
func WithBoard(b *board.Board) Option {
	return func(s *Session) {
		s.board = b
	}
}

// WithGenerator replaces the generator named in the config.
func WithGenerator(gen piece.Generator) Option {
	return func(s *Session) {
		s.gen = gen
	}
}

// WithListener registers l before the first piece spawns.
func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, l)
	}
}

// New validates cfg, applies opts and spawns the first piece.
func New(cfg Config, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:   cfg,
		stats: newStats(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.board != nil {
		s.cfg.Width = s.board.Width()
		s.cfg.Height = s.board.Height()
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if s.board == nil {
		s.board = board.New(s.cfg.Width, s.cfg.Height)
	}

	if s.gen == nil {
		seed := s.cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		gen, err := piece.NewGenerator(s.cfg.Generator, seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		s.gen = gen
	}

	s.spawn()
	return s, nil
}

// Subscribe registers l for every later event.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(e Event) {
	for _, l := range s.listeners {
		l(e)
	}
}

// Tick advances the drop timer by elapsed. Once the timer exceeds the drop
// interval a single gravity step runs, however much time has passed. It
// reports whether a step ran.
func (s *Session) Tick(elapsed time.Duration) bool {
	if s.state != StateFalling {
		return false
	}

	if elapsed > 0 {
		s.dropTimer += elapsed
	}
	if s.dropTimer <= s.cfg.DropInterval {
		return false
	}

	s.drop()
	return true
}

// Apply performs cmd and reports whether it changed the session.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case CommandRotate:
		return s.Rotate(piece.Clockwise)
	case CommandRotateCounterClockwise:
		return s.Rotate(piece.CounterClockwise)
	case CommandMoveLeft:
		return s.Move(-1)
	case CommandMoveRight:
		return s.Move(1)
	case CommandSoftDrop:
		if s.state != StateFalling {
			return false
		}
		s.drop()
		return true
	case CommandHardDrop:
		if s.state != StateFalling {
			return false
		}
		s.HardDrop()
		return true
	case CommandRestart:
		s.Reset()
		return true
	}
	return false
}

// Move shifts the piece dx columns, leaving it in place when blocked.
func (s *Session) Move(dx int) bool {
	if s.state != StateFalling {
		return false
	}
	return s.attempt(
		func() { s.active.Translate(dx, 0) },
		func() { s.active.Translate(-dx, 0) },
	)
}

// Rotate turns the piece a quarter in dir. A blocked rotation is retried at
// sideways shifts of +1, -2, +3, ... columns; when the next shift would be
// wider than the piece the rotation and column are restored.
func (s *Session) Rotate(dir piece.Direction) bool {
	if s.state != StateFalling {
		return false
	}

	x := s.active.X
	return s.attempt(
		func() {
			s.active.Rotate(dir)
			s.kick()
		},
		func() {
			s.active.Rotate(dir.Inverse())
			s.active.X = x
		},
	)
}

func (s *Session) kick() {
	size := s.active.Shape.Size()
	for offset := 1; s.board.Collides(&s.active); {
		if abs(offset) > size {
			return
		}
		s.active.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
	}
}

// SoftDrop runs one gravity step and reports whether the piece locked.
func (s *Session) SoftDrop() bool {
	if s.state != StateFalling {
		return false
	}
	return s.drop()
}

// HardDrop runs gravity steps until the piece locks and returns the number of
// rows it fell.
func (s *Session) HardDrop() int {
	if s.state != StateFalling {
		return 0
	}

	rows := 0
	for !s.drop() {
		rows++
	}
	return rows
}

// Reset empties the board, zeroes score, lines, timer and statistics and
// spawns a fresh piece.
func (s *Session) Reset() {
	s.board.Reset()
	s.score = 0
	s.lines = 0
	s.dropTimer = 0
	s.state = StateFalling
	s.stats.reset()

	s.emit(Event{Type: EventRestarted})
	s.spawn()
}

// attempt applies mutate and keeps it unless the piece then collides, in
// which case rollback runs.
func (s *Session) attempt(mutate, rollback func()) bool {
	mutate()
	if s.board.Collides(&s.active) {
		rollback()
		return false
	}
	return true
}

// drop is the gravity step: down one row, or lock when blocked. The drop
// timer restarts either way. It reports whether the piece locked.
func (s *Session) drop() bool {
	s.dropTimer = 0
	moved := s.attempt(
		func() { s.active.Translate(0, 1) },
		func() { s.active.Translate(0, -1) },
	)
	if moved {
		return false
	}

	s.lock()
	return true
}

func (s *Session) lock() {
	kind := s.active.Kind
	s.board.Merge(&s.active)

	rows := s.board.SweepFull()
	s.lines += rows
	s.score += rows * s.cfg.PointsPerRow
	s.stats.recordLock(rows)

	s.emit(Event{Type: EventLocked, Kind: kind, Rows: rows, Score: s.score})
	if rows > 0 {
		s.emit(Event{Type: EventCleared, Kind: kind, Rows: rows, Score: s.score})
	}

	s.spawn()
}

func (s *Session) spawn() {
	kind := s.gen.Next()
	s.active = piece.Spawn(kind, s.board.Width())
	s.stats.recordSpawn(kind)

	if s.board.Collides(&s.active) {
		s.state = StateGameOver
		log.Printf("game: %v blocked at spawn, final score %d after %d lines", kind, s.score, s.lines)
		s.emit(Event{Type: EventGameOver, Kind: kind, Score: s.score})
		return
	}
	s.emit(Event{Type: EventSpawned, Kind: kind, Score: s.score})
}

// Board returns read access to the locked cells.
func (s *Session) Board() board.Reader {
	return s.board
}

// Active returns a copy of the falling piece.
func (s *Session) Active() piece.Active {
	return s.active
}

// Ghost returns a copy of the falling piece moved to where a hard drop would
// lock it.
func (s *Session) Ghost() piece.Active {
	ghost := s.active
	for {
		ghost.Translate(0, 1)
		if s.board.Collides(&ghost) {
			ghost.Translate(0, -1)
			return ghost
		}
	}
}

func (s *Session) Score() int {
	return s.score
}

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int {
	return s.lines
}

func (s *Session) State() State {
	return s.state
}

// DropTimer returns the time accumulated toward the next gravity step.
func (s *Session) DropTimer() time.Duration {
	return s.dropTimer
}

func (s *Session) DropInterval() time.Duration {
	return s.cfg.DropInterval
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) Stats() *Stats {
	return s.stats
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
