package game

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/piece"
)

// Stats counts spawned pieces per kind and locks per number of rows cleared.
type Stats struct {
	spawned *intmap.Map[piece.Kind, int]
	clears  *intmap.Map[int, int]
	locks   int
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[piece.Kind, int](len(piece.Kinds)),
		clears:  intmap.New[int, int](piece.MaxSize + 1),
	}
}

func (s *Stats) recordSpawn(kind piece.Kind) {
	n, _ := s.spawned.Get(kind)
	s.spawned.Put(kind, n+1)
}

func (s *Stats) recordLock(rows int) {
	s.locks++
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
}

func (s *Stats) reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.locks = 0
}

// Spawned returns how many pieces of kind have entered play.
func (s *Stats) Spawned(kind piece.Kind) int {
	n, _ := s.spawned.Get(kind)
	return n
}

// Locks returns the number of pieces locked into the board.
func (s *Stats) Locks() int {
	return s.locks
}

// Clears returns how many locks cleared exactly rows rows.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}
