// Package board implements the well: a fixed grid of locked cells with
// collision testing, piece merging and full-row sweeping.
package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/plus3/blockfall/piece"
)

// ErrInvalidGrid is returned by FromRows for grids that cannot form a board.
var ErrInvalidGrid = errors.New("invalid board grid")

// Reader is read-only access to board cells for renderers and observers.
type Reader interface {
	Width() int
	Height() int
	At(x, y int) piece.Cell
}

// Board is a width x height grid. Rows are recycled, never dropped, so the
// row count is constant for the board's lifetime.
type Board struct {
	width  int
	height int
	rows   [][]piece.Cell
}

// New returns an empty board. Non-positive dimensions panic.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid size %dx%d", width, height))
	}

	rows := make([][]piece.Cell, height)
	for y := range rows {
		rows[y] = make([]piece.Cell, width)
	}

	return &Board{
		width:  width,
		height: height,
		rows:   rows,
	}
}

// FromRows builds a board holding a copy of rows. Every row must have the same
// non-zero length and every cell must be empty or a catalog kind.
func FromRows(rows [][]piece.Cell) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidGrid)
	}

	b := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), b.width)
		}
		for x, c := range row {
			if c != piece.Empty && !c.Kind().Valid() {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidGrid, x, y, c)
			}
		}
		copy(b.rows[y], row)
	}
	return b, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (x, y), or Empty outside the grid.
func (b *Board) At(x, y int) piece.Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return piece.Empty
	}
	return b.rows[y][x]
}

// Snapshot returns a deep copy of the grid.
func (b *Board) Snapshot() [][]piece.Cell {
	out := make([][]piece.Cell, b.height)
	for y, row := range b.rows {
		out[y] = slices.Clone(row)
	}
	return out
}

// Filled counts the occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c != piece.Empty {
				n++
			}
		}
	}
	return n
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.rows {
		clear(row)
	}
}

// Collides reports whether any occupied cell of p lies left or right of the
// board, at or below the floor, or on an occupied cell. Cells above the top
// row never collide so pieces may sit partly above the visible well.
func (b *Board) Collides(p *piece.Active) bool {
	for pt := range p.Blocks() {
		if pt.X < 0 || pt.X >= b.width || pt.Y >= b.height {
			return true
		}
		if pt.Y >= 0 && b.rows[pt.Y][pt.X] != piece.Empty {
			return true
		}
	}
	return false
}

// Merge copies the occupied cells of p into the grid and returns how many
// were written. The caller must have checked Collides; cells above the top
// row are dropped.
func (b *Board) Merge(p *piece.Active) int {
	merged := 0
	for pt, c := range p.Blocks() {
		if pt.Y < 0 || pt.Y >= b.height || pt.X < 0 || pt.X >= b.width {
			continue
		}
		b.rows[pt.Y][pt.X] = c
		merged++
	}
	return merged
}

// SweepFull removes every full row, shifting the rows above it down and
// inserting an empty row at the top, and returns the number removed. After a
// removal the same index is examined again since a full row may have moved
// into it.
func (b *Board) SweepFull() int {
	cleared := 0
	for y := b.height - 1; y >= 0; {
		if !b.full(y) {
			y--
			continue
		}

		row := b.rows[y]
		clear(row)
		copy(b.rows[1:y+1], b.rows[:y])
		b.rows[0] = row
		cleared++
	}
	return cleared
}

func (b *Board) full(y int) bool {
	return !slices.Contains(b.rows[y], piece.Empty)
}

func (b *Board) String() string {
	out := make([]byte, 0, b.height*(b.width+1))
	for y, row := range b.rows {
		for _, c := range row {
			if c == piece.Empty {
				out = append(out, '.')
			} else {
				out = append(out, c.Kind().String()...)
			}
		}
		if y < b.height-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
