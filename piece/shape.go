package piece

import (
	"fmt"
	"iter"
	"slices"
)

// MaxSize is the largest bounding box in the catalog (the I piece).
const MaxSize = 4

// Direction selects the sense of a quarter turn.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Inverse returns the direction that undoes d.
func (d Direction) Inverse() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Point is a grid coordinate, y growing downward.
type Point struct {
	X, Y int
}

// Shape is a square cell matrix of side Size(). The cells live in a fixed
// array so that copies never share storage and a quarter turn always maps the
// bounding box onto itself.
type Shape struct {
	size  int
	cells [MaxSize][MaxSize]Cell
}

// NewShape builds a shape from square rows. Non-square or oversized input is a
// programming error and panics.
func NewShape(rows [][]Cell) Shape {
	n := len(rows)
	if n == 0 || n > MaxSize {
		panic(fmt.Sprintf("piece: shape side %d outside 1..%d", n, MaxSize))
	}

	var s Shape
	s.size = n
	for y, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("piece: row %d has %d cells, want %d", y, len(row), n))
		}
		copy(s.cells[y][:n], row)
	}
	return s
}

// Size returns the side length of the bounding box.
func (s Shape) Size() int {
	return s.size
}

// At returns the cell at column x, row y of the bounding box, or Empty when
// the coordinate lies outside it.
func (s Shape) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return Empty
	}
	return s.cells[y][x]
}

// Rows returns a copy of the matrix.
func (s Shape) Rows() [][]Cell {
	rows := make([][]Cell, s.size)
	for y := range rows {
		rows[y] = slices.Clone(s.cells[y][:s.size])
	}
	return rows
}

// Blocks yields the box-relative coordinate and value of every occupied cell.
func (s Shape) Blocks() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for y := range s.size {
			for x := range s.size {
				if c := s.cells[y][x]; c != Empty {
					if !yield(Point{X: x, Y: y}, c) {
						return
					}
				}
			}
		}
	}
}

// Equal reports whether both shapes have the same size and cells.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// Rotate turns the shape a quarter in place: a transpose followed by a
// reversal of every row (clockwise) or of the row order (counter-clockwise).
func (s *Shape) Rotate(dir Direction) {
	n := s.size
	for y := range n {
		for x := range y {
			s.cells[x][y], s.cells[y][x] = s.cells[y][x], s.cells[x][y]
		}
	}

	switch dir {
	case Clockwise:
		for y := range n {
			slices.Reverse(s.cells[y][:n])
		}
	case CounterClockwise:
		slices.Reverse(s.cells[:n])
	default:
		panic("piece: invalid rotation " + dir.String())
	}
}

func (s Shape) String() string {
	out := make([]byte, 0, s.size*(s.size+1))
	for y := range s.size {
		for x := range s.size {
			if c := s.cells[y][x]; c == Empty {
				out = append(out, '.')
			} else {
				out = append(out, Kind(c).String()...)
			}
		}
		if y < s.size-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
