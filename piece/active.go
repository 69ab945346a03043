package piece

import "iter"

// Active is the falling piece: a shape and its offset from the board origin.
// It performs no validation; callers check the board after every change.
type Active struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Spawn places a fresh piece of kind at the top row, horizontally centered on
// a board of the given width.
func Spawn(kind Kind, boardWidth int) Active {
	shape := ShapeFor(kind)
	return Active{
		Kind:  kind,
		Shape: shape,
		X:     boardWidth/2 - shape.Size()/2,
		Y:     0,
	}
}

// Translate moves the offset by (dx, dy).
func (a *Active) Translate(dx, dy int) {
	a.X += dx
	a.Y += dy
}

// Rotate turns the shape a quarter in place around its bounding box.
func (a *Active) Rotate(dir Direction) {
	a.Shape.Rotate(dir)
}

// Blocks yields the board coordinate and value of every occupied cell.
func (a Active) Blocks() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for p, c := range a.Shape.Blocks() {
			if !yield(Point{X: a.X + p.X, Y: a.Y + p.Y}, c) {
				return
			}
		}
	}
}
