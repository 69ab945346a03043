package piece

import "fmt"

var templates = map[Kind][][]Cell{
	T: {
		{1, 1, 1},
		{0, 1, 0},
		{0, 0, 0},
	},
	Z: {
		{2, 2, 0},
		{0, 2, 2},
		{0, 0, 0},
	},
	S: {
		{0, 3, 3},
		{3, 3, 0},
		{0, 0, 0},
	},
	O: {
		{4, 4},
		{4, 4},
	},
	I: {
		{0, 0, 0, 0},
		{5, 5, 5, 5},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	L: {
		{0, 6, 0},
		{0, 6, 0},
		{0, 6, 6},
	},
	J: {
		{0, 7, 0},
		{0, 7, 0},
		{7, 7, 0},
	},
}

var catalog = buildCatalog()

func buildCatalog() [J + 1]Shape {
	var shapes [J + 1]Shape
	for kind, rows := range templates {
		shapes[kind] = NewShape(rows)
	}
	return shapes
}

// ShapeFor returns the spawn orientation of kind. Every call returns an
// independent value. Asking for a kind outside the catalog panics.
func ShapeFor(kind Kind) Shape {
	if !kind.Valid() {
		panic(fmt.Sprintf("piece: no shape for %v", kind))
	}
	return catalog[kind]
}
