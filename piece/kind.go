// Package piece defines the seven tetromino kinds, their square shape matrices
// and the currently falling piece.
package piece

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is one grid cell. Zero is empty; any other value is the Kind that
// filled it.
type Cell uint8

// Empty is the unoccupied cell value.
const Empty Cell = 0

// Kind identifies a tetromino. Its numeric value is also the fill value its
// shape uses, so renderers can pick a color from a cell alone.
type Kind int

const (
	T Kind = iota + 1
	Z
	S
	O
	I
	L
	J
)

// Kinds lists every kind in draw order.
var Kinds = []Kind{I, L, J, O, T, S, Z}

// ErrUnknownKind is returned when a kind name cannot be parsed.
var ErrUnknownKind = errors.New("unknown piece kind")

var kindNames = [...]string{
	T: "T",
	Z: "Z",
	S: "S",
	O: "O",
	I: "I",
	L: "L",
	J: "J",
}

// Valid reports whether k is one of the seven catalog kinds.
func (k Kind) Valid() bool {
	return k >= T && k <= J
}

// Cell returns the fill value used by k's shape.
func (k Kind) Cell() Cell {
	return Cell(k)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a single letter such as "T" or "i" to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(strings.TrimSpace(name), k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kind returns the kind that filled c. It is only meaningful for non-empty cells.
func (c Cell) Kind() Kind {
	return Kind(c)
}
