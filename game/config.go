package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/blockfall/piece"
)

// ErrInvalidConfig wraps every configuration error.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the tunable parameters of a session.
type Config struct {
	Width  int
	Height int

	// DropInterval is the gravity period. A tick performs a drop once the
	// accumulated time strictly exceeds it.
	DropInterval time.Duration

	// PointsPerRow is awarded for every cleared row.
	PointsPerRow int

	// Generator names the piece generator, see piece.NewGenerator.
	Generator string

	// Seed feeds the generator. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the classic 10x20 well with a one second drop.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       20,
		DropInterval: time.Second,
		PointsPerRow: 10,
		Generator:    piece.GeneratorUniform,
	}
}

// Validate reports every problem with c joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Width < piece.MaxSize {
		errs = append(errs, fmt.Errorf("%w: width %d, need at least %d", ErrInvalidConfig, c.Width, piece.MaxSize))
	}
	if c.Height < piece.MaxSize {
		errs = append(errs, fmt.Errorf("%w: height %d, need at least %d", ErrInvalidConfig, c.Height, piece.MaxSize))
	}
	if c.DropInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: drop interval %v must be positive", ErrInvalidConfig, c.DropInterval))
	}
	if c.PointsPerRow < 0 {
		errs = append(errs, fmt.Errorf("%w: points per row %d is negative", ErrInvalidConfig, c.PointsPerRow))
	}
	return errors.Join(errs...)
}
