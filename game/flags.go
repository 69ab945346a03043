package game

import (
	"flag"
	"fmt"

	"github.com/plus3/blockfall/piece"
)

// BindFlags registers flags on fs that write into cfg when parsed. Values
// already in cfg become the defaults.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells.")
	fs.DurationVar(&cfg.DropInterval, "interval", cfg.DropInterval, "Gravity period.")
	fs.IntVar(&cfg.PointsPerRow, "points", cfg.PointsPerRow, "Points awarded per cleared row.")
	fs.StringVar(&cfg.Generator, "randomizer", cfg.Generator,
		fmt.Sprintf("Piece generator, %q or %q.", piece.GeneratorUniform, piece.GeneratorBag))
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Generator seed, 0 for a random seed.")
}
