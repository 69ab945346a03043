package piece

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Generator supplies the kind of each newly spawned piece.
type Generator interface {
	Next() Kind
}

// Generator names accepted by NewGenerator.
const (
	GeneratorUniform = "uniform"
	GeneratorBag     = "bag"
)

// ErrUnknownGenerator is returned by NewGenerator for an unsupported name.
var ErrUnknownGenerator = errors.New("unknown generator")

// NewGenerator builds the named generator seeded with seed.
func NewGenerator(name string, seed uint64) (Generator, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	switch name {
	case GeneratorUniform:
		return NewUniform(rng), nil
	case GeneratorBag:
		return NewBag(rng), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

type uniformGenerator struct {
	rng *rand.Rand
}

// NewUniform draws every kind independently with equal probability.
func NewUniform(rng *rand.Rand) Generator {
	return &uniformGenerator{rng: rng}
}

func (g *uniformGenerator) Next() Kind {
	return Kinds[g.rng.IntN(len(Kinds))]
}

type bagGenerator struct {
	rng     *rand.Rand
	pending []Kind
}

// NewBag deals shuffled bags of all seven kinds, so every kind appears exactly
// once in each run of seven pieces.
func NewBag(rng *rand.Rand) Generator {
	return &bagGenerator{rng: rng}
}

func (g *bagGenerator) Next() Kind {
	if len(g.pending) == 0 {
		g.pending = slices.Clone(Kinds)
		g.rng.Shuffle(len(g.pending), func(i, j int) {
			g.pending[i], g.pending[j] = g.pending[j], g.pending[i]
		})
	}

	kind := g.pending[0]
	g.pending = g.pending[1:]
	return kind
}

type sequenceGenerator struct {
	kinds []Kind
	next  int
}

// NewSequence repeats kinds in order forever. It panics on an empty or
// invalid sequence.
func NewSequence(kinds ...Kind) Generator {
	if len(kinds) == 0 {
		panic("piece: empty sequence")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic(fmt.Sprintf("piece: invalid kind %v in sequence", k))
		}
	}
	return &sequenceGenerator{kinds: slices.Clone(kinds)}
}

func (g *sequenceGenerator) Next() Kind {
	kind := g.kinds[g.next]
	g.next = (g.next + 1) % len(g.kinds)
	return kind
}
