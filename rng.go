package beeclust

import (
	"math/rand"
	"time"
)

// RNG is the uniform-random oracle the tick kernel consumes. Randomness
// is an injectable capability rather than a hardwired global, so tests
// can seed a reproducible stream; production callers construct an RNG
// via NewRNG, which wraps a per-run *rand.Rand rather than relying on
// the package-level global.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// mathRandRNG adapts *rand.Rand to the RNG interface.
type mathRandRNG struct {
	r *rand.Rand
}

// NewRNG returns an RNG seeded deterministically from seed.
func NewRNG(seed int64) RNG {
	return &mathRandRNG{r: rand.New(rand.NewSource(seed))}
}

// defaultSeed seeds from the wall clock for callers that don't supply
// their own RNG.
func defaultSeed() int64 {
	return time.Now().UnixNano()
}

func (m *mathRandRNG) Float64() float64 {
	return m.r.Float64()
}

func (m *mathRandRNG) IntN(n int) int {
	return m.r.Intn(n)
}

// randomDirection returns a uniform direction from {CellNorth, CellEast,
// CellSouth, CellWest}, used to re-acquire a direction for a forgotten
// (CellUnknown) bee.
func randomDirection(rng RNG) Cell {
	return CellNorth + Cell(rng.IntN(4))
}

// directions lists the four cardinal bee values in a fixed order, used by
// otherDirection to sample uniformly among the three that are not current.
var directions = [4]Cell{CellNorth, CellEast, CellSouth, CellWest}

// otherDirection samples uniformly from the three directions other than
// current, by building the 3-element candidate list explicitly and
// indexing into it uniformly. A naive randint(1,3)-with-remap-to-4
// scheme is non-uniform and, for current == CellWest, can never
// re-select CellWest's replacement fairly.
func otherDirection(rng RNG, current Cell) Cell {
	var candidates [3]Cell
	n := 0
	for _, d := range directions {
		if d != current {
			candidates[n] = d
			n++
		}
	}
	return candidates[rng.IntN(3)]
}

// oppositeDirection reverses a direction 180 degrees (N<->S, E<->W) via
// a direct lookup rather than modular arithmetic, which can produce the
// wrong pairing for certain encodings.
func oppositeDirection(current Cell) Cell {
	switch current {
	case CellNorth:
		return CellSouth
	case CellSouth:
		return CellNorth
	case CellEast:
		return CellWest
	case CellWest:
		return CellEast
	}
	panic("beeclust: oppositeDirection called on a non-directed cell")
}
