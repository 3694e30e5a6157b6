// Package beeclust implements the BeeClust grid simulation: bees moving
// on a 2D map of walls, heaters, and coolers, with per-cell temperature
// derived from multi-source BFS distance transforms and connected-bee
// swarm decomposition.
package beeclust

import (
	"github.com/google/uuid"
)

// Simulation is the facade over a Grid and its cached HeatField.
// It owns both exclusively; the RNG is injected so callers can seed
// reproducible runs. A Simulation's mutating methods (Tick,
// RecalculateHeat, Forget) are not safe to call concurrently on the same
// instance — callers who want concurrency run independent Simulations in
// parallel instead.
type Simulation struct {
	// ID identifies this run; useful for correlating log output when a
	// caller fans out many independent Simulations (see cmd/beeclust's
	// batch driver).
	ID uuid.UUID

	grid   *Grid
	heat   *HeatField
	params Params
	rng    RNG
}

// New constructs a Simulation from a rectangular grid and parameters,
// validating both and eagerly computing the initial heat field. rng may
// be nil, in which case a time-seeded default is used; tests should
// pass a seeded RNG for reproducibility.
func New(rows [][]int, params Params, rng RNG) (*Simulation, error) {
	g, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRNG(defaultSeed())
	}

	s := &Simulation{
		ID:     uuid.New(),
		grid:   g,
		params: params,
		rng:    rng,
	}
	s.RecalculateHeat()
	return s, nil
}

// Tick performs one simulation step and returns the number
// of bees that moved to a new cell.
func (s *Simulation) Tick() int {
	return runTick(s.grid, s.heat, s.params, s.rng)
}

// RecalculateHeat recomputes the heat field from the current grid
// layout. It must be called explicitly whenever the grid's
// wall/heater/cooler layout changes; bee motion never triggers it
// automatically.
func (s *Simulation) RecalculateHeat() {
	s.heat = computeHeatField(s.grid, s.params)
}

// Heatmap returns the cached HeatField.
func (s *Simulation) Heatmap() *HeatField {
	return s.heat
}

// Shape returns the grid's (rows, cols).
func (s *Simulation) Shape() (int, int) {
	return s.grid.Shape()
}

// At returns the raw cell value at (r, c).
func (s *Simulation) At(r, c int) Cell {
	return s.grid.At(r, c)
}

// Bees returns every bee-occupied coordinate. Order is deterministic
// (row-major) for a given grid but not otherwise contractual.
func (s *Simulation) Bees() []Point {
	rows, cols := s.grid.Shape()
	var out []Point
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s.grid.At(r, c).IsBee() {
				out = append(out, Point{r, c})
			}
		}
	}
	return out
}

// Swarms partitions the current bees into maximal 4-connected components
// of adjacent bees.
func (s *Simulation) Swarms() [][]Point {
	return computeSwarms(s.grid)
}

// Score returns the arithmetic mean of the heat field over every bee
// position, failing with a *ValueError if no bees are present.
func (s *Simulation) Score() (float64, error) {
	bees := s.Bees()
	if len(bees) == 0 {
		return 0, &ValueError{Field: "bees", Msg: "no bees in beeclust"}
	}
	var sum float64
	for _, p := range bees {
		sum += s.heat.At(p.Row, p.Col)
	}
	return sum / float64(len(bees)), nil
}

// Forget resets every bee cell to CellUnknown, preserving population and
// position but erasing direction and any wait countdown.
func (s *Simulation) Forget() {
	rows, cols := s.grid.Shape()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s.grid.At(r, c).IsBee() {
				s.grid.Set(r, c, CellUnknown)
			}
		}
	}
}

// Grid exposes a defensive copy of the underlying grid state, for callers
// (e.g. cmd/beeclust's renderer) that need to read the full map without
// risking a mutation racing the simulation's own writes.
func (s *Simulation) Grid() *Grid {
	return s.grid.Clone()
}
