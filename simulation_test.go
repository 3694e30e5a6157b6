package beeclust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulation_ConstructValidatesGridAndParams(t *testing.T) {
	_, err := New([][]int{}, DefaultParams(), NewRNG(1))
	require.Error(t, err)

	bad := DefaultParams()
	bad.PWall = 2
	_, err = New([][]int{{0}}, bad, NewRNG(1))
	require.Error(t, err)

	sim, err := New([][]int{{0, 1}, {5, 6}}, DefaultParams(), NewRNG(1))
	require.NoError(t, err)
	require.NotNil(t, sim)
	assert.NotEqual(t, sim.ID.String(), "")
}

func TestSimulation_BeePopulationConservedAcrossTickAndForget(t *testing.T) {
	sim, err := New([][]int{
		{1, 0, 2},
		{0, 5, 0},
		{4, 0, 3},
	}, DefaultParams(), NewRNG(11))
	require.NoError(t, err)

	before := len(sim.Bees())
	for i := 0; i < 20; i++ {
		sim.Tick()
		assert.Equal(t, before, len(sim.Bees()), "tick %d changed bee population", i)
	}

	sim.Forget()
	assert.Equal(t, before, len(sim.Bees()), "forget changed bee population")
}

func TestSimulation_ForgetSetsEveryBeeToUnknown(t *testing.T) {
	sim, err := New([][]int{{1, -4, 0, 5}}, DefaultParams(), NewRNG(2))
	require.NoError(t, err)

	sim.Forget()

	rows, cols := sim.Shape()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := sim.At(r, c)
			if v.IsBee() {
				assert.Equal(t, CellUnknown, v, "bee at (%d,%d) should be forgotten", r, c)
			}
		}
	}
}

func TestSimulation_ForgetThenTickActsImmediately(t *testing.T) {
	// A forgotten bee re-randomizes its
	// direction and acts in the same tick it reacquires one.
	sim, err := New([][]int{{1, 0, 0, 0}}, DefaultParams(), NewRNG(4))
	require.NoError(t, err)
	sim.Forget()

	moved := sim.Tick()
	// The bee may or may not move depending on the randomized
	// direction, but it must have acted (no longer CellUnknown at the
	// origin unless it moved away from it).
	v := sim.At(0, 0)
	if v == CellUnknown {
		t.Fatalf("bee should have acted this tick, still shows CellUnknown")
	}
	_ = moved
}

func TestSimulation_SwarmsPartitionBees(t *testing.T) {
	sim, err := New([][]int{
		{1, 2, 0, -3},
		{0, 0, 0, 4},
	}, DefaultParams(), NewRNG(9))
	require.NoError(t, err)

	bees := sim.Bees()
	swarms := sim.Swarms()

	var flattened []Point
	for _, s := range swarms {
		flattened = append(flattened, s...)
	}

	assert.ElementsMatch(t, bees, flattened, "swarms should partition bees exactly")
}

func TestSimulation_ScoreIsMeanHeatOverBees(t *testing.T) {
	sim, err := New([][]int{{6, 1, 0}}, DefaultParams(), NewRNG(6))
	require.NoError(t, err)

	score, err := sim.Score()
	require.NoError(t, err)

	heat := sim.Heatmap()
	assert.InDelta(t, heat.At(0, 1), score, 1e-9)
}

func TestSimulation_ScoreFailsWithNoBees(t *testing.T) {
	sim, err := New([][]int{{0, 5, 6, 7}}, DefaultParams(), NewRNG(6))
	require.NoError(t, err)

	_, err = sim.Score()
	require.Error(t, err)
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
}

func TestSimulation_RecalculateHeatIsExplicitAndIdempotent(t *testing.T) {
	sim, err := New([][]int{{6, 0, 0}}, DefaultParams(), NewRNG(6))
	require.NoError(t, err)

	before := snapshotHeat(sim)
	sim.RecalculateHeat()
	after := snapshotHeat(sim)
	assert.Equal(t, before, after)
}

func TestSimulation_HeatNotAffectedByBeeMotion(t *testing.T) {
	sim, err := New([][]int{{6, 1, 0, 0}}, DefaultParams(), NewRNG(6))
	require.NoError(t, err)

	before := snapshotHeat(sim)
	for i := 0; i < 5; i++ {
		sim.Tick()
	}
	after := snapshotHeat(sim)
	assert.Equal(t, before, after, "heat field must not change from bee motion alone")
}

func snapshotHeat(sim *Simulation) []float64 {
	rows, cols := sim.Shape()
	out := make([]float64, 0, rows*cols)
	h := sim.Heatmap()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, h.At(r, c))
		}
	}
	return out
}

func TestSimulation_GridShapeIsConstant(t *testing.T) {
	sim, err := New([][]int{{1, 0, 0}, {0, 5, 0}}, DefaultParams(), NewRNG(6))
	require.NoError(t, err)

	wantR, wantC := sim.Shape()
	for i := 0; i < 10; i++ {
		sim.Tick()
		gotR, gotC := sim.Shape()
		assert.Equal(t, wantR, gotR)
		assert.Equal(t, wantC, gotC)
	}
}
