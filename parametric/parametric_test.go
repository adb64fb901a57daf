package parametric_test

import (
	"testing"

	"github.com/katalvlaran/netoptim/core"
	"github.com/katalvlaran/netoptim/gen"
	"github.com/katalvlaran/netoptim/parametric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unit[V comparable](core.Edge[V]) float64 { return 1 }

// ratioOf recomputes cost(C)/time(C) for an attained cycle.
func ratioOf[V comparable](c core.Cycle[V], cost, time func(core.Edge[V]) float64) float64 {
	var tc, tt float64
	for _, e := range c {
		tc += cost(e)
		tt += time(e)
	}

	return tc / tt
}

// TestMinCycleRatio_Ring: a single 5-cycle with unit times has ratio equal
// to its mean cost.
func TestMinCycleRatio_Ring(t *testing.T) {
	g := gen.Ring(5)
	cost := gen.EdgeWeights(g, []float64{5, 1, 1, 1, 1})
	dist := core.NewMapDistance[int, float64]()

	ratio, cycle, ok := parametric.MinCycleRatio[int, float64](g, 5, cost, unit[int], dist)

	assert.True(t, ok)
	assert.InDelta(t, 9.0/5.0, ratio, 1e-9)
	require.Len(t, cycle, 5)
	assert.InDelta(t, ratio, ratioOf(cycle, cost, unit[int]), 1e-9)
}

// TestMinCycleRatio_Timing: the clock-skew graph's optimum is the 3-cycle
// through A->C, C->B, B->A.
func TestMinCycleRatio_Timing(t *testing.T) {
	g := gen.Timing()
	cost := gen.EdgeWeights(g, []float64{7, -1, 3, 0, 2, 4})
	dist := core.NewMapDistance[string, float64]()

	ratio, cycle, ok := parametric.MinCycleRatio[string, float64](g, 7, cost, unit[string], dist)

	assert.True(t, ok)
	assert.InDelta(t, 1.0, ratio, 1e-9)
	require.Len(t, cycle, 3)
	assert.InDelta(t, ratio, ratioOf(cycle, cost, unit[string]), 1e-9)
}

// TestMinCycleRatio_NonUnitTime weighs transit times unevenly.
func TestMinCycleRatio_NonUnitTime(t *testing.T) {
	g := gen.Ring(3)
	cost := gen.EdgeWeights(g, []float64{6, 1, 1})
	time := gen.EdgeWeights(g, []float64{2, 1, 1})
	dist := core.NewMapDistance[int, float64]()

	ratio, cycle, ok := parametric.MinCycleRatio[int, float64](g, 10, cost, time, dist)

	assert.True(t, ok)
	assert.InDelta(t, 2.0, ratio, 1e-9)
	assert.Len(t, cycle, 3)
}

// TestMinCycleRatio_Acyclic: no cycles means the bound is already optimal.
func TestMinCycleRatio_Acyclic(t *testing.T) {
	g := gen.Chain(4)
	cost := func(core.Edge[int]) float64 { return -3 }
	dist := core.NewMapDistance[int, float64]()

	ratio, cycle, ok := parametric.MinCycleRatio[int, float64](g, 10, cost, unit[int], dist)

	assert.True(t, ok)
	assert.Equal(t, 10.0, ratio)
	assert.Empty(t, cycle)
}

// TestMaxParametric_CycleMean drives the generic solver directly with
// weight(r, e) = cost(e) - r, whose optimum is the minimum mean cycle cost.
func TestMaxParametric_CycleMean(t *testing.T) {
	g := gen.Ring(4)
	cost := gen.EdgeWeights(g, []float64{4, 2, 1, 1})
	weight := func(r float64, e core.Edge[int]) float64 { return cost(e) - r }
	zeroCancel := func(c core.Cycle[int]) float64 {
		var s float64
		for _, e := range c {
			s += cost(e)
		}

		return s / float64(len(c))
	}
	dist := core.NewMapDistance[int, float64]()

	ratio, cycle, ok := parametric.MaxParametric[int, float64](g, 4, weight, zeroCancel, dist)

	assert.True(t, ok)
	assert.InDelta(t, 2.0, ratio, 1e-9)
	assert.Len(t, cycle, 4)
}

// TestWithMaxIters verifies the cap trips the convergence flag and that a
// non-positive cap panics at option time.
func TestWithMaxIters(t *testing.T) {
	g := gen.Ring(5)
	cost := gen.EdgeWeights(g, []float64{5, 1, 1, 1, 1})
	dist := core.NewMapDistance[int, float64]()

	ratio, cycle, ok := parametric.MinCycleRatio[int, float64](
		g, 5, cost, unit[int], dist, parametric.WithMaxIters(1))

	assert.False(t, ok)
	assert.InDelta(t, 9.0/5.0, ratio, 1e-9) // the one iteration still tightened
	assert.Len(t, cycle, 5)

	assert.Panics(t, func() { parametric.WithMaxIters(0)(&parametric.Options{}) })
}
