package parametric

import (
	"github.com/katalvlaran/netoptim/core"
	"github.com/katalvlaran/netoptim/negcycle"
)

// MaxParametric maximizes ratio subject to weight(ratio, ·) inducing no
// negative cycle in g. ratio is the caller's upper bound; weight must be
// monotone decreasing in its first argument on every edge, and zeroCancel
// must return, for a cycle C, the ratio value at which C's total weight is
// exactly zero.
//
// dist is warm state: it is repaired in place after every accepted cycle and
// may be reused across calls with related weights. The returned cycle is the
// last one accepted (the optimum's certificate), or empty when ratio was
// already feasible. ok is false only when the iteration cap stopped the
// search before a fixed point.
func MaxParametric[V comparable, W core.Float](
	g core.Digraph[V],
	ratio W,
	weight func(ratio W, e core.Edge[V]) W,
	zeroCancel func(core.Cycle[V]) W,
	dist core.DistanceMap[V, W],
	opts ...Option,
) (W, core.Cycle[V], bool) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	finder := negcycle.NewFinder[V, W](g)
	cycle := core.Cycle[V]{}
	for iter := 0; iter < o.maxIters; iter++ {
		// Step 1: look for a cycle violated under the current ratio.
		candidate := finder.FindNegCycle(dist, func(e core.Edge[V]) W {
			return weight(ratio, e)
		})
		if len(candidate) == 0 {
			return ratio, cycle, true
		}

		// Step 2: the candidate's zero point is the tightest ratio it allows.
		improved := zeroCancel(candidate)
		if improved >= ratio {
			return ratio, cycle, true
		}
		cycle = candidate
		ratio = improved

		// Step 3: repair distances along the cycle under the new ratio, so
		// the accepted cycle reads as exactly tight instead of violated.
		for _, e := range cycle {
			dist.SetDist(e.Tail, dist.Dist(e.Head)-weight(ratio, e))
		}
	}

	return ratio, cycle, false
}

// MinCycleRatio finds the minimum of cost(C)/time(C) over all directed
// cycles C in g, starting from the upper bound ratio. Every cycle's total
// time must be positive. Returns the optimal ratio, a cycle attaining it
// (empty when g is acyclic or ratio was already a lower bound), and the
// convergence flag from MaxParametric.
func MinCycleRatio[V comparable, W core.Float](
	g core.Digraph[V],
	ratio W,
	cost func(core.Edge[V]) W,
	time func(core.Edge[V]) W,
	dist core.DistanceMap[V, W],
	opts ...Option,
) (W, core.Cycle[V], bool) {
	weight := func(r W, e core.Edge[V]) W {
		return cost(e) - r*time(e)
	}
	zeroCancel := func(c core.Cycle[V]) W {
		var totalCost, totalTime W
		for _, e := range c {
			totalCost += cost(e)
			totalTime += time(e)
		}

		return totalCost / totalTime
	}

	return MaxParametric(g, ratio, weight, zeroCancel, dist, opts...)
}
