package oracle

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netoptim/core"
	"github.com/katalvlaran/netoptim/negcycle"
)

// NetworkOracle separates over the cycle inequalities of a digraph: x is
// feasible iff no directed cycle has negative total h(e, x). The distance
// map is warm state shared across queries, so successive x's that differ
// little resolve in few relaxation phases.
type NetworkOracle[V comparable] struct {
	h      ConstraintFn[V]
	dist   core.DistanceMap[V, float64]
	finder *negcycle.Finder[V, float64]
}

// NewNetworkOracle builds an oracle over g with constraint h. dist seeds the
// warm distance state; a zero-valued map is a valid start.
func NewNetworkOracle[V comparable](
	g core.Digraph[V],
	dist core.DistanceMap[V, float64],
	h ConstraintFn[V],
) *NetworkOracle[V] {
	return &NetworkOracle[V]{
		h:      h,
		dist:   dist,
		finder: negcycle.NewFinder[V, float64](g),
	}
}

// Update forwards the driver's best objective value to the constraint when
// it cares. Constraints that do not implement Updatable ignore it.
func (o *NetworkOracle[V]) Update(t float64) {
	if u, ok := o.h.(Updatable); ok {
		u.Update(t)
	}
}

// AssessFeas reports whether x satisfies every cycle inequality. On a
// violated cycle C it returns the cut
//
//	Fval = -sum of h(e, x) over C   (positive, since C was negative)
//	Grad = -sum of grad h(e, x) over C
//
// and found = true. Otherwise found is false and the zero Cut is returned.
func (o *NetworkOracle[V]) AssessFeas(x *mat.VecDense) (Cut, bool) {
	weight := func(e core.Edge[V]) float64 {
		return o.h.Eval(e, x)
	}
	cycle := o.finder.FindNegCycle(o.dist, weight)
	if len(cycle) == 0 {
		return Cut{}, false
	}

	fval := 0.0
	grad := mat.NewVecDense(x.Len(), nil)
	for _, e := range cycle {
		fval -= o.h.Eval(e, x)
		grad.SubVec(grad, o.h.Grad(e, x))
	}

	return Cut{Grad: grad, Fval: fval}, true
}
