package oracle

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netoptim/core"
)

// OptScalingOracle assesses optimality for the optimal matrix scaling
// problem in log space. A point x = (pi, phi) must bracket every scaled
// entry magnitude:
//
//	upward edge   (tail before head):  pi  >= cost(e)
//	downward edge (head before tail):  phi <= cost(e)
//
// along every cycle, and the objective is to minimize the spread pi - phi.
// "Before" means the vertex enumeration order of the graph at construction
// time.
type OptScalingOracle[V comparable] struct {
	network *NetworkOracle[V]
}

// ratioConstraint is the Orlin-Rothblum cycle inequality for scaling.
type ratioConstraint[V comparable] struct {
	cost  func(core.Edge[V]) float64
	order map[V]int
}

func (r *ratioConstraint[V]) Eval(e core.Edge[V], x *mat.VecDense) float64 {
	c := r.cost(e)
	if r.order[e.Tail] < r.order[e.Head] {
		return x.AtVec(0) - c
	}

	return c - x.AtVec(1)
}

func (r *ratioConstraint[V]) Grad(e core.Edge[V], _ *mat.VecDense) *mat.VecDense {
	if r.order[e.Tail] < r.order[e.Head] {
		return mat.NewVecDense(2, []float64{1, 0})
	}

	return mat.NewVecDense(2, []float64{0, -1})
}

// NewOptScalingOracle builds the oracle over g with entry magnitudes given
// in log scale by cost. The vertex order is captured once from g.Vertices().
func NewOptScalingOracle[V comparable](
	g core.Digraph[V],
	dist core.DistanceMap[V, float64],
	cost func(core.Edge[V]) float64,
) *OptScalingOracle[V] {
	verts := g.Vertices()
	order := make(map[V]int, len(verts))
	for i, v := range verts {
		order[v] = i
	}
	r := &ratioConstraint[V]{cost: cost, order: order}

	return &OptScalingOracle[V]{network: NewNetworkOracle[V](g, dist, r)}
}

// AssessOptim evaluates x against the scaling constraints and the incumbent
// objective value t. Three outcomes:
//
//   - x violates a cycle inequality: the network cut is returned, t unchanged.
//   - x is feasible and its spread improves on t: a central objective cut
//     (grad (1,-1), value 0) is returned together with the improved value.
//   - x is feasible but no better: a shallow objective cut with the excess
//     spread as its value, t unchanged.
func (o *OptScalingOracle[V]) AssessOptim(x *mat.VecDense, t float64) (Cut, float64) {
	if cut, found := o.network.AssessFeas(x); found {
		return cut, t
	}

	s := x.AtVec(0) - x.AtVec(1)
	fj := s - t
	if fj < 0 {
		return Cut{Grad: mat.NewVecDense(2, []float64{1, -1}), Fval: 0}, s
	}

	return Cut{Grad: mat.NewVecDense(2, []float64{1, -1}), Fval: fj}, t
}
