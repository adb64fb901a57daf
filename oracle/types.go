package oracle

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netoptim/core"
)

// Cut is a separating halfspace at a queried point x: every feasible z
// satisfies Grad·(z-x) + Fval <= 0. Fval == 0 marks a central (deep) cut
// through x itself; Fval > 0 cuts x away together with a margin.
type Cut struct {
	Grad *mat.VecDense
	Fval float64
}

// ConstraintFn evaluates one edge inequality h(e, x) >= 0 and its gradient
// with respect to x. Implementations must be deterministic for a fixed x.
type ConstraintFn[V comparable] interface {
	Eval(e core.Edge[V], x *mat.VecDense) float64
	Grad(e core.Edge[V], x *mat.VecDense) *mat.VecDense
}

// Updatable is implemented by constraint functions whose inequalities depend
// on the driver's best objective value so far.
type Updatable interface {
	Update(t float64)
}
