package ell

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// CuttingPlaneOptim minimizes the objective behind omega over the region
// described by its cuts, searching inside e and starting from incumbent t.
//
// Each iteration queries the ellipsoid centre, records the point whenever
// the oracle improves the incumbent, and shrinks e by the returned cut. The
// loop stops when tsq drops below the tolerance, when a cut empties the
// ellipsoid or cannot shrink it, or at the iteration cap.
//
// xbest is nil iff the oracle never accepted a point; in that case the
// error explains which limit ended the search. With a non-nil xbest the
// only possible error is ErrMaxIters, and the incumbent remains usable.
func CuttingPlaneOptim(
	omega OptimOracle,
	e *Ell,
	t float64,
	opts ...Option,
) (xbest *mat.VecDense, tbest float64, iters int, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for iter := 1; iter <= o.maxIters; iter++ {
		x := e.X()
		cut, t1 := omega.AssessOptim(x, t)
		if t1 != t {
			t = t1
			xbest = x
		}

		uerr := e.Update(cut)
		switch {
		case errors.Is(uerr, ErrNoSolution), errors.Is(uerr, ErrNoEffect):
			// The geometry is exhausted: nothing better remains inside e.
			if xbest != nil {
				return xbest, t, iter, nil
			}

			return nil, t, iter, uerr
		}

		if e.Tsq() < o.tol {
			if xbest != nil {
				return xbest, t, iter, nil
			}

			return nil, t, iter, ErrNoSolution
		}
	}

	return xbest, t, o.maxIters, ErrMaxIters
}
