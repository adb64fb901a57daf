package ell

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netoptim/oracle"
)

// Ell is a search ellipsoid {z : (z-x)ᵀ P⁻¹ (z-x) <= 1}, stored as its
// centre x and shape matrix P. Not safe for concurrent use.
type Ell struct {
	n   int
	x   *mat.VecDense
	p   *mat.SymDense
	tsq float64
}

// NewEll returns the ball of squared radius kappa centred at x0, that is
// P = kappa*I. Panics if kappa <= 0 or x0 has fewer than two dimensions.
func NewEll(kappa float64, x0 *mat.VecDense) *Ell {
	if kappa <= 0 {
		panic("ell: NewEll requires kappa > 0")
	}
	n := x0.Len()
	if n < 2 {
		panic("ell: NewEll requires dimension >= 2")
	}

	p := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		p.SetSym(i, i, kappa)
	}

	return &Ell{
		n: n,
		x: mat.VecDenseCopyOf(x0),
		p: p,
	}
}

// X returns a copy of the current centre.
func (e *Ell) X() *mat.VecDense {
	return mat.VecDenseCopyOf(e.x)
}

// Tsq returns gᵀPg from the most recent Update; it bounds the squared
// distance from the centre to the cut plane scaled by the cut norm, and is
// the quantity the driver's tolerance is measured against. Zero before the
// first update.
func (e *Ell) Tsq() float64 {
	return e.tsq
}

// Update applies the deep-cut ellipsoid step for cut (g, beta), asserting
// g·(z - x) + beta <= 0 for every surviving z. With n the dimension,
// tau = sqrt(gᵀPg) and alpha = beta/tau:
//
//	rho   = (1 + n*alpha) * tau / (n + 1)
//	sigma = 2 * (1 + n*alpha) / ((n + 1) * (1 + alpha))
//	delta = n² * (1 - alpha²) / (n² - 1)
//	x'    = x - (rho/tau²) * Pg
//	P'    = delta * (P - (sigma/tau²) * Pg Pgᵀ)
//
// alpha > 1 means the cut plane lies beyond the far side of the ellipsoid:
// nothing survives, ErrNoSolution. alpha < -1/n means the cut would grow
// the ellipsoid: it is ignored, ErrNoEffect.
func (e *Ell) Update(cut oracle.Cut) error {
	g := cut.Grad
	pg := mat.NewVecDense(e.n, nil)
	pg.MulVec(e.p, g)
	tsq := mat.Dot(g, pg)
	e.tsq = tsq

	if tsq <= 0 {
		// A zero-gradient cut constrains nothing unless its value already
		// contradicts every point.
		if cut.Fval > 0 {
			return ErrNoSolution
		}

		return ErrNoEffect
	}

	tau := math.Sqrt(tsq)
	alpha := cut.Fval / tau
	if alpha > 1 {
		return ErrNoSolution
	}
	fn := float64(e.n)
	if alpha < -1/fn {
		return ErrNoEffect
	}

	rho := (1 + fn*alpha) * tau / (fn + 1)
	sigma := 2 * (1 + fn*alpha) / ((fn + 1) * (1 + alpha))
	delta := fn * fn * (1 - alpha*alpha) / (fn*fn - 1)

	e.x.AddScaledVec(e.x, -rho/tsq, pg)
	e.p.SymRankOne(e.p, -sigma/tsq, pg)
	e.p.ScaleSym(delta, e.p)

	return nil
}
