package ell

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netoptim/oracle"
)

var (
	// ErrNoSolution reports a cut that excludes the entire ellipsoid: the
	// feasible region being searched is empty.
	ErrNoSolution = errors.New("ell: cut excludes the whole ellipsoid")

	// ErrNoEffect reports a shallow cut below the -1/n threshold; the
	// ellipsoid was left unchanged.
	ErrNoEffect = errors.New("ell: cut too shallow to shrink the ellipsoid")

	// ErrMaxIters reports that the iteration cap stopped the driver before
	// the tolerance was met. The incumbent returned alongside is still the
	// best point found.
	ErrMaxIters = errors.New("ell: iteration cap reached")
)

// DefaultTol is the convergence threshold on the squared cut norm tsq.
const DefaultTol = 1e-8

// DefaultMaxIters bounds the cutting-plane loop when no cap is given.
const DefaultMaxIters = 1000

// OptimOracle assesses a candidate point against constraints and the
// incumbent objective value t. It returns a cut and the possibly improved
// incumbent; returning t unchanged signals no improvement at x.
type OptimOracle interface {
	AssessOptim(x *mat.VecDense, t float64) (oracle.Cut, float64)
}

// Options configures a cutting-plane run. Construct via functional options.
type Options struct {
	tol      float64
	maxIters int
}

// Option mutates Options.
type Option func(*Options)

// WithTol sets the convergence threshold on tsq. Panics if tol <= 0.
func WithTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic("ell: WithTol requires tol > 0")
		}
		o.tol = tol
	}
}

// WithMaxIters caps the number of oracle queries. Panics if n < 1.
func WithMaxIters(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("ell: WithMaxIters requires n >= 1")
		}
		o.maxIters = n
	}
}

func defaultOptions() Options {
	return Options{tol: DefaultTol, maxIters: DefaultMaxIters}
}
