// Package ell implements the ellipsoid method with deep cuts and the
// cutting-plane optimization driver that pairs it with a separation oracle.
//
// An Ell is a search ellipsoid {z : (z-x)ᵀ P⁻¹ (z-x) <= 1} centred at x.
// Each Update consumes a cut (g, beta) asserting every candidate z satisfies
// g·(z-x) + beta <= 0, and replaces the ellipsoid with the minimum-volume
// one containing the surviving half. beta = 0 is a central cut; beta > 0
// cuts deeper and shrinks faster; beta < 0 (shallow) still helps down to
// the -1/n threshold, below which the cut carries no information.
//
// CuttingPlaneOptim minimizes an objective known only through an oracle:
// query the centre, receive either a feasibility cut or an objective cut
// (possibly with an improved incumbent), update the ellipsoid, repeat until
// the squared cut norm tsq falls under the tolerance or an iteration or
// geometry limit stops the search.
//
// Dimensions start at 2; the one-dimensional case degenerates to bisection
// and is out of scope.
package ell
