// Package oracle provides separation oracles for cutting-plane methods over
// network constraint systems.
//
// A Cut is a halfspace certificate: for the queried point x and any feasible
// point z, the oracle guarantees Grad·(z - x) + Fval <= 0. The cutting-plane
// driver shrinks its search region by that halfspace.
//
// NetworkOracle answers feasibility of monotone network inequalities
//
//	h(e, x) >= 0 along every directed cycle
//
// by hunting for a negative cycle under the edge weight h(e, x). A violated
// cycle yields a cut whose value and gradient are the negated sums of h and
// its gradient around the cycle. No cycle means x is feasible.
//
// OptScalingOracle specializes this to optimal matrix scaling in the
// Orlin-Rothblum formulation: x = (pi, phi) bounds the log magnitudes of the
// scaled entries, and the objective is to shrink the spread pi - phi. The
// entry orientation is decided by vertex enumeration order, fixed when the
// oracle is built.
package oracle
