// Package parametric solves maximum parametric network problems of the form
//
//	maximize r  such that  weight(r, e) induces no negative cycle,
//
// where weight is monotone decreasing in r on every edge. The solver
// repeatedly asks the negative-cycle finder for a violated cycle under the
// current r, tightens r to the value that zeroes that cycle, and repairs the
// distance map along the cycle so the next search restarts warm instead of
// from scratch.
//
// The minimum cycle ratio problem is the classic instance: with
// weight(r, e) = cost(e) - r*time(e) the optimum r is the smallest ratio
// cost(C)/time(C) over all directed cycles C, reached from any upper bound.
// Cycle time must be positive on every cycle; the caller guarantees that.
//
// Termination: each accepted cycle strictly lowers r, and under rational
// costs and times only finitely many cycle ratios exist, so the loop reaches
// a fixed point. Floating-point drift is bounded by the iteration cap
// (DefaultMaxIters, adjustable via WithMaxIters); the convergence flag
// reports whether the cap cut the search short.
package parametric
