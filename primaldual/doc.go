// Package primaldual implements primal-dual approximation algorithms for
// weighted vertex cover and minimum maximal independent set.
//
// Both routines maintain a gap value per vertex, initialized to its weight.
// Covering a vertex pays out its remaining gap as a dual variable and
// discounts the gap of the vertices that competed with it. For vertex cover
// this yields the classic guarantee dual <= primal <= 2*dual, so the result
// is at most twice the optimum.
//
// Neighborhoods are taken from OutNeighbors; for the undirected problems
// these algorithms approximate, callers should supply a graph with both
// orientations of every edge (vertex cover iterates edges once regardless,
// so duplicated orientations there simply re-check a covered pair).
package primaldual
