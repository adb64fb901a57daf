// Package core defines the shared graph and distance-map abstractions used
// by every solver in netoptim, together with ready-made implementations.
//
// The solvers in this module (negcycle, parametric, oracle, primaldual)
// deliberately know almost nothing about graph storage. They require only:
//
//   - Digraph:     enumerate all vertices in a fixed order, and enumerate
//     the out-neighbors of a given vertex;
//   - EdgeLister:  enumerate all edges with their (Tail, Head) endpoints
//     (needed only by the primal-dual routines);
//   - DistanceMap: a mutable vertex → weight mapping.
//
// Edge weights are never stored on the graph. Every solver accepts a weight
// callable `func(Edge[V]) W` instead, which is what makes parametric
// re-weighting (weights depend on a scalar parameter) and oracle composition
// (weights depend on a decision vector) possible without graph mutation.
//
// Implementations provided here:
//
//   - MapDigraph:    insertion-ordered adjacency-map digraph keyed by any
//     comparable vertex type; allows self-loops; one edge per endpoint pair.
//   - GonumDigraph:  adapter exposing any gonum.org/v1/gonum/graph.Directed
//     as a Digraph[int64], so gonum-built graphs plug into the solvers.
//   - MapDistance:   hash-map distance map with zero-value defaults.
//   - SliceDistance: dense, int-keyed distance map for id-indexed graphs.
//
// Determinism: MapDigraph iterates vertices and out-neighbors in insertion
// order; GonumDigraph sorts by node ID. A stable order is required so that,
// when several negative cycles exist, repeated runs report the same one.
//
// Concurrency: graphs are read-only while a solver runs. MapDigraph guards
// mutation with an internal lock so graphs can be built from several
// goroutines, but a distance map must be owned by exactly one active solver.
package core
