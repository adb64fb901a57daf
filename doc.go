// Package netoptim is a toolkit for parametric network optimization —
// negative-cycle detection, minimum cycle ratio, and cutting-plane
// optimization over network constraint systems.
//
// What is netoptim?
//
//	A value-generic library built around one primitive, the warm-start
//	negative-cycle finder, and the solvers that compose it:
//		• Cycle finding: source-free detection with reusable distance state
//		• Parametric search: max-parametric tightening, minimum cycle ratio
//		• Separation oracles: network feasibility, optimal matrix scaling
//		• Ellipsoid method: deep-cut updates and the cutting-plane driver
//		• Primal-dual: 2-approximate vertex cover, maximal independent set
//
// Why choose netoptim?
//
//   - Generic over vertex and weight types – bring your own identifiers
//   - Weight callables, not stored weights – parametric re-weighting is free
//   - Warm distance state – successive related queries converge fast
//   - Pluggable graphs – map-backed, adjacency-matrix, or gonum adapters
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/       — graph & distance-map contracts plus stock implementations
//	negcycle/   — the negative-cycle finder
//	parametric/ — max-parametric solver & minimum cycle ratio
//	oracle/     — separation oracles (network feasibility, optimal scaling)
//	ell/        — ellipsoid method & the cutting-plane driver
//	primaldual/ — vertex cover & maximal independent set approximations
//	gen/        — deterministic graph factories for tests and examples
//
// Quick example, the minimum cycle ratio of a dense three-node timing graph:
//
//	g := gen.Timing()
//	cost := gen.EdgeWeights(g, []float64{7, -1, 3, 0, 2, 4})
//	unit := func(core.Edge[string]) float64 { return 1 }
//	r, cycle, ok := parametric.MinCycleRatio[string, float64](
//	    g, 7, cost, unit, core.NewMapDistance[string, float64]())
//	// r == 1, cycle is A->C->B->A, ok == true
//
// Dive into each subpackage's documentation for contracts, invariants and
// complexity notes.
//
//	go get github.com/katalvlaran/netoptim
package netoptim
