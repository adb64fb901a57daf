// Package gen builds small deterministic digraphs used across the solver
// test suites and examples.
//
// Every generator returns a *core.MapDigraph whose vertex and edge
// enumeration order is fixed by construction, so weight assignment by edge
// position is reproducible run to run.
package gen
