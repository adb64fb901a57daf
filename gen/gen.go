package gen

import (
	"github.com/katalvlaran/netoptim/core"
)

// Ring returns a directed cycle on vertices 0..n-1 with edges i -> (i+1) mod n,
// inserted in ascending tail order. Ring(0) is the empty graph; Ring(1) is a
// single self-loop.
func Ring(n int) *core.MapDigraph[int] {
	g := core.NewMapDigraph[int]()
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}

	return g
}

// Chain returns a simple path 0 -> 1 -> ... -> n-1. Chain(0) and Chain(1)
// have no edges.
func Chain(n int) *core.MapDigraph[int] {
	g := core.NewMapDigraph[int]()
	if n == 1 {
		g.AddVertex(0)
	}
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}

	return g
}

// Timing returns the three-vertex clock-skew graph on vertices A, B, C with
// all six ordered pairs present. Edge insertion order is fixed:
//
//	A->B, B->A, B->C, C->B, C->A, A->C
//
// so a six-element weight slice assigns weights positionally via EdgeWeights.
func Timing() *core.MapDigraph[string] {
	g := core.NewMapDigraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("B", "C")
	g.AddEdge("C", "B")
	g.AddEdge("C", "A")
	g.AddEdge("A", "C")

	return g
}

// EdgeWeights binds ws to g's edges positionally, in g.Edges() order, and
// returns a weight callable over them. It panics when the lengths disagree,
// or at call time for an edge absent from g.
func EdgeWeights[V comparable, W core.Number](g core.EdgeLister[V], ws []W) func(core.Edge[V]) W {
	edges := g.Edges()
	if len(edges) != len(ws) {
		panic("gen: weight count does not match edge count")
	}
	byEdge := make(map[core.Edge[V]]W, len(edges))
	for i, e := range edges {
		byEdge[e] = ws[i]
	}

	return func(e core.Edge[V]) W {
		w, ok := byEdge[e]
		if !ok {
			panic("gen: weight requested for unknown edge")
		}

		return w
	}
}
