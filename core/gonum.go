package core

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// GonumDigraph adapts any gonum.org/v1/gonum/graph.Directed to the Digraph
// and EdgeLister interfaces, so graphs built with gonum (for example
// graph/simple.WeightedDirectedGraph) feed the solvers directly.
//
// Vertex order is node-ID ascending, fixed at construction time. The
// adapter snapshots only the id list; adjacency is read through the wrapped
// graph on every call, so the graph must not be mutated while a solver runs
// (the usual read-only borrow).
type GonumDigraph struct {
	g   graph.Directed
	ids []int64
}

// FromGonum wraps g. Complexity: O(V log V) for the one-time id sort.
func FromGonum(g graph.Directed) *GonumDigraph {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return &GonumDigraph{g: g, ids: ids}
}

// Vertices returns all node ids in ascending order (a fresh slice).
// Complexity: O(V).
func (a *GonumDigraph) Vertices() []int64 {
	out := make([]int64, len(a.ids))
	copy(out, a.ids)

	return out
}

// OutNeighbors returns the ids reachable by one out-edge of v, ascending.
// Complexity: O(deg(v) log deg(v)).
func (a *GonumDigraph) OutNeighbors(v int64) []int64 {
	nodes := graph.NodesOf(a.g.From(v))
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns every directed edge, ordered by (tail, head) ascending.
// Complexity: O(V + E log E).
func (a *GonumDigraph) Edges() []Edge[int64] {
	var out []Edge[int64]
	for _, u := range a.ids {
		for _, v := range a.OutNeighbors(u) {
			out = append(out, Edge[int64]{Tail: u, Head: v})
		}
	}

	return out
}

// WeightOf builds a weight callable over a gonum weighted graph. Querying
// an absent edge returns the graph's configured absent-weight value, per
// gonum's Weight contract.
func WeightOf(wg graph.Weighted) func(Edge[int64]) float64 {
	return func(e Edge[int64]) float64 {
		w, _ := wg.Weight(e.Tail, e.Head)

		return w
	}
}
