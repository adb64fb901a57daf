package core

// DenseDigraph is an adjacency-matrix digraph over the vertex set 0..n-1.
// Edge existence and removal are O(1); neighbor enumeration is O(V). Use it
// for small dense instances where a map-backed graph wastes space; it pairs
// naturally with SliceDistance.
//
// The vertex set is fixed at construction. Out-of-range endpoints panic,
// matching slice semantics.
type DenseDigraph struct {
	n   int
	adj [][]bool
}

// NewDenseDigraph returns an edgeless dense digraph on n vertices.
func NewDenseDigraph(n int) *DenseDigraph {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	return &DenseDigraph{n: n, adj: adj}
}

// AddEdge inserts u -> v. Reports whether the edge was absent. Self-loops
// are permitted.
func (d *DenseDigraph) AddEdge(u, v int) bool {
	if d.adj[u][v] {
		return false
	}
	d.adj[u][v] = true

	return true
}

// RemoveEdge deletes u -> v. Reports whether the edge existed.
func (d *DenseDigraph) RemoveEdge(u, v int) bool {
	had := d.adj[u][v]
	d.adj[u][v] = false

	return had
}

// HasEdge reports whether u -> v is present.
func (d *DenseDigraph) HasEdge(u, v int) bool {
	return d.adj[u][v]
}

// NumVertices returns the fixed vertex count n.
func (d *DenseDigraph) NumVertices() int {
	return d.n
}

// Vertices returns 0..n-1 ascending.
func (d *DenseDigraph) Vertices() []int {
	vs := make([]int, d.n)
	for i := range vs {
		vs[i] = i
	}

	return vs
}

// OutNeighbors returns the heads of u's out-edges in ascending order.
func (d *DenseDigraph) OutNeighbors(u int) []int {
	var ns []int
	for v, has := range d.adj[u] {
		if has {
			ns = append(ns, v)
		}
	}

	return ns
}

// Edges enumerates all edges in row-major order: by tail ascending, then by
// head ascending.
func (d *DenseDigraph) Edges() []Edge[int] {
	var es []Edge[int]
	for u, row := range d.adj {
		for v, has := range row {
			if has {
				es = append(es, Edge[int]{Tail: u, Head: v})
			}
		}
	}

	return es
}
