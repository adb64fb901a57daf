package core_test

import (
	"testing"

	"github.com/katalvlaran/netoptim/core"
	"github.com/stretchr/testify/assert"
)

// TestMapDigraph_AddVertex verifies insertion, idempotence and ordering.
func TestMapDigraph_AddVertex(t *testing.T) {
	g := core.NewMapDigraph[string]()

	assert.True(t, g.AddVertex("A"))  // first insertion succeeds
	assert.False(t, g.AddVertex("A")) // duplicate is a no-op
	assert.True(t, g.AddVertex("B"))

	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("Z"))
	assert.Equal(t, 2, g.NumVertices())

	// Vertices are reported in insertion order.
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

// TestMapDigraph_AddEdge verifies endpoint auto-insertion, self-loops,
// and per-pair idempotence.
func TestMapDigraph_AddEdge(t *testing.T) {
	g := core.NewMapDigraph[string]()

	assert.True(t, g.AddEdge("A", "B")) // endpoints created on the fly
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))

	assert.False(t, g.AddEdge("A", "B")) // same endpoint pair: no-op
	assert.Equal(t, 1, g.NumEdges())

	assert.True(t, g.AddEdge("B", "A")) // reverse direction is distinct
	assert.True(t, g.AddEdge("A", "A")) // self-loop permitted
	assert.Equal(t, 3, g.NumEdges())

	assert.True(t, g.HasEdge("A", "A"))
	assert.False(t, g.HasEdge("B", "B"))
}

// TestMapDigraph_Order verifies that adjacency and edge enumeration are
// deterministic in insertion order, the property the cycle finder relies
// on for reproducible tie-breaking.
func TestMapDigraph_Order(t *testing.T) {
	g := core.NewMapDigraph[int]()
	g.AddEdge(2, 0)
	g.AddEdge(2, 1)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)

	// Vertex order follows first appearance: 2, 0, 1.
	assert.Equal(t, []int{2, 0, 1}, g.Vertices())

	// Out-neighbors follow edge insertion order per tail.
	assert.Equal(t, []int{0, 1}, g.OutNeighbors(2))
	assert.Equal(t, []int{1, 2}, g.OutNeighbors(0))
	assert.Empty(t, g.OutNeighbors(1))
	assert.Empty(t, g.OutNeighbors(99)) // unknown vertex: empty, not panic

	// Edges follow global edge insertion order.
	want := []core.Edge[int]{
		{Tail: 2, Head: 0},
		{Tail: 2, Head: 1},
		{Tail: 0, Head: 1},
		{Tail: 0, Head: 2},
	}
	assert.Equal(t, want, g.Edges())
}

// TestMapDigraph_VertexIndex verifies the insertion-position lookup.
func TestMapDigraph_VertexIndex(t *testing.T) {
	g := core.NewMapDigraph[string]()
	g.AddVertex("x")
	g.AddVertex("y")

	i, ok := g.VertexIndex("y")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = g.VertexIndex("missing")
	assert.False(t, ok)
}

// TestMapDigraph_ReturnedSlicesAreCopies verifies callers cannot corrupt
// internal state through returned slices.
func TestMapDigraph_ReturnedSlicesAreCopies(t *testing.T) {
	g := core.NewMapDigraph[int]()
	g.AddEdge(0, 1)

	vs := g.Vertices()
	vs[0] = 42
	assert.Equal(t, []int{0, 1}, g.Vertices())

	ns := g.OutNeighbors(0)
	ns[0] = 42
	assert.Equal(t, []int{1}, g.OutNeighbors(0))
}
