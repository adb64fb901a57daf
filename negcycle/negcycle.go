package negcycle

import (
	"github.com/katalvlaran/netoptim/core"
)

// Finder locates negative-weight cycles in a directed graph.
//
// A Finder owns its predecessor map exclusively; two Finders over the same
// graph may coexist as long as each is given its own distance map. The graph
// is borrowed read-only and must not mutate during FindNegCycle; the weight
// callable must be deterministic for the duration of one call.
type Finder[V comparable, W core.Number] struct {
	digraph core.Digraph[V]
	pred    map[V]V
}

// NewFinder creates a Finder over g. The weight type W is fixed per Finder
// instance: state carried between phases (the distance map) is W-typed.
// Complexity: O(1).
func NewFinder[V comparable, W core.Number](g core.Digraph[V]) *Finder[V, W] {
	return &Finder[V, W]{
		digraph: g,
		pred:    make(map[V]V),
	}
}

// FindNegCycle returns a negative-weight directed cycle under the given
// weights, or an empty cycle if none exists.
//
// dist is mutated in place. On an empty result it is a feasible potential:
// dist[v] ≤ dist[u] + weight(u,v) for every edge (u,v). On a non-empty
// result every returned edge satisfied dist[v] ≥ dist[u] + weight(u,v) at
// the moment of detection, and at least one of them strictly, which
// certifies the cycle's total weight is strictly negative.
//
// The returned cycle is an ordered closed walk but carries no guaranteed
// starting vertex; treat it as cyclic. When several negative cycles exist,
// the one first completed by the predecessor walk under the graph's vertex
// order is returned.
//
// Complexity: O(V·E) worst case; see the package documentation.
func (f *Finder[V, W]) FindNegCycle(
	dist core.DistanceMap[V, W],
	weight func(core.Edge[V]) W,
) core.Cycle[V] {
	// Each call starts from a fresh relaxation policy; distances persist.
	clear(f.pred)

	// Alternate relaxation and detection until a fixed point or a cycle.
	for f.relax(dist, weight) {
		handle, ok := f.findCycle()
		if !ok {
			continue
		}

		return f.cycleList(handle)
	}

	return core.Cycle[V]{}
}

// relax performs one full relaxation phase over every edge in graph order.
// Reports whether any distance was lowered. Self-loops relax like any other
// edge: a negative self-loop becomes pred[v] = v.
func (f *Finder[V, W]) relax(dist core.DistanceMap[V, W], weight func(core.Edge[V]) W) bool {
	changed := false
	var d W
	for _, utx := range f.digraph.Vertices() {
		for _, vtx := range f.digraph.OutNeighbors(utx) {
			d = dist.Dist(utx) + weight(core.Edge[V]{Tail: utx, Head: vtx})
			if dist.Dist(vtx) > d {
				f.pred[vtx] = utx
				dist.SetDist(vtx, d)
				changed = true
			}
		}
	}

	return changed
}

// findCycle probes the predecessor map for a cycle. It walks pred-chains
// from every vertex in graph order, stamping each visited vertex with the
// walk's root. Three outcomes per step:
//
//   - pred undefined: the chain dead-ends; move to the next root.
//   - next vertex stamped by an earlier root: the chain merges into
//     already-explored territory; move on without reporting.
//   - next vertex stamped by the current root: the chain closed on itself,
//     so that vertex lies on a cycle and is returned as the handle.
func (f *Finder[V, W]) findCycle() (handle V, ok bool) {
	visited := make(map[V]V, len(f.pred))
	for _, vtx := range f.digraph.Vertices() {
		if _, seen := visited[vtx]; seen {
			continue
		}
		utx := vtx
		for {
			visited[utx] = vtx
			next, has := f.pred[utx]
			if !has {
				break
			}
			utx = next
			if root, seen := visited[utx]; seen {
				if root == vtx {
					return utx, true
				}

				break
			}
		}
	}

	return handle, false
}

// cycleList reconstructs the cycle through handle by walking the
// predecessor chain until it returns to handle, emitting edges
// (pred[v], v) in the order encountered.
func (f *Finder[V, W]) cycleList(handle V) core.Cycle[V] {
	cycle := core.Cycle[V]{}
	vtx := handle
	for {
		utx := f.pred[vtx]
		cycle = append(cycle, core.Edge[V]{Tail: utx, Head: vtx})
		vtx = utx
		if vtx == handle {
			break
		}
	}

	return cycle
}

// isNegative re-checks the still-relaxable witness around the cycle through
// handle: at least one edge must satisfy dist[v] > dist[u] + weight(u,v).
// A false result signals a caller contract violation (graph mutated
// mid-call, or a non-deterministic weight callable), not an algorithm bug.
func (f *Finder[V, W]) isNegative(
	handle V,
	dist core.DistanceMap[V, W],
	weight func(core.Edge[V]) W,
) bool {
	vtx := handle
	for {
		utx := f.pred[vtx]
		if dist.Dist(vtx) > dist.Dist(utx)+weight(core.Edge[V]{Tail: utx, Head: vtx}) {
			return true
		}
		vtx = utx
		if vtx == handle {
			return false
		}
	}
}
