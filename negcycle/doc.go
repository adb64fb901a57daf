// Package negcycle finds a negative-weight directed cycle in a weighted
// digraph, or proves none exists by leaving the distance map as a feasible
// potential.
//
// Unlike Bellman-Ford, the finder:
//
//   - needs no source vertex;
//   - detects cycles during relaxation, through the predecessor map,
//     instead of after V-1 full passes;
//   - preserves distance state across calls, so a caller that re-weights
//     edges (parametric search) restarts from an almost-feasible potential.
//
// The algorithm alternates two phases until a fixed point:
//
//  1. Relaxation: for each vertex u in graph order and each out-edge (u,v),
//     if dist[v] > dist[u] + weight(u,v), lower dist[v] and set pred[v] = u.
//  2. Detection: walk the predecessor map from every vertex; a walk that
//     re-enters itself confirms a cycle, which is then extracted by
//     following pred from the confirmed vertex back around.
//
// If a relaxation phase performs no update the finder returns an empty
// cycle; at that moment dist satisfies dist[v] ≤ dist[u] + weight(u,v) for
// every edge, i.e. it is a feasible potential.
//
// Complexity:
//
//   - Time:  O(V·E) worst case (each phase is O(E) relaxation + O(V)
//     detection; at most O(V) phases under integer weights).
//   - Space: O(V) for the predecessor and visited maps.
//
// Termination is guaranteed for integer (and rational-scaled) weights.
// Under floating-point weights the caller must bound iterations; the
// parametric solver owns that cap, the finder itself has none.
//
// Usage:
//
//	finder := negcycle.NewFinder[string, int](g)
//	cycle := finder.FindNegCycle(dist, weight)
//	if len(cycle) == 0 {
//	    // dist is now a feasible potential
//	}
package negcycle
