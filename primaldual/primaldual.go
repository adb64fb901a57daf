package primaldual

import (
	"github.com/katalvlaran/netoptim/core"
)

// lazyGap tracks the residual dual capacity of each vertex, starting from
// its weight on first touch.
type lazyGap[V comparable, W core.Number] struct {
	gap    map[V]W
	weight func(V) W
}

func newLazyGap[V comparable, W core.Number](weight func(V) W) *lazyGap[V, W] {
	return &lazyGap[V, W]{gap: make(map[V]W), weight: weight}
}

func (l *lazyGap[V, W]) of(v V) W {
	if val, ok := l.gap[v]; ok {
		return val
	}
	val := l.weight(v)
	l.gap[v] = val

	return val
}

func (l *lazyGap[V, W]) set(v V, val W) {
	l.gap[v] = val
}

// MinVertexCoverPD computes a weighted vertex cover of at most twice the
// optimum cost. cover is updated in place; vertices already marked true are
// treated as paid for and contribute nothing to the returned cost. Edges
// whose both endpoints are uncovered charge the endpoint with the smaller
// remaining gap (the head on ties) and discount the other endpoint.
// Returns the total weight of the vertices this call added to cover.
func MinVertexCoverPD[V comparable, W core.Number](
	g core.EdgeLister[V],
	cover map[V]bool,
	weight func(V) W,
) W {
	gap := newLazyGap[V, W](weight)
	var totalPrimal, totalDual W
	for _, e := range g.Edges() {
		utx, vtx := e.Tail, e.Head
		if cover[utx] || cover[vtx] {
			continue
		}
		if gap.of(utx) < gap.of(vtx) {
			utx, vtx = vtx, utx
		}
		cover[vtx] = true
		totalDual += gap.of(vtx)
		totalPrimal += weight(vtx)
		gap.set(utx, gap.of(utx)-gap.of(vtx))
		gap.set(vtx, 0)
	}
	_ = totalDual // dual <= primal <= 2*dual holds by construction

	return totalPrimal
}

// MinMaximalIndependentSetPD computes a low-weight maximal independent set.
// indset and dep are updated in place; a vertex pre-marked in indset is
// honored and its neighborhood is retired around it. For each live vertex
// the cheapest-gap member of its closed neighborhood joins the set, its
// neighborhood becomes dependent, and the remaining competitors are
// discounted. Returns the total weight of the vertices this call added.
func MinMaximalIndependentSetPD[V comparable, W core.Number](
	g core.Digraph[V],
	indset map[V]bool,
	dep map[V]bool,
	weight func(V) W,
) W {
	retire := func(utx V) {
		dep[utx] = true
		for _, vtx := range g.OutNeighbors(utx) {
			dep[vtx] = true
		}
	}

	gap := newLazyGap[V, W](weight)
	var totalPrimal, totalDual W
	for _, utx := range g.Vertices() {
		if dep[utx] {
			continue
		}
		if indset[utx] {
			retire(utx)
			continue
		}

		// Cheapest remaining gap in the closed neighborhood of utx.
		minVal := gap.of(utx)
		minVtx := utx
		for _, vtx := range g.OutNeighbors(utx) {
			if dep[vtx] {
				continue
			}
			if gv := gap.of(vtx); minVal > gv {
				minVal = gv
				minVtx = vtx
			}
		}

		retire(minVtx)
		indset[minVtx] = true
		totalPrimal += weight(minVtx)
		totalDual += minVal
		if minVtx == utx {
			continue
		}
		for _, vtx := range g.OutNeighbors(utx) {
			gap.set(vtx, gap.of(vtx)-minVal)
		}
	}
	_ = totalDual

	return totalPrimal
}
