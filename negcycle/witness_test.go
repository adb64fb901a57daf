package negcycle

import (
	"testing"

	"github.com/katalvlaran/netoptim/core"
	"github.com/katalvlaran/netoptim/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsNegative_Witness checks that the still-relaxable witness holds for a
// freshly detected cycle, and stops holding if the weights change under the
// finder's feet.
func TestIsNegative_Witness(t *testing.T) {
	g := gen.Ring(2)
	neg := func(core.Edge[int]) int { return -1 }
	finder := NewFinder[int, int](g)
	dist := core.NewMapDistance[int, int]()

	cycle := finder.FindNegCycle(dist, neg)
	require.NotEmpty(t, cycle)

	// cycleList starts emission at the handle, so the first head is it.
	handle := cycle[0].Head
	assert.True(t, finder.isNegative(handle, dist, neg))

	// A weight callable that flipped sign mid-call breaks the certificate.
	pos := func(core.Edge[int]) int { return 1 }
	assert.False(t, finder.isNegative(handle, dist, pos))
}
