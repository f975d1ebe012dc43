package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestComponents_WallSplitsGrid checks a full-column wall yields two regions.
func TestComponents_WallSplitsGrid(t *testing.T) {
	g := gridgraph.MustParse(`
		.#.
		.#.
		.#.
	`)
	comps := g.Components()
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []pos{{0, 0}, {1, 0}, {2, 0}}, comps[0])
	assert.ElementsMatch(t, []pos{{0, 2}, {1, 2}, {2, 2}}, comps[1])
}

// TestComponents_AllBlocked yields no regions.
func TestComponents_AllBlocked(t *testing.T) {
	g := gridgraph.MustParse("##\n##\n")
	assert.Empty(t, g.Components())
}

// TestComponents_RolesAreWalkable treats Start/End and search marks as walkable.
func TestComponents_RolesAreWalkable(t *testing.T) {
	g := gridgraph.MustParse(`
		Sx
		#E
	`)
	comps := g.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 3)
}

func TestRegion(t *testing.T) {
	g := gridgraph.MustParse(`
		..#.
		.##.
		#...
		..#.
	`)
	got, err := g.Region(pos{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []pos{{1, 0}, {0, 1}}, got[1:], "BFS order follows neighbor order")
	assert.ElementsMatch(t, []pos{{0, 0}, {1, 0}, {0, 1}}, got)

	got, err = g.Region(pos{3, 3})
	require.NoError(t, err)
	assert.Len(t, got, 8)

	got, err = g.Region(pos{0, 2})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = g.Region(pos{4, 0})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
