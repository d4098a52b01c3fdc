package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hue/coloring"
	"github.com/katalvlaran/hue/core"
)

// TestWelshPowell_Path pins the documented tie-break: degree descending,
// equal degrees in insertion order, extension over the same sorted order.
//
// Path 1–2–3–4: degrees (1,2,2,1) sort to [2 3 1 4]. Color 1 seeds at 2
// and extends to 4; color 2 seeds at 3 and extends to 1.
func TestWelshPowell_Path(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))

	res, err := coloring.WelshPowell(g)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{2: 1, 4: 1, 3: 2, 1: 2}, res.Assignment)
}

// TestWelshPowell_ExtensionPass distinguishes Welsh–Powell from plain
// greedy-by-degree: the second color class must absorb every compatible
// uncolored vertex before a third color is opened.
//
// Two disjoint triangles share no edges, so each color class spans both:
// exactly 3 colors, not 6.
func TestWelshPowell_ExtensionPass(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	res, err := coloring.WelshPowell(g)
	require.NoError(t, err)
	require.NoError(t, coloring.Verify(g, res))

	assert.Equal(t, 3, res.NumColors())
	// every class holds one vertex from each triangle
	for c, members := range res.Classes() {
		assert.Len(t, members, 2, "class %d", c)
	}
}

// TestWelshPowell_DenseColors: colors are assigned from 1 upward with no gaps.
func TestWelshPowell_DenseColors(t *testing.T) {
	g := core.NewGraph()
	for u := 1; u <= 5; u++ {
		for v := u + 1; v <= 5; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}

	res, err := coloring.WelshPowell(g)
	require.NoError(t, err)

	used := res.Classes()
	for c := 1; c <= res.NumColors(); c++ {
		assert.NotEmpty(t, used[c], "color %d must be in use", c)
	}
}
