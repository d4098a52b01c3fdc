package dot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hue/coloring"
	"github.com/katalvlaran/hue/core"
	"github.com/katalvlaran/hue/dot"
)

func TestWrite_ColoredTriangle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(1, 3))

	res, err := coloring.Greedy(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, g, res))

	want := `graph {
  node [style=filled];
  1 [fillcolor=lightblue];
  2 [fillcolor=lightgreen];
  3 [fillcolor=lightsalmon];
  1 -- 2;
  1 -- 3;
  2 -- 3;
}
`
	assert.Equal(t, want, buf.String())
}

func TestWrite_NilResult(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(7)

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, g, nil))

	assert.Contains(t, buf.String(), "7 [style=solid];")
	assert.NotContains(t, buf.String(), "fillcolor")
}

func TestWrite_PaletteWraps(t *testing.T) {
	// A 14-clique needs 14 colors, more than the palette holds, so at
	// least one fill name must repeat.
	g := core.NewGraph()
	for u := 1; u <= 14; u++ {
		for v := u + 1; v <= 14; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	res, err := coloring.Greedy(g)
	require.NoError(t, err)
	require.Equal(t, 14, res.NumColors())

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, g, res))

	assert.Equal(t, 2, strings.Count(buf.String(), "fillcolor=lightblue];"),
		"colors 1 and 13 share the first palette entry")
}

func TestWrite_NilGraph(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, dot.Write(&buf, nil, nil), dot.ErrNilGraph)
}

func TestWrite_Deterministic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(2, 3))
	res, err := coloring.DSATUR(g)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, dot.Write(&a, g, res))
	require.NoError(t, dot.Write(&b, g, res))
	assert.Equal(t, a.String(), b.String())
}
