package dot

import (
	"strings"
	"testing"

	"github.com/sandell/mkbsc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wagonGame(t *testing.T) *mkbsc.Game {
	t.Helper()
	g, err := mkbsc.Create(
		[]string{"0", "1", "2"}, "0",
		[][]string{{"w", "p"}, {"w", "p"}},
		[]mkbsc.Edge{
			mkbsc.To1("0", mkbsc.JointAction{"p", "p"}, "0"), mkbsc.To1("0", mkbsc.JointAction{"w", "w"}, "0"),
			mkbsc.To1("0", mkbsc.JointAction{"w", "p"}, "1"), mkbsc.To1("0", mkbsc.JointAction{"p", "w"}, "2"),
			mkbsc.To1("1", mkbsc.JointAction{"p", "p"}, "1"), mkbsc.To1("1", mkbsc.JointAction{"w", "w"}, "1"),
			mkbsc.To1("1", mkbsc.JointAction{"w", "p"}, "2"), mkbsc.To1("1", mkbsc.JointAction{"p", "w"}, "0"),
			mkbsc.To1("2", mkbsc.JointAction{"p", "p"}, "2"), mkbsc.To1("2", mkbsc.JointAction{"w", "w"}, "2"),
			mkbsc.To1("2", mkbsc.JointAction{"w", "p"}, "0"), mkbsc.To1("2", mkbsc.JointAction{"p", "w"}, "1"),
		},
		[]mkbsc.Grouping{
			{Classes: [][]string{{"0", "1"}, {"2"}}},
			{Classes: [][]string{{"0", "2"}, {"1"}}},
		},
	)
	require.NoError(t, err)
	return g
}

func TestEncodeWagon(t *testing.T) {
	out, err := NewEncoder().EncodeToBytes(wagonGame(t))
	require.NoError(t, err)
	dot := string(out)

	assert.True(t, strings.HasPrefix(dot, "digraph {"))
	assert.Contains(t, dot, `n0 [label="0"]`)
	assert.Contains(t, dot, "hidden [shape=none")
	assert.Contains(t, dot, "hidden -> n0")

	// Self-loops collapse into one grouped, back-directed edge.
	assert.Contains(t, dot, `n0 -> n0 [label="(p, p), (w, w)", dir=back]`)

	// Two observation pairs, one per player.
	assert.Contains(t, dot, `label="~0"`)
	assert.Contains(t, dot, `label="~1"`)
}

func TestEncodeCollapsedAlphabetEdge(t *testing.T) {
	g, err := mkbsc.Create(
		[]string{"q"}, "q",
		[][]string{{"a", "b"}},
		[]mkbsc.Edge{{From: "q", To: []string{"q"}}},
		[]mkbsc.Grouping{{Others: true}},
	)
	require.NoError(t, err)

	out, err := NewEncoder().EncodeToBytes(g)
	require.NoError(t, err)

	// Every action of the alphabet connects the pair: the label collapses.
	assert.Contains(t, string(out), `label="(-)"`)
}

func TestEncodeOptions(t *testing.T) {
	g := wagonGame(t)

	out, err := NewEncoder(WithoutEdgeLabels(), WithoutObservations()).EncodeToBytes(g)
	require.NoError(t, err)
	dot := string(out)
	assert.NotContains(t, dot, "(p, p)")
	assert.NotContains(t, dot, "style=dashed")

	gk, err := g.KBSC()
	require.NoError(t, err)
	out, err = NewEncoder(WithLabelStyle(LabelIsocheck)).EncodeToBytes(gk)
	require.NoError(t, err)
	// Isocheck labels show consistent bases, not nested belief tuples.
	dot = string(out)
	assert.NotContains(t, dot, "} | {")
	assert.Contains(t, dot, `[label="0"]`)
}
