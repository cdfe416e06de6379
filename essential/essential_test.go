package essential_test

import (
	"testing"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/essential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dag builds a directed graph from (tail, head) pairs.
func dag(t *testing.T, arcs ...[2]string) *cpdag.Graph {
	t.Helper()
	g := cpdag.New()
	for _, a := range arcs {
		require.NoError(t, g.AddArc(a[0], a[1]))
	}

	return g
}

// TestFromDAG_InputValidation rejects nil, mixed and cyclic inputs.
func TestFromDAG_InputValidation(t *testing.T) {
	_, err := essential.FromDAG(nil)
	assert.ErrorIs(t, err, essential.ErrNilGraph)

	mixed := cpdag.New()
	require.NoError(t, mixed.AddEdge("A", "B"))
	_, err = essential.FromDAG(mixed)
	assert.ErrorIs(t, err, essential.ErrNotDirected, "undirected edges disqualify a DAG")

	cyclic := dag(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	_, err = essential.FromDAG(cyclic)
	assert.ErrorIs(t, err, essential.ErrCyclic)
}

// TestFromDAG_ChainUndirects: A→B→C has no v-structure, both arcs are
// reversible, so the essential graph is the bare skeleton.
func TestFromDAG_ChainUndirects(t *testing.T) {
	g, err := essential.FromDAG(dag(t, [2]string{"A", "B"}, [2]string{"B", "C"}))
	require.NoError(t, err)

	assert.Zero(t, g.ArcCount(), "chain arcs are not compelled")
	assert.Equal(t, []cpdag.Edge{{A: "A", B: "B"}, {A: "B", B: "C"}}, g.Edges())
}

// TestFromDAG_ForkUndirects: A←B→C is equivalent to the chain, same class.
func TestFromDAG_ForkUndirects(t *testing.T) {
	g, err := essential.FromDAG(dag(t, [2]string{"B", "A"}, [2]string{"B", "C"}))
	require.NoError(t, err)

	assert.Zero(t, g.ArcCount())
	assert.Equal(t, 2, g.EdgeCount())
}

// TestFromDAG_ColliderStaysDirected: A→C←B with A, B non-adjacent is a
// v-structure; its orientation is identified.
func TestFromDAG_ColliderStaysDirected(t *testing.T) {
	g, err := essential.FromDAG(dag(t, [2]string{"A", "C"}, [2]string{"B", "C"}))
	require.NoError(t, err)

	assert.Zero(t, g.EdgeCount(), "collider arcs stay directed")
	assert.True(t, g.HasArc("A", "C"))
	assert.True(t, g.HasArc("B", "C"))
}

// TestFromDAG_ShieldedTriangleUndirects: a complete triangle has no
// v-structure (the collider is shielded), every orientation is reversible.
func TestFromDAG_ShieldedTriangleUndirects(t *testing.T) {
	g, err := essential.FromDAG(dag(t,
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "C"}))
	require.NoError(t, err)

	assert.Zero(t, g.ArcCount())
	assert.Equal(t, 3, g.EdgeCount())
}

// TestFromDAG_R1Propagation: the collider A→B←C compels B→D through R1,
// because orienting D→B would create a second, unobserved collider.
func TestFromDAG_R1Propagation(t *testing.T) {
	g, err := essential.FromDAG(dag(t,
		[2]string{"A", "B"}, [2]string{"C", "B"}, [2]string{"B", "D"}))
	require.NoError(t, err)

	assert.True(t, g.HasArc("A", "B"))
	assert.True(t, g.HasArc("C", "B"))
	assert.True(t, g.HasArc("B", "D"), "R1 must orient the tail away from the collider")
	assert.Zero(t, g.EdgeCount())
}

// TestFromDAG_R2ClosesTheCycleArgument: with a→c, p→c compelled and the
// chain a→c→b, the pair a—b can only point forward (R2 after R1).
func TestFromDAG_R2ClosesTheCycleArgument(t *testing.T) {
	g, err := essential.FromDAG(dag(t,
		[2]string{"a", "c"}, [2]string{"p", "c"},
		[2]string{"c", "b"}, [2]string{"a", "b"}))
	require.NoError(t, err)

	assert.Zero(t, g.EdgeCount(), "every arc in this pattern is compelled")
	assert.True(t, g.HasArc("a", "c"))
	assert.True(t, g.HasArc("p", "c"))
	assert.True(t, g.HasArc("c", "b"), "R1 orients c→b off the v-structure")
	assert.True(t, g.HasArc("a", "b"), "R2 forbids b→a, which would close a cycle")
}

// TestFromDAG_R3Kite: the kite pattern forces a→b via R3 while the two
// flanks a—c, a—d stay reversible.
func TestFromDAG_R3Kite(t *testing.T) {
	g, err := essential.FromDAG(dag(t,
		[2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"a", "d"},
		[2]string{"c", "b"}, [2]string{"d", "b"}))
	require.NoError(t, err)

	assert.True(t, g.HasArc("c", "b"), "v-structure c→b←d")
	assert.True(t, g.HasArc("d", "b"), "v-structure c→b←d")
	assert.True(t, g.HasArc("a", "b"), "R3 compels the middle arc")
	assert.True(t, g.HasEdge("a", "c"), "flank stays reversible")
	assert.True(t, g.HasEdge("a", "d"), "flank stays reversible")
	assert.Equal(t, 3, g.ArcCount())
	assert.Equal(t, 2, g.EdgeCount())
}

// TestFromDAG_Diamond: only the collider side of the diamond is compelled.
func TestFromDAG_Diamond(t *testing.T) {
	g, err := essential.FromDAG(dag(t,
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"}))
	require.NoError(t, err)

	assert.True(t, g.HasArc("B", "D"))
	assert.True(t, g.HasArc("C", "D"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("A", "C"))
}

// TestFromDAG_PreservesNodeSet: isolated nodes survive the conversion.
func TestFromDAG_PreservesNodeSet(t *testing.T) {
	in := dag(t, [2]string{"A", "B"})
	require.NoError(t, in.AddNode("Z"))

	g, err := essential.FromDAG(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "Z"}, g.Nodes())
}

// TestFromDAG_DoesNotMutateInput: the input DAG is read-only.
func TestFromDAG_DoesNotMutateInput(t *testing.T) {
	in := dag(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	snapshot := in.Clone()

	_, err := essential.FromDAG(in)
	require.NoError(t, err)

	assert.True(t, in.Equal(snapshot), "conversion must not touch the input")
}
