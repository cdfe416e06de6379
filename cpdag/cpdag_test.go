package cpdag_test

import (
	"testing"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddNode_Validation verifies empty-label rejection and idempotency.
func TestAddNode_Validation(t *testing.T) {
	g := cpdag.New()

	assert.ErrorIs(t, g.AddNode(""), cpdag.ErrEmptyNodeID, "empty label must error")
	assert.NoError(t, g.AddNode("A"), "fresh label must be accepted")
	assert.NoError(t, g.AddNode("A"), "re-adding a node is a no-op")
	assert.Equal(t, 1, g.NodeCount(), "duplicate AddNode must not grow the node set")
}

// TestAddArc_AutoRegistersEndpoints verifies arcs create their endpoints.
func TestAddArc_AutoRegistersEndpoints(t *testing.T) {
	g := cpdag.New()

	require.NoError(t, g.AddArc("A", "B"))
	assert.True(t, g.HasNode("A"), "tail must be registered")
	assert.True(t, g.HasNode("B"), "head must be registered")
	assert.True(t, g.HasArc("A", "B"), "arc A->B must exist")
	assert.False(t, g.HasArc("B", "A"), "reverse arc must not exist")
}

// TestAddArc_Rejections covers self-loops, empty labels and pair conflicts.
func TestAddArc_Rejections(t *testing.T) {
	g := cpdag.New()

	assert.ErrorIs(t, g.AddArc("A", "A"), cpdag.ErrSelfLoop, "self-loop must error")
	assert.ErrorIs(t, g.AddArc("", "B"), cpdag.ErrEmptyNodeID, "empty tail must error")
	assert.ErrorIs(t, g.AddArc("A", ""), cpdag.ErrEmptyNodeID, "empty head must error")

	require.NoError(t, g.AddArc("A", "B"))
	assert.ErrorIs(t, g.AddArc("A", "B"), cpdag.ErrRelationExists, "duplicate arc must error")
	assert.ErrorIs(t, g.AddArc("B", "A"), cpdag.ErrRelationExists, "reversed arc on a taken pair must error")
	assert.ErrorIs(t, g.AddEdge("A", "B"), cpdag.ErrRelationExists, "edge on an arc pair must error")
}

// TestAddEdge_OrderInsensitive verifies undirected storage normalization.
func TestAddEdge_OrderInsensitive(t *testing.T) {
	g := cpdag.New()

	require.NoError(t, g.AddEdge("B", "A"))
	assert.True(t, g.HasEdge("A", "B"), "edge must be visible in either order")
	assert.True(t, g.HasEdge("B", "A"), "edge must be visible in either order")
	assert.ErrorIs(t, g.AddEdge("A", "B"), cpdag.ErrRelationExists, "same pair in other order is a conflict")
	assert.ErrorIs(t, g.AddArc("B", "A"), cpdag.ErrRelationExists, "arc on an edge pair is a conflict")
}

// TestRelation_FourStates walks every relation state relative to argument order.
func TestRelation_FourStates(t *testing.T) {
	g := cpdag.New("D")
	require.NoError(t, g.AddArc("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	rel, err := g.Relation("A", "B")
	require.NoError(t, err)
	assert.Equal(t, cpdag.ArcForward, rel, "A->B seen from (A,B) is forward")

	rel, err = g.Relation("B", "A")
	require.NoError(t, err)
	assert.Equal(t, cpdag.ArcBackward, rel, "A->B seen from (B,A) is backward")

	rel, err = g.Relation("C", "B")
	require.NoError(t, err)
	assert.Equal(t, cpdag.Undirected, rel, "B--C is undirected from either side")

	rel, err = g.Relation("A", "D")
	require.NoError(t, err)
	assert.Equal(t, cpdag.None, rel, "unrelated pair reports None")
}

// TestRelation_Errors covers unknown nodes and identical endpoints.
func TestRelation_Errors(t *testing.T) {
	g := cpdag.New("A", "B")

	_, err := g.Relation("A", "Z")
	assert.ErrorIs(t, err, cpdag.ErrNodeNotFound, "unknown node must error")

	_, err = g.Relation("A", "A")
	assert.ErrorIs(t, err, cpdag.ErrSelfLoop, "a pair needs two distinct nodes")
}

// TestAccessors_Deterministic verifies sorted, stable listings.
func TestAccessors_Deterministic(t *testing.T) {
	g := cpdag.New()
	require.NoError(t, g.AddArc("C", "A"))
	require.NoError(t, g.AddArc("B", "A"))
	require.NoError(t, g.AddEdge("D", "B"))
	require.NoError(t, g.AddNode("E"))

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Nodes())
	assert.Equal(t, []cpdag.Arc{{Tail: "B", Head: "A"}, {Tail: "C", Head: "A"}}, g.Arcs())
	assert.Equal(t, []cpdag.Edge{{A: "B", B: "D"}}, g.Edges())
	assert.Equal(t, 3, g.RelationCount(), "two arcs plus one edge")
}

// TestParentsChildrenNeighbors verifies the directed and undirected views.
func TestParentsChildrenNeighbors(t *testing.T) {
	g := cpdag.New()
	require.NoError(t, g.AddArc("A", "C"))
	require.NoError(t, g.AddArc("B", "C"))
	require.NoError(t, g.AddArc("C", "D"))
	require.NoError(t, g.AddEdge("C", "E"))

	parents, err := g.Parents("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, parents, "arc tails into C")

	children, err := g.Children("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, children, "arc heads out of C")

	neighbors, err := g.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, neighbors, "undirected endpoints only")

	_, err = g.Parents("Z")
	assert.ErrorIs(t, err, cpdag.ErrNodeNotFound)
}

// TestClone_Isolation verifies a clone shares no storage with the source.
func TestClone_Isolation(t *testing.T) {
	g := cpdag.New()
	require.NoError(t, g.AddArc("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	c := g.Clone()
	require.True(t, g.Equal(c), "clone must equal the source")

	require.NoError(t, c.AddArc("C", "D"))
	assert.False(t, g.HasNode("D"), "mutating the clone must not touch the source")
	assert.False(t, g.Equal(c), "diverged clone must no longer be equal")
}

// TestSameNodesAndEqual covers node-set and full structural equality.
func TestSameNodesAndEqual(t *testing.T) {
	a := cpdag.New("X", "Y", "Z")
	b := cpdag.New("X", "Y", "Z")
	assert.True(t, a.SameNodes(b), "identical node sets")
	assert.True(t, a.Equal(b), "both empty over the same nodes")

	require.NoError(t, a.AddArc("X", "Y"))
	assert.True(t, a.SameNodes(b), "relations do not affect SameNodes")
	assert.False(t, a.Equal(b), "arc present on one side only")

	require.NoError(t, b.AddEdge("X", "Y"))
	assert.False(t, a.Equal(b), "arc vs edge on the same pair differ")

	c := cpdag.New("X", "Y")
	assert.False(t, a.SameNodes(c), "different node sets")
	assert.False(t, a.SameNodes(nil), "nil graph never matches")
}

// TestString_CanonicalNotation verifies the sorted arc-list rendering.
func TestString_CanonicalNotation(t *testing.T) {
	g := cpdag.New("D")
	require.NoError(t, g.AddEdge("C", "B"))
	require.NoError(t, g.AddArc("A", "B"))

	assert.Equal(t, "A->B; B--C; D", g.String(), "arcs, normalized edges, then isolated nodes")
	assert.Equal(t, "", cpdag.New().String(), "empty graph renders empty")
}
