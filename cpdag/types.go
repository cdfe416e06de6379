// Package cpdag: type and error declarations for the CPDAG value type.
//
// This file declares Relation (the closed four-state pair relation),
// Arc, Edge, Graph and the sentinel errors shared by all constructors
// and mutators.
//
// Errors:
//
//	ErrEmptyNodeID    - a node label is the empty string.
//	ErrSelfLoop       - both endpoints of an arc or edge are the same node.
//	ErrRelationExists - the node pair already carries an arc or an edge.
//	ErrNodeNotFound   - a queried node is not part of the graph.
package cpdag

import "errors"

// Sentinel errors for CPDAG construction and queries.
var (
	// ErrEmptyNodeID indicates that a provided node label is empty.
	ErrEmptyNodeID = errors.New("cpdag: node ID is empty")

	// ErrSelfLoop indicates an arc or edge with identical endpoints.
	ErrSelfLoop = errors.New("cpdag: self-loop not allowed")

	// ErrRelationExists indicates the unordered pair already has a relation.
	// A valid CPDAG carries at most one of arc / edge per pair.
	ErrRelationExists = errors.New("cpdag: pair already related")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("cpdag: node not found")
)

// Relation is the state of an unordered node pair {a, b}, reported
// relative to the argument order of the query that produced it.
//
// The four cases are closed and mutually exclusive: for any distinct
// pair exactly one holds. Callers switching on a Relation should cover
// all four constants; there is no fifth state to default to.
type Relation uint8

const (
	// None: the pair carries no arc and no edge.
	None Relation = iota

	// ArcForward: directed arc first→second.
	ArcForward

	// ArcBackward: directed arc second→first.
	ArcBackward

	// Undirected: non-directed edge between the two nodes.
	Undirected
)

// String returns a short human-readable name for the relation state.
func (r Relation) String() string {
	switch r {
	case None:
		return "none"
	case ArcForward:
		return "arc-forward"
	case ArcBackward:
		return "arc-backward"
	case Undirected:
		return "undirected"
	default:
		return "invalid"
	}
}

// Arc is a directed Tail→Head connection between two nodes.
type Arc struct {
	// Tail is the source node label.
	Tail string

	// Head is the destination node label.
	Head string
}

// Edge is an undirected connection between two nodes.
// Accessors always normalize it so that A < B lexicographically.
type Edge struct {
	A string
	B string
}

// pair is the internal unordered map key for edges: a < b always.
type pair struct{ a, b string }

// orderedPair is the internal ordered map key for arcs: tail→head.
type orderedPair struct{ tail, head string }

// normPair builds the normalized unordered key for {a, b}.
func normPair(a, b string) pair {
	if a < b {
		return pair{a, b}
	}

	return pair{b, a}
}

// Graph is an in-memory CPDAG: a node set plus directed arcs and
// undirected edges, with at most one relation per unordered node pair.
//
// Graph is built once by its owner (an algorithm adapter, a ground-truth
// loader, a generator) and then treated as immutable input by consumers;
// concurrent readers need no coordination, concurrent mutation is not
// supported.
type Graph struct {
	nodes map[string]struct{}     // node label set
	arcs  map[orderedPair]struct{} // tail→head
	edges map[pair]struct{}        // normalized a<b
}

// New creates an empty Graph and registers the given nodes, if any.
// Empty labels are skipped and duplicates collapse; use AddNode when an
// error is preferred.
// Complexity: O(len(nodes)).
func New(nodes ...string) *Graph {
	g := &Graph{
		nodes: make(map[string]struct{}, len(nodes)),
		arcs:  make(map[orderedPair]struct{}),
		edges: make(map[pair]struct{}),
	}
	for _, id := range nodes {
		if id == "" {
			continue // skip empties; AddNode reports them
		}
		g.nodes[id] = struct{}{}
	}

	return g
}
