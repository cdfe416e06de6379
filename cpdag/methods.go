package cpdag

// This file implements queries and accessors: relation lookups,
// deterministic sorted listings, parent/child views, Clone, SameNodes,
// Equal and the canonical String rendering.

import (
	"sort"
	"strings"
)

// HasNode reports whether id is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// HasArc reports whether the directed arc tail→head exists.
// Complexity: O(1).
func (g *Graph) HasArc(tail, head string) bool {
	_, ok := g.arcs[orderedPair{tail, head}]

	return ok
}

// HasEdge reports whether the undirected edge a—b exists,
// in either argument order.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.edges[normPair(a, b)]

	return ok
}

// Adjacent reports whether the pair {a, b} carries any relation
// (arc in either orientation, or undirected edge).
// Complexity: O(1).
func (g *Graph) Adjacent(a, b string) bool {
	return g.related(a, b)
}

// Relation reports the state of the pair {a, b} relative to the argument
// order: ArcForward means a→b, ArcBackward means b→a.
//
// Returns:
//
//	ErrNodeNotFound - a or b is not a node of the graph.
//	ErrSelfLoop     - a == b; a pair needs two distinct nodes.
//
// Complexity: O(1).
func (g *Graph) Relation(a, b string) (Relation, error) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return None, ErrNodeNotFound
	}
	if a == b {
		return None, ErrSelfLoop
	}
	switch {
	case g.HasArc(a, b):
		return ArcForward, nil
	case g.HasArc(b, a):
		return ArcBackward, nil
	case g.HasEdge(a, b):
		return Undirected, nil
	default:
		return None, nil
	}
}

// Nodes returns all node labels in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Arcs returns all directed arcs sorted by (Tail, Head).
// Complexity: O(A log A).
func (g *Graph) Arcs() []Arc {
	out := make([]Arc, 0, len(g.arcs))
	for p := range g.arcs {
		out = append(out, Arc{Tail: p.tail, Head: p.head})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tail != out[j].Tail {
			return out[i].Tail < out[j].Tail
		}

		return out[i].Head < out[j].Head
	})

	return out
}

// Edges returns all undirected edges, each normalized to A < B,
// sorted by (A, B).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for p := range g.edges {
		out = append(out, Edge{A: p.a, B: p.b})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ArcCount returns the number of directed arcs.
func (g *Graph) ArcCount() int { return len(g.arcs) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RelationCount returns the number of related pairs (arcs plus edges).
func (g *Graph) RelationCount() int { return len(g.arcs) + len(g.edges) }

// Parents returns the sorted tails of all arcs pointing into id.
// Undirected neighbors are not parents.
//
// Returns ErrNodeNotFound when id is not a node of the graph.
// Complexity: O(A + k log k).
func (g *Graph) Parents(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	var out []string
	for p := range g.arcs {
		if p.head == id {
			out = append(out, p.tail)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Children returns the sorted heads of all arcs leaving id.
//
// Returns ErrNodeNotFound when id is not a node of the graph.
// Complexity: O(A + k log k).
func (g *Graph) Children(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	var out []string
	for p := range g.arcs {
		if p.tail == id {
			out = append(out, p.head)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Neighbors returns the sorted endpoints of all undirected edges
// touching id.
//
// Returns ErrNodeNotFound when id is not a node of the graph.
// Complexity: O(E + k log k).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	var out []string
	for p := range g.edges {
		switch id {
		case p.a:
			out = append(out, p.b)
		case p.b:
			out = append(out, p.a)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Clone returns a deep copy of the graph. The copy shares nothing with
// the original; mutating one never affects the other.
// Complexity: O(V + A + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes: make(map[string]struct{}, len(g.nodes)),
		arcs:  make(map[orderedPair]struct{}, len(g.arcs)),
		edges: make(map[pair]struct{}, len(g.edges)),
	}
	for id := range g.nodes {
		c.nodes[id] = struct{}{}
	}
	for p := range g.arcs {
		c.arcs[p] = struct{}{}
	}
	for p := range g.edges {
		c.edges[p] = struct{}{}
	}

	return c
}

// SameNodes reports whether g and other carry exactly the same node set.
// Complexity: O(V).
func (g *Graph) SameNodes(other *Graph) bool {
	if other == nil || len(g.nodes) != len(other.nodes) {
		return false
	}
	for id := range g.nodes {
		if _, ok := other.nodes[id]; !ok {
			return false
		}
	}

	return true
}

// Equal reports whether g and other have identical nodes, arcs and edges.
// Complexity: O(V + A + E).
func (g *Graph) Equal(other *Graph) bool {
	if !g.SameNodes(other) {
		return false
	}
	if len(g.arcs) != len(other.arcs) || len(g.edges) != len(other.edges) {
		return false
	}
	for p := range g.arcs {
		if _, ok := other.arcs[p]; !ok {
			return false
		}
	}
	for p := range g.edges {
		if _, ok := other.edges[p]; !ok {
			return false
		}
	}

	return true
}

// String renders the canonical arc-list notation: arcs as "A->B", edges
// as "A--B", isolated nodes by their label, all sorted, joined by "; ".
// The output round-trips through graphio.ParseNotation.
//
// Example: "A->B; B--C; D".
func (g *Graph) String() string {
	terms := make([]string, 0, len(g.arcs)+len(g.edges))
	touched := make(map[string]struct{}, len(g.nodes))
	for _, a := range g.Arcs() {
		terms = append(terms, a.Tail+"->"+a.Head)
		touched[a.Tail] = struct{}{}
		touched[a.Head] = struct{}{}
	}
	for _, e := range g.Edges() {
		terms = append(terms, e.A+"--"+e.B)
		touched[e.A] = struct{}{}
		touched[e.B] = struct{}{}
	}
	sort.Strings(terms)
	// isolated nodes keep the node set reconstructible from the string
	for _, id := range g.Nodes() {
		if _, ok := touched[id]; !ok {
			terms = append(terms, id)
		}
	}

	return strings.Join(terms, "; ")
}
