package cpdag

// This file implements construction: AddNode, AddArc, AddEdge.
// All mutators validate strictly and return sentinel errors; a Graph can
// never hold a self-loop, an empty label, or two relations on one pair.

// AddNode registers a node label. Adding an existing node is a no-op.
//
// Returns ErrEmptyNodeID when id is empty.
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.nodes[id] = struct{}{}

	return nil
}

// AddArc adds the directed arc tail→head. Unknown endpoints are
// registered automatically, mirroring the usual adjacency-building
// convenience of graph constructors.
//
// Returns:
//
//	ErrEmptyNodeID    - tail or head is empty.
//	ErrSelfLoop       - tail == head.
//	ErrRelationExists - the pair already carries an arc (either
//	                    orientation) or an undirected edge.
//
// Complexity: O(1).
func (g *Graph) AddArc(tail, head string) error {
	if err := g.checkPair(tail, head); err != nil {
		return err
	}
	g.nodes[tail] = struct{}{}
	g.nodes[head] = struct{}{}
	g.arcs[orderedPair{tail, head}] = struct{}{}

	return nil
}

// AddEdge adds the undirected edge a—b. Unknown endpoints are
// registered automatically. Argument order does not matter.
//
// Returns the same sentinel set as AddArc.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string) error {
	if err := g.checkPair(a, b); err != nil {
		return err
	}
	g.nodes[a] = struct{}{}
	g.nodes[b] = struct{}{}
	g.edges[normPair(a, b)] = struct{}{}

	return nil
}

// checkPair validates a candidate pair before insertion:
//  1. both labels non-empty,
//  2. endpoints distinct,
//  3. pair not already related (arc in either orientation, or edge).
func (g *Graph) checkPair(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if a == b {
		return ErrSelfLoop
	}
	if g.related(a, b) {
		return ErrRelationExists
	}

	return nil
}

// related reports whether the unordered pair {a, b} carries any relation.
func (g *Graph) related(a, b string) bool {
	if _, ok := g.arcs[orderedPair{a, b}]; ok {
		return true
	}
	if _, ok := g.arcs[orderedPair{b, a}]; ok {
		return true
	}
	_, ok := g.edges[normPair(a, b)]

	return ok
}
