// Package cpdag defines the Graph value type used across the benchmark:
// a completed partially directed acyclic graph (CPDAG) holding directed
// arcs and undirected edges over a labeled node set.
//
// 🚀 What is a CPDAG?
//
//	A CPDAG is the canonical representative of a Markov equivalence class
//	of DAGs: arcs whose orientation is identified by the data stay
//	directed, the rest collapse into undirected edges. Every structure
//	learner in this repository, whatever it emits natively (DAG, weight
//	matrix, partially directed graph), is normalized into a cpdag.Graph
//	before scoring.
//
// ✨ Key features:
//   - strict construction: no self-loops, no empty labels, at most one
//     relation per node pair (arc and edge are mutually exclusive)
//   - four-state relation queries: Relation(a, b) reports exactly one of
//     ArcForward, ArcBackward, Undirected or None for any distinct pair
//   - deterministic accessors: Nodes, Arcs and Edges return sorted slices,
//     so iteration order never depends on map layout
//   - value semantics for comparison workflows: Clone, SameNodes, Equal
//
// ⚙️ Usage:
//
//	g := cpdag.New()
//	_ = g.AddArc("A", "B")  // A→B, nodes auto-registered
//	_ = g.AddEdge("B", "C") // B—C
//	_ = g.AddNode("D")      // isolated node
//
//	rel, _ := g.Relation("B", "A") // cpdag.ArcBackward
//	fmt.Println(g)                 // "A->B; B--C; D"
//
// Construction errors are sentinel values (ErrSelfLoop, ErrRelationExists,
// ErrEmptyNodeID, ErrNodeNotFound) and always indicate a caller bug, not a
// runtime condition to retry.
//
// Performance: all single-pair operations are O(1) map lookups; sorted
// accessors are O(k log k) in the number of returned items.
package cpdag
