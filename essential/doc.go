// Package essential converts a DAG into its essential graph, the CPDAG
// representing the DAG's whole Markov equivalence class.
//
// 🚀 Why convert at all?
//
//	Score-based and constraint-based learners emit fully directed DAGs,
//	but observational data cannot distinguish a DAG from its equivalence
//	class: A→B and B→A fit the same distribution unless a v-structure
//	pins the orientation. Comparing raw DAGs therefore punishes
//	candidates for orientation choices no algorithm could have made.
//	Normalizing both sides to their essential graph first makes the
//	comparison fair: compelled arcs stay directed, reversible arcs
//	become undirected edges.
//
// ✨ How it works:
//  1. validate the input: directed arcs only, acyclic;
//  2. keep every v-structure x→z←y (x, y non-adjacent) directed;
//  3. undirect every other arc;
//  4. close under Meek's orientation rules R1–R3 until fixpoint.
//
// R1–R3 are complete when the only initial orientations come from
// v-structures, which is exactly this situation; rule R4 only becomes
// necessary once external background knowledge injects extra arcs.
//
// ⚙️ Usage:
//
//	dag := cpdag.New()
//	_ = dag.AddArc("A", "B")
//	_ = dag.AddArc("C", "B")
//
//	g, err := essential.FromDAG(dag)
//	// g keeps A→B and C→B: reversing either would break the collider.
//
// Performance: validation is O(V+A); the rule closure is O(V⁴) worst
// case on dense graphs, which is irrelevant at the tens-to-hundreds of
// variables this benchmark targets.
package essential
