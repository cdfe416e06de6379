// Package compare scores a candidate CPDAG against a reference CPDAG by
// classifying every unordered node pair into one of ten exclusive
// categories and deriving precision, recall (TPR), F1 and the structural
// Hamming distance (SHD).
//
// 🚀 What does it do?
//
//	Two structures over the same variables rarely disagree in just one
//	way: an arc can be missing, reversed, weakened into an undirected
//	edge, or invented out of nothing. Collapsing all of that into a
//	single "different" bit loses the picture. Compare keeps the full
//	confusion surface: for each pair of nodes it looks up the relation
//	in the reference and in the candidate and names the combination.
//
// The ten categories (reference state × candidate state):
//
//	reference arc:        true_arc, misoriented_arc, wrong_edge_for_arc, missing_arc
//	reference undirected: wrong_arc_for_edge, true_edge, missing_edge
//	reference none:       spurious_arc, spurious_edge, true_none
//
// ✨ Key properties:
//   - total classification: the (reference, candidate) relation domain is
//     closed and every combination maps to exactly one category; there is
//     no default bucket that could silently absorb a missed case
//   - configurable counting policy: by default a pair that exists but is
//     wrong in kind or orientation is penalized once, as a false
//     positive (PenalizeOnce); PenalizeTwice additionally books it as a
//     false negative for suites that want the double-penalty convention
//   - SHD is policy-independent: every non-matching pair costs exactly 1
//   - degenerate ratios follow the 0/0 → 0 convention, so empty graphs
//     compare cleanly instead of erroring
//
// ⚙️ Usage:
//
//	res, err := compare.Compare(reference, candidate)
//	if err != nil {
//	  // ErrNodeSetMismatch: the two graphs cover different variables
//	}
//	fmt.Printf("SHD=%d F1=%.3f\n", res.SHD, res.F1)
//
//	strict, _ := compare.Compare(reference, candidate,
//	  compare.WithPolicy(compare.PenalizeTwice))
//
// Performance: O(n²) relation lookups for n shared nodes, one pass, no
// allocation beyond the result value. Compare never mutates its inputs,
// so concurrent invocations need no coordination.
package compare
