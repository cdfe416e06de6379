package compare

import "github.com/mathisemb/cbnsl-benchmark/cpdag"

// Compare — pairwise structural comparison of two CPDAGs.
//
// Description:
//
//	Compare walks every unordered node pair {a, b} of the shared node
//	set, reads the pair's relation in the reference and in the
//	candidate, and classifies the combination into one of the ten
//	categories. Category tallies are then folded into TP/FP/FN per the
//	counting policy and into the derived scalar metrics.
//
// Algorithm Outline:
//  1. Validate: both graphs non-nil, identical node sets, n ≥ 2.
//  2. For every pair a < b (n·(n-1)/2 pairs, each visited once):
//     ref   = reference.Relation(a, b)
//     cand  = candidate.Relation(a, b)
//     counts[classify(ref, cand)]++
//  3. Fold counts:
//     TP = true_arc + true_edge
//     FN = missing_arc + missing_edge
//     FP = misoriented_arc + wrong_edge_for_arc + wrong_arc_for_edge
//     + spurious_arc + spurious_edge
//     Under PenalizeTwice, the three existing-but-wrong categories
//     (misoriented_arc, wrong_edge_for_arc, wrong_arc_for_edge) are
//     additionally added to FN.
//  4. Derive, with 0/0 → 0:
//     precision = TP/(TP+FP), recall = TP/(TP+FN),
//     F1 = 2·p·r/(p+r), SHD = pairs - true_arc - true_edge - true_none.
//
// SHD counts every non-matching pair exactly once whatever the policy;
// it equals FP+FN only under PenalizeOnce.
//
// Complexity:
//
//	Time   = O(n²) relation lookups
//	Memory = O(1) beyond the returned Result
//
// Errors:
//   - ErrNilGraph        — reference or candidate is nil.
//   - ErrNodeSetMismatch — the node sets differ.
//   - ErrGraphTooSmall   — fewer than two shared nodes.
//   - ErrBadPolicy       — options carry an unknown policy.
func Compare(reference, candidate *cpdag.Graph, opts ...Option) (Result, error) {
	if reference == nil || candidate == nil {
		return Result{}, ErrNilGraph
	}
	if !reference.SameNodes(candidate) {
		return Result{}, ErrNodeSetMismatch
	}
	if reference.NodeCount() < 2 {
		return Result{}, ErrGraphTooSmall
	}
	o := gatherOptions(opts...)
	if o.Policy != PenalizeOnce && o.Policy != PenalizeTwice {
		return Result{}, ErrBadPolicy
	}

	// Classify every unordered pair exactly once, in sorted node order.
	var counts Counts
	nodes := reference.Nodes()
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			refState, err := reference.Relation(nodes[i], nodes[j])
			if err != nil {
				return Result{}, err
			}
			candState, err := candidate.Relation(nodes[i], nodes[j])
			if err != nil {
				return Result{}, err
			}
			counts[classify(refState, candState)]++
		}
	}

	return fold(counts, o.Policy), nil
}

// classify maps one (reference, candidate) relation combination to its
// category. The switch is total over the closed 4×4 relation domain;
// the panics below are unreachable for states produced by cpdag and
// flag memory corruption or an invalid cast, a programmer error.
func classify(ref, cand cpdag.Relation) Category {
	switch ref {
	case cpdag.ArcForward:
		switch cand {
		case cpdag.ArcForward:
			return TrueArc
		case cpdag.ArcBackward:
			return MisorientedArc
		case cpdag.Undirected:
			return WrongEdgeForArc
		case cpdag.None:
			return MissingArc
		}
	case cpdag.ArcBackward:
		switch cand {
		case cpdag.ArcBackward:
			return TrueArc
		case cpdag.ArcForward:
			return MisorientedArc
		case cpdag.Undirected:
			return WrongEdgeForArc
		case cpdag.None:
			return MissingArc
		}
	case cpdag.Undirected:
		switch cand {
		case cpdag.ArcForward, cpdag.ArcBackward:
			return WrongArcForEdge
		case cpdag.Undirected:
			return TrueEdge
		case cpdag.None:
			return MissingEdge
		}
	case cpdag.None:
		switch cand {
		case cpdag.ArcForward, cpdag.ArcBackward:
			return SpuriousArc
		case cpdag.Undirected:
			return SpuriousEdge
		case cpdag.None:
			return TrueNone
		}
	}
	panic("compare: relation state outside the closed domain")
}

// fold turns category tallies into the final Result under the policy.
func fold(counts Counts, policy Policy) Result {
	wrongExisting := counts[MisorientedArc] + counts[WrongEdgeForArc] + counts[WrongArcForEdge]

	tp := counts[TrueArc] + counts[TrueEdge]
	fn := counts[MissingArc] + counts[MissingEdge]
	fp := wrongExisting + counts[SpuriousArc] + counts[SpuriousEdge]
	if policy == PenalizeTwice {
		fn += wrongExisting
	}

	pairs := counts.Total()
	precision := ratio(tp, tp+fp)
	recall := ratio(tp, tp+fn)
	var f1 float64
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return Result{
		Counts:    counts,
		Pairs:     pairs,
		TP:        tp,
		FP:        fp,
		FN:        fn,
		Precision: precision,
		Recall:    recall,
		F1:        f1,
		SHD:       pairs - counts[TrueArc] - counts[TrueEdge] - counts[TrueNone],
	}
}

// ratio divides num by den with the 0/0 → 0 convention.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}
