// Package compare: category, counts and result declarations, plus the
// sentinel errors returned by Compare.
//
// Errors:
//
//	ErrNilGraph        - reference or candidate is nil.
//	ErrNodeSetMismatch - the two graphs cover different node sets.
//	ErrGraphTooSmall   - fewer than two shared nodes, no pair to classify.
//	ErrBadPolicy       - unknown counting policy in options.
package compare

import "errors"

// Sentinel errors for structural comparison. All of them flag caller
// bugs (mismatched adapters, malformed options), never transient
// conditions, so retrying is pointless.
var (
	// ErrNilGraph indicates a nil reference or candidate graph.
	ErrNilGraph = errors.New("compare: nil graph")

	// ErrNodeSetMismatch indicates the graphs disagree on the node set.
	// Comparing structures learned over different variable sets would
	// produce meaningless counts, so it is rejected outright.
	ErrNodeSetMismatch = errors.New("compare: node set mismatch")

	// ErrGraphTooSmall indicates fewer than two shared nodes.
	ErrGraphTooSmall = errors.New("compare: need at least two nodes")

	// ErrBadPolicy indicates an unknown counting policy value.
	ErrBadPolicy = errors.New("compare: unknown counting policy")
)

// Category identifies one cell of the reference × candidate relation
// table. The set is closed: every pair of relation states maps to
// exactly one of the ten constants below.
type Category uint8

const (
	// TrueArc: reference arc recovered with the exact orientation.
	TrueArc Category = iota

	// MisorientedArc: reference arc present but reversed in the candidate.
	MisorientedArc

	// WrongEdgeForArc: reference arc weakened to an undirected edge.
	WrongEdgeForArc

	// MissingArc: reference arc absent from the candidate.
	MissingArc

	// WrongArcForEdge: reference undirected edge oriented (either way)
	// in the candidate.
	WrongArcForEdge

	// TrueEdge: reference undirected edge recovered as undirected.
	TrueEdge

	// MissingEdge: reference undirected edge absent from the candidate.
	MissingEdge

	// SpuriousArc: candidate arc (either orientation) on a pair the
	// reference leaves unrelated.
	SpuriousArc

	// SpuriousEdge: candidate undirected edge on an unrelated pair.
	SpuriousEdge

	// TrueNone: both graphs leave the pair unrelated.
	TrueNone

	// NumCategories is the size of the closed category set.
	NumCategories = 10
)

// String returns the category name in the domain vocabulary.
func (c Category) String() string {
	switch c {
	case TrueArc:
		return "true_arc"
	case MisorientedArc:
		return "misoriented_arc"
	case WrongEdgeForArc:
		return "wrong_edge_for_arc"
	case MissingArc:
		return "missing_arc"
	case WrongArcForEdge:
		return "wrong_arc_for_edge"
	case TrueEdge:
		return "true_edge"
	case MissingEdge:
		return "missing_edge"
	case SpuriousArc:
		return "spurious_arc"
	case SpuriousEdge:
		return "spurious_edge"
	case TrueNone:
		return "true_none"
	default:
		return "invalid"
	}
}

// Categories returns all ten categories in declaration order.
// Useful for rendering count tables with a stable layout.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}

	return out
}

// Counts accumulates one counter per category. Index it with a Category
// constant: counts[compare.TrueArc].
type Counts [NumCategories]int

// Total returns the sum over all ten categories. For a valid comparison
// this equals n·(n-1)/2, the number of unordered node pairs.
func (c Counts) Total() int {
	var sum int
	for _, v := range c {
		sum += v
	}

	return sum
}

// Result is the outcome of one structural comparison: the full category
// counts plus the derived scalar metrics. It is a plain value with no
// further lifecycle.
//
// TrueNone pairs are reported in Counts but excluded from TP/FP/FN: the
// universe of correctly-absent pairs dominates sparse graphs and would
// wash out precision and recall.
type Result struct {
	// Counts holds the ten per-category tallies.
	Counts Counts

	// Pairs is the number of classified pairs, n·(n-1)/2.
	Pairs int

	// TP counts true_arc plus true_edge pairs.
	TP int

	// FP counts wrong and spurious candidate relations, per the policy.
	FP int

	// FN counts reference relations the candidate misses, per the policy.
	FN int

	// Precision is TP / (TP + FP), 0 when the denominator is 0.
	Precision float64

	// Recall is TP / (TP + FN), 0 when the denominator is 0.
	// This is the true-positive rate (TPR).
	Recall float64

	// F1 is the harmonic mean of Precision and Recall, 0 when both are 0.
	F1 float64

	// SHD is the structural Hamming distance: the number of pairs whose
	// relation differs at all. Policy changes never move it.
	SHD int
}
