package metric

import (
	"errors"
	"fmt"

	"github.com/mathisemb/cbnsl-benchmark/compare"
	"github.com/mathisemb/cbnsl-benchmark/cpdag"
)

// ErrUnknownMetric indicates a name with no registered metric behind it.
var ErrUnknownMetric = errors.New("metric: unknown metric name")

// Direction states which way an objective improves.
type Direction uint8

const (
	// LowerIsBetter marks distance-like objectives (SHD).
	LowerIsBetter Direction = iota

	// HigherIsBetter marks score-like objectives (F1, TPR, precision).
	HigherIsBetter
)

// String returns "lower" or "higher".
func (d Direction) String() string {
	if d == LowerIsBetter {
		return "lower"
	}

	return "higher"
}

// Metric extracts one scalar from a comparison outcome.
//
// Implementations are stateless values; they carry a stable Name used in
// configs and report headers, and a Direction used by selection logic.
type Metric interface {
	// Name returns the stable identifier, e.g. "shd" or "f1".
	Name() string

	// Direction reports whether smaller or larger scores win.
	Direction() Direction

	// Score reads the metric value out of a comparison result.
	Score(res compare.Result) float64
}

// SHD is the structural Hamming distance: non-matching pair count.
type SHD struct{}

func (SHD) Name() string         { return "shd" }
func (SHD) Direction() Direction { return LowerIsBetter }
func (SHD) Score(res compare.Result) float64 {
	return float64(res.SHD)
}

// F1 is the harmonic mean of precision and recall.
type F1 struct{}

func (F1) Name() string         { return "f1" }
func (F1) Direction() Direction { return HigherIsBetter }
func (F1) Score(res compare.Result) float64 {
	return res.F1
}

// TPR is the true-positive rate (recall).
type TPR struct{}

func (TPR) Name() string         { return "tpr" }
func (TPR) Direction() Direction { return HigherIsBetter }
func (TPR) Score(res compare.Result) float64 {
	return res.Recall
}

// Precision is the fraction of reported relations that are correct.
type Precision struct{}

func (Precision) Name() string         { return "precision" }
func (Precision) Direction() Direction { return HigherIsBetter }
func (Precision) Score(res compare.Result) float64 {
	return res.Precision
}

// All returns the built-in metrics in stable report order.
func All() []Metric {
	return []Metric{SHD{}, F1{}, TPR{}, Precision{}}
}

// ByName resolves a metric identifier as used in configs and CLI flags.
//
// Returns ErrUnknownMetric (wrapped with the offending name) when the
// identifier matches no built-in metric.
func ByName(name string) (Metric, error) {
	for _, m := range All() {
		if m.Name() == name {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// Evaluate compares candidate against reference once and reads every
// requested metric out of the single comparison result.
//
// The returned map is keyed by Metric.Name(). Comparison options (for
// instance the counting policy) pass through untouched.
//
// Complexity: O(n²) for the comparison plus O(len(metrics)).
func Evaluate(reference, candidate *cpdag.Graph, metrics []Metric, opts ...compare.Option) (map[string]float64, error) {
	res, err := compare.Compare(reference, candidate, opts...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		out[m.Name()] = m.Score(res)
	}

	return out, nil
}
