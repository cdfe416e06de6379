// Package discretize: Strategy contract, registry and sentinel errors.
//
// Errors:
//
//	ErrNilDataset      - the input dataset is nil.
//	ErrNotContinuous   - the input dataset is already discrete.
//	ErrBadBins         - requested bin count is below two.
//	ErrBadInitialBins  - Hartemink initial bin count not above the target.
//	ErrUnknownStrategy - a name with no registered strategy behind it.
package discretize

import (
	"errors"
	"fmt"

	"github.com/mathisemb/cbnsl-benchmark/dataset"
)

// Sentinel errors for discretization. All flag invalid caller input.
var (
	// ErrNilDataset indicates a nil input dataset.
	ErrNilDataset = errors.New("discretize: nil dataset")

	// ErrNotContinuous indicates the input is already discrete.
	ErrNotContinuous = errors.New("discretize: input dataset must be continuous")

	// ErrBadBins indicates a target bin count below two.
	ErrBadBins = errors.New("discretize: bins must be at least 2")

	// ErrBadInitialBins indicates an initial bin count that is not
	// strictly greater than the target (nothing to merge).
	ErrBadInitialBins = errors.New("discretize: initial bins must exceed target bins")

	// ErrUnknownStrategy indicates a strategy name with no registration.
	ErrUnknownStrategy = errors.New("discretize: unknown strategy name")
)

// Strategy converts a continuous dataset into a discrete one with at
// most the requested number of bins per variable.
//
// Implementations are stateless values safe for reuse across datasets.
// Apply never mutates its input and always returns a fresh Dataset of
// kind Discrete whose cells are integer bin labels 0..bins-1 stored as
// float64.
type Strategy interface {
	// Name returns the stable identifier used in configs, e.g. "quantile".
	Name() string

	// Apply discretizes every column of d into at most bins levels.
	Apply(d *dataset.Dataset, bins int) (*dataset.Dataset, error)
}

// All returns the built-in strategies in stable order.
func All() []Strategy {
	return []Strategy{Uniform{}, Quantile{}, KMeans{}, Hartemink{}}
}

// ByName resolves a strategy identifier as used in benchmark configs.
//
// Returns ErrUnknownStrategy (wrapped with the offending name) when the
// identifier matches no built-in strategy.
func ByName(name string) (Strategy, error) {
	for _, s := range All() {
		if s.Name() == name {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// checkInput verifies the shared Apply preconditions.
func checkInput(d *dataset.Dataset, bins int) error {
	if d == nil {
		return ErrNilDataset
	}
	if d.Kind() != dataset.Continuous {
		return ErrNotContinuous
	}
	if bins < 2 {
		return fmt.Errorf("%w: got %d", ErrBadBins, bins)
	}

	return nil
}

// perColumn discretizes each column independently through labelFn and
// assembles the resulting Discrete dataset. labelFn receives a copy of
// the column and must return one label in [0, bins) per sample.
func perColumn(d *dataset.Dataset, bins int, labelFn func(col []float64, bins int) []int) (*dataset.Dataset, error) {
	names := d.Names()
	rows := make([][]float64, d.Len())
	for i := range rows {
		rows[i] = make([]float64, len(names))
	}
	for j := range names {
		labels := labelFn(d.ColumnAt(j), bins)
		for i, lab := range labels {
			rows[i][j] = float64(lab)
		}
	}

	return dataset.New(names, rows, dataset.Discrete)
}
