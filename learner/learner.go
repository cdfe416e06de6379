// Package learner: the Learner contract, the Func adapter and the
// shared sentinel errors.
//
// Errors:
//
//	ErrNoCommand  - an Exec adapter was built without a command.
//	ErrNilFunc    - a Func adapter was built without a closure.
//	ErrNilGraph   - a Fixed adapter was built around a nil structure.
//	ErrBadFormat  - an Exec adapter carries an unknown output format.
//	ErrExecFailed - the external command exited non-zero or was killed.
//	ErrBadOutput  - the external command's output parsed into nothing.
package learner

import (
	"context"
	"errors"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/dataset"
)

// Sentinel errors for adapter construction and execution.
var (
	// ErrNoCommand indicates an Exec adapter with an empty command.
	ErrNoCommand = errors.New("learner: empty command")

	// ErrNilFunc indicates a Func adapter with a nil closure.
	ErrNilFunc = errors.New("learner: nil learn function")

	// ErrNilGraph indicates a Fixed adapter built around a nil structure.
	ErrNilGraph = errors.New("learner: nil structure")

	// ErrBadFormat indicates an unknown Exec output format.
	ErrBadFormat = errors.New("learner: unknown output format")

	// ErrExecFailed indicates the external command failed or timed out.
	ErrExecFailed = errors.New("learner: external command failed")

	// ErrBadOutput indicates unparseable external command output.
	ErrBadOutput = errors.New("learner: bad command output")
)

// Learner is one structure-learning algorithm behind its adapter.
//
// Implementations must return a structure over exactly the dataset's
// variable names; the pipeline scores that structure against others
// over the same node set.
type Learner interface {
	// Name returns the stable identifier used in reports and configs.
	Name() string

	// DataKind reports the dataset kind the algorithm consumes. The
	// pipeline discretizes continuous input for Discrete learners.
	DataKind() dataset.Kind

	// Learn runs the algorithm on d and returns the learned structure,
	// normalized to a CPDAG. Blocking; honors ctx cancellation.
	Learn(ctx context.Context, d *dataset.Dataset) (*cpdag.Graph, error)
}

// Func adapts an in-process closure into a Learner.
type Func struct {
	name string
	kind dataset.Kind
	fn   func(ctx context.Context, d *dataset.Dataset) (*cpdag.Graph, error)
}

// NewFunc wraps fn as a Learner named name over kind input.
//
// Returns ErrNilFunc when fn is nil.
func NewFunc(name string, kind dataset.Kind, fn func(ctx context.Context, d *dataset.Dataset) (*cpdag.Graph, error)) (*Func, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	return &Func{name: name, kind: kind, fn: fn}, nil
}

// Name returns the adapter's identifier.
func (f *Func) Name() string { return f.name }

// DataKind returns the dataset kind the closure expects.
func (f *Func) DataKind() dataset.Kind { return f.kind }

// Learn delegates to the wrapped closure.
func (f *Func) Learn(ctx context.Context, d *dataset.Dataset) (*cpdag.Graph, error) {
	return f.fn(ctx, d)
}

// Fixed returns a Learner that ignores its input and always produces a
// clone of g. Useful as a baseline and in pipeline tests.
//
// A nil g is reported as ErrNilGraph from Learn, so the pipeline records
// it as a per-learner failure instead of crashing.
func Fixed(name string, g *cpdag.Graph) *Func {
	l, _ := NewFunc(name, dataset.Continuous, func(context.Context, *dataset.Dataset) (*cpdag.Graph, error) {
		if g == nil {
			return nil, ErrNilGraph
		}

		return g.Clone(), nil
	})

	return l
}
