// Package gridsearch: combination expansion and the Search loop.
//
// Errors:
//
//	ErrEmptyGrid        - no varied parameters, or one with no values.
//	ErrNoFactory        - no learner factory configured.
//	ErrNoGolden         - nothing to score trials against.
//	ErrNoMetrics        - no metrics to score trials with.
//	ErrNotRun           - selection over zero usable trials.
//	ErrUnknownObjective - selection by a metric no trial was scored on.
package gridsearch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mathisemb/cbnsl-benchmark/compare"
	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/dataset"
	"github.com/mathisemb/cbnsl-benchmark/discretize"
	"github.com/mathisemb/cbnsl-benchmark/learner"
	"github.com/mathisemb/cbnsl-benchmark/metric"
	"github.com/mathisemb/cbnsl-benchmark/pipeline"
)

// Sentinel errors for grid-search configuration and selection.
var (
	// ErrEmptyGrid indicates a grid with no parameters or an empty list.
	ErrEmptyGrid = errors.New("gridsearch: empty parameter grid")

	// ErrNoFactory indicates a missing learner factory.
	ErrNoFactory = errors.New("gridsearch: nil learner factory")

	// ErrNoGolden indicates a sweep with no structure to score against.
	ErrNoGolden = errors.New("gridsearch: no golden structure")

	// ErrNoMetrics indicates a sweep with no metrics to score with.
	ErrNoMetrics = errors.New("gridsearch: no metrics")

	// ErrNotRun indicates selection over zero usable trials.
	ErrNotRun = errors.New("gridsearch: no successful trials")

	// ErrUnknownObjective indicates a selection metric absent from
	// every trial's scores.
	ErrUnknownObjective = errors.New("gridsearch: objective not scored")
)

// Params is one concrete parameter assignment handed to the factory.
type Params map[string]any

// Config describes one parameter sweep.
//
// Fields:
//
//	Grid     — varied parameters: name → candidate values. Required.
//	Fixed    — constant parameters merged into every combination.
//	Factory  — builds the learner for one assignment. Required.
//	Metrics  — scores computed per trial. Required.
//	Golden   — reference structure trials are scored against. Required.
//	Strategy — discretization for discrete-input learners; optional.
//	Bins     — discretization levels; pipeline default when zero.
//	Logger   — structured sweep logging; Nop default.
//	CompareOpts — forwarded to every comparison.
type Config struct {
	Grid        map[string][]any
	Fixed       Params
	Factory     func(p Params) (learner.Learner, error)
	Metrics     []metric.Metric
	Golden      *cpdag.Graph
	Strategy    discretize.Strategy
	Bins        int
	Logger      *zap.Logger
	CompareOpts []compare.Option
}

// Trial is one parameter assignment's outcome.
type Trial struct {
	// Params is the full assignment (fixed merged under varied).
	Params Params

	// Graph is the learned structure, nil when the trial failed.
	Graph *cpdag.Graph

	// Scores maps metric name to value against the golden structure.
	Scores map[string]float64

	// Err is the factory, learner or scoring failure, nil on success.
	Err error

	// Duration is the learner's wall-clock time.
	Duration time.Duration
}

// Combinations — Cartesian product of the varied parameter lists.
//
// Keys expand in sorted order with the last key cycling fastest, so
// output order is stable across runs. Fixed parameters are merged
// into every combination; a varied key shadows a fixed one.
//
// Returns ErrEmptyGrid when grid is empty or any list is.
// Complexity: O(Π len(values)) assignments.
func Combinations(grid map[string][]any, fixed Params) ([]Params, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	keys := make([]string, 0, len(grid))
	for k, vals := range grid {
		if len(vals) == 0 {
			return nil, fmt.Errorf("%w: parameter %q has no values", ErrEmptyGrid, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Odometer over the value indices, last key fastest.
	idx := make([]int, len(keys))
	var out []Params
	for {
		p := make(Params, len(fixed)+len(keys))
		for k, v := range fixed {
			p[k] = v
		}
		for i, k := range keys {
			p[k] = grid[k][idx[i]]
		}
		out = append(out, p)

		pos := len(keys) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(grid[keys[pos]]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out, nil
		}
	}
}

// Search — run one trial per parameter combination.
//
// Trial failures (factory errors, learner crashes, scoring mismatches)
// are recorded on their Trial and do not abort the sweep; the returned
// error covers configuration bugs and context cancellation, in which
// case the trials gathered so far come back with it.
//
// Complexity: one learner run plus one O(n²) comparison per
// combination.
func Search(ctx context.Context, ds *dataset.Dataset, cfg Config) ([]Trial, error) {
	if cfg.Factory == nil {
		return nil, ErrNoFactory
	}
	if cfg.Golden == nil {
		return nil, ErrNoGolden
	}
	if len(cfg.Metrics) == 0 {
		return nil, ErrNoMetrics
	}
	assignments, err := Combinations(cfg.Grid, cfg.Fixed)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("grid search started", zap.Int("trials", len(assignments)))

	trials := make([]Trial, 0, len(assignments))
	for i, params := range assignments {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return trials, fmt.Errorf("gridsearch: canceled after %d trials: %w", i, ctxErr)
		}
		trials = append(trials, runTrial(ctx, ds, cfg, params))
		last := trials[len(trials)-1]
		if last.Err != nil {
			log.Warn("trial failed", zap.Int("trial", i), zap.Any("params", params), zap.Error(last.Err))
		} else {
			log.Info("trial finished", zap.Int("trial", i), zap.Any("params", params),
				zap.Duration("duration", last.Duration))
		}
	}

	return trials, nil
}

// runTrial builds the learner and scores it through a single-learner
// pipeline run, so adaptation and scoring behave exactly as in a
// normal benchmark sweep.
func runTrial(ctx context.Context, ds *dataset.Dataset, cfg Config, params Params) Trial {
	trial := Trial{Params: params}

	l, err := cfg.Factory(params)
	if err != nil {
		trial.Err = fmt.Errorf("gridsearch: factory: %w", err)

		return trial
	}

	p := pipeline.New(pipeline.WithCompareOptions(cfg.CompareOpts...))
	p.AddLearner(l)
	for _, m := range cfg.Metrics {
		p.AddMetric(m)
	}
	if cfg.Strategy != nil {
		p.SetStrategy(cfg.Strategy, cfg.Bins)
	}
	p.SetGolden(cfg.Golden)

	rep, err := p.Run(ctx, ds)
	if err != nil {
		trial.Err = err

		return trial
	}
	res := rep.Results[0]
	trial.Graph = res.Graph
	trial.Scores = res.Scores
	trial.Err = res.Err
	trial.Duration = res.Duration

	return trial
}
