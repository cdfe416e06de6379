// Package pipeline: the Pipeline type, its configuration and Run.
//
// Errors:
//
//	ErrNilDataset   - Run received a nil dataset.
//	ErrNoLearners   - Run called with no registered learners.
//	ErrNoMetrics    - a golden structure is set but no metrics are.
//	ErrNeedDiscrete - a discrete-input learner, a continuous dataset,
//	                  and no discretization strategy configured.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mathisemb/cbnsl-benchmark/compare"
	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/dataset"
	"github.com/mathisemb/cbnsl-benchmark/discretize"
	"github.com/mathisemb/cbnsl-benchmark/learner"
	"github.com/mathisemb/cbnsl-benchmark/metric"
)

// Sentinel errors for pipeline configuration. All are caller bugs
// surfaced before any learner runs.
var (
	// ErrNilDataset indicates Run was handed a nil dataset.
	ErrNilDataset = errors.New("pipeline: nil dataset")

	// ErrNoLearners indicates a run with nothing to run.
	ErrNoLearners = errors.New("pipeline: no learners registered")

	// ErrNoMetrics indicates a golden structure with nothing to score it.
	ErrNoMetrics = errors.New("pipeline: golden structure set but no metrics registered")

	// ErrNeedDiscrete indicates a discrete-input learner facing
	// continuous data with no discretization strategy configured.
	ErrNeedDiscrete = errors.New("pipeline: learner needs discrete data and no strategy is set")
)

// defaultBins is the discretization level count when SetStrategy is
// called with a non-positive bin count.
const defaultBins = 3

// Result is one learner's outcome within a run.
//
// Exactly one of Graph/Err is meaningful: a failed learner carries its
// error and no structure, a successful one the reverse. Scores are
// empty when no golden structure was configured.
type Result struct {
	// Learner is the adapter's Name().
	Learner string

	// Graph is the learned structure, nil when the learner failed.
	Graph *cpdag.Graph

	// Scores maps metric name to value against the golden structure.
	Scores map[string]float64

	// Err is the learner or scoring failure, nil on success.
	Err error

	// Duration is the learner's wall-clock time.
	Duration time.Duration
}

// Report is the outcome of one full sweep.
type Report struct {
	// RunID uniquely identifies the sweep in logs and exports.
	RunID string

	// Dataset recalls the input shape for report headers.
	Dataset Shape

	// Results holds one entry per registered learner, in registration
	// order.
	Results []Result
}

// Shape is the dataset footprint recorded on a report.
type Shape struct {
	Samples   int
	Variables int
	Kind      dataset.Kind
}

// Options configures a Pipeline.
//
// Fields:
//
//	Logger      *zap.Logger       — structured run logging; Nop default.
//	CompareOpts []compare.Option  — forwarded to every comparison.
type Options struct {
	Logger      *zap.Logger
	CompareOpts []compare.Option
}

// Option configures Options; last writer wins.
type Option func(*Options)

// WithLogger injects a structured logger for run progress.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithCompareOptions forwards engine options (for instance the FP/FN
// counting policy) to every comparison performed by the run.
func WithCompareOptions(opts ...compare.Option) Option {
	return func(o *Options) { o.CompareOpts = opts }
}

// DefaultOptions returns a silent pipeline with default comparisons.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Pipeline runs registered learners over one dataset and scores them.
// Zero value is not usable; build with New. Not safe for concurrent
// mutation; Run is sequential per the benchmark's design.
type Pipeline struct {
	opts     Options
	learners []learner.Learner
	metrics  []metric.Metric
	strategy discretize.Strategy
	bins     int
	golden   *cpdag.Graph
}

// New builds an empty pipeline with the given options applied.
func New(opts ...Option) *Pipeline {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Pipeline{opts: o}
}

// AddLearner registers one algorithm adapter; duplicates are allowed
// (same tool, different options) and distinguished only by Name.
func (p *Pipeline) AddLearner(l learner.Learner) {
	if l != nil {
		p.learners = append(p.learners, l)
	}
}

// AddMetric registers one scoring metric.
func (p *Pipeline) AddMetric(m metric.Metric) {
	if m != nil {
		p.metrics = append(p.metrics, m)
	}
}

// SetStrategy configures dataset adaptation for discrete-input
// learners: each such learner sees the continuous input discretized
// into bins levels. Non-positive bins fall back to a 3-level default.
func (p *Pipeline) SetStrategy(s discretize.Strategy, bins int) {
	if bins <= 0 {
		bins = defaultBins
	}
	p.strategy, p.bins = s, bins
}

// SetGolden supplies the ground-truth structure every learned graph is
// scored against. Without one, Run still learns but scores nothing;
// use report.PairwiseMatrix for candidate-vs-candidate analysis.
func (p *Pipeline) SetGolden(g *cpdag.Graph) {
	p.golden = g
}

// Run — execute the sweep: adapt, learn, score, collect.
//
// Learner and scoring failures land on the per-learner Result; the
// returned error covers only configuration bugs and context
// cancellation between learners. A canceled context still returns the
// partial report gathered so far alongside ctx.Err().
//
// Complexity: dominated by the learners themselves; scoring adds one
// O(n²) comparison per successful learner.
func (p *Pipeline) Run(ctx context.Context, ds *dataset.Dataset) (*Report, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if len(p.learners) == 0 {
		return nil, ErrNoLearners
	}
	if p.golden != nil && len(p.metrics) == 0 {
		return nil, ErrNoMetrics
	}

	rep := &Report{
		RunID:   uuid.NewString(),
		Dataset: Shape{Samples: ds.Len(), Variables: ds.Vars(), Kind: ds.Kind()},
	}
	log := p.opts.Logger.With(
		zap.String("run_id", rep.RunID),
		zap.Int("samples", ds.Len()),
		zap.Int("variables", ds.Vars()),
	)
	log.Info("benchmark run started",
		zap.Int("learners", len(p.learners)),
		zap.Bool("golden", p.golden != nil))

	// Discretize lazily, once, shared by all discrete-input learners.
	var discretized *dataset.Dataset
	for _, l := range p.learners {
		if err := ctx.Err(); err != nil {
			log.Warn("run canceled", zap.Error(err))

			return rep, fmt.Errorf("pipeline: canceled after %d learners: %w", len(rep.Results), err)
		}

		input, err := p.adapt(ds, l, &discretized)
		if err != nil {
			return rep, err
		}

		rep.Results = append(rep.Results, p.runOne(ctx, log, l, input))
	}

	log.Info("benchmark run finished", zap.Int("results", len(rep.Results)))

	return rep, nil
}

// adapt resolves the dataset a learner actually consumes, discretizing
// the continuous input at most once per run.
func (p *Pipeline) adapt(ds *dataset.Dataset, l learner.Learner, cache **dataset.Dataset) (*dataset.Dataset, error) {
	if l.DataKind() != dataset.Discrete || ds.Kind() == dataset.Discrete {
		return ds, nil
	}
	if p.strategy == nil {
		return nil, fmt.Errorf("%w: learner %q", ErrNeedDiscrete, l.Name())
	}
	if *cache == nil {
		disc, err := p.strategy.Apply(ds, p.bins)
		if err != nil {
			return nil, fmt.Errorf("pipeline: discretize for %q: %w", l.Name(), err)
		}
		*cache = disc
	}

	return *cache, nil
}

// runOne executes a single learner and scores its structure.
func (p *Pipeline) runOne(ctx context.Context, log *zap.Logger, l learner.Learner, input *dataset.Dataset) Result {
	res := Result{Learner: l.Name()}
	log.Info("learner started", zap.String("learner", l.Name()), zap.Stringer("kind", l.DataKind()))

	start := time.Now()
	g, err := l.Learn(ctx, input)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("pipeline: learner %q: %w", l.Name(), err)
		log.Warn("learner failed", zap.String("learner", l.Name()),
			zap.Duration("duration", res.Duration), zap.Error(err))

		return res
	}
	res.Graph = g

	if p.golden != nil {
		scores, scoreErr := metric.Evaluate(p.golden, g, p.metrics, p.opts.CompareOpts...)
		if scoreErr != nil {
			// node-set mismatch: the learner answered over the wrong
			// variables; booked as its failure, not the run's
			res.Err = fmt.Errorf("pipeline: scoring %q: %w", l.Name(), scoreErr)
			log.Warn("scoring failed", zap.String("learner", l.Name()), zap.Error(scoreErr))

			return res
		}
		res.Scores = scores
	}

	log.Info("learner finished", zap.String("learner", l.Name()),
		zap.Duration("duration", res.Duration),
		zap.Int("arcs", g.ArcCount()), zap.Int("edges", g.EdgeCount()))

	return res
}
