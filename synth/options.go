// Package synth: functional configuration and sentinel errors for the
// generators.
//
// Errors:
//
//	ErrBadNodeCount   - fewer than two nodes requested.
//	ErrBadProbability - edge probability outside [0, 1].
//	ErrBadSamples     - fewer than one sample requested.
//	ErrBadWeightRange - weight magnitudes not 0 < lo ≤ hi.
//	ErrBadNoise       - negative noise deviation.
//	ErrNilGraph       - SEM over a nil graph.
//	ErrNotDAG         - SEM over a graph that is not a DAG.
package synth

import "errors"

// Sentinel errors for generator configuration and input.
var (
	// ErrBadNodeCount indicates a node count below two.
	ErrBadNodeCount = errors.New("synth: node count must be at least 2")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("synth: edge probability must lie in [0, 1]")

	// ErrBadSamples indicates a sample count below one.
	ErrBadSamples = errors.New("synth: sample count must be positive")

	// ErrBadWeightRange indicates magnitudes violating 0 < lo ≤ hi.
	ErrBadWeightRange = errors.New("synth: weight range must satisfy 0 < lo <= hi")

	// ErrBadNoise indicates a negative noise standard deviation.
	ErrBadNoise = errors.New("synth: noise deviation must be non-negative")

	// ErrNilGraph indicates a nil SEM input graph.
	ErrNilGraph = errors.New("synth: nil graph")

	// ErrNotDAG indicates a SEM input with edges or directed cycles.
	ErrNotDAG = errors.New("synth: graph must be a DAG")
)

// Generation defaults. An average in-degree around EdgeProb·(n−1)/2 and
// weight magnitudes clear of the detection threshold keep the sampled
// systems learnable by the usual continuous learners.
const (
	defaultEdgeProb   = 0.3
	defaultWeightLo   = 0.5
	defaultWeightHi   = 2.0
	defaultNoise      = 1.0
	defaultSeed       = int64(1)
	defaultNodePrefix = "X"
)

// Options configures DAG generation and SEM sampling.
//
// Fields:
//
//	EdgeProb   float64 — probability of an arc per forward node pair.
//	WeightLo   float64 — minimum arc weight magnitude.
//	WeightHi   float64 — maximum arc weight magnitude.
//	Noise      float64 — Gaussian noise standard deviation.
//	Seed       int64   — RNG seed; same seed, same instance.
//	NodePrefix string  — label prefix, nodes become "X0".."X<n-1>".
type Options struct {
	EdgeProb   float64
	WeightLo   float64
	WeightHi   float64
	Noise      float64
	Seed       int64
	NodePrefix string
}

// Option configures Options; last writer wins.
type Option func(*Options)

// WithEdgeProb sets the per-pair arc probability.
// Allowed values: [0, 1]; anything else makes the generator return
// ErrBadProbability.
func WithEdgeProb(p float64) Option {
	return func(o *Options) { o.EdgeProb = p }
}

// WithWeightRange sets the arc weight magnitude range [lo, hi]; signs
// are drawn randomly. Violating 0 < lo ≤ hi yields ErrBadWeightRange.
func WithWeightRange(lo, hi float64) Option {
	return func(o *Options) { o.WeightLo, o.WeightHi = lo, hi }
}

// WithNoise sets the Gaussian noise standard deviation; zero gives a
// deterministic (noise-free) system.
func WithNoise(sigma float64) Option {
	return func(o *Options) { o.Noise = sigma }
}

// WithSeed fixes the RNG seed for reproducible instances.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithNodePrefix sets the label prefix for generated nodes.
func WithNodePrefix(prefix string) Option {
	return func(o *Options) { o.NodePrefix = prefix }
}

// DefaultOptions returns the standard configuration:
//
//	– EdgeProb   = 0.3
//	– WeightLo   = 0.5, WeightHi = 2.0
//	– Noise      = 1.0
//	– Seed       = 1
//	– NodePrefix = "X"
func DefaultOptions() Options {
	return Options{
		EdgeProb:   defaultEdgeProb,
		WeightLo:   defaultWeightLo,
		WeightHi:   defaultWeightHi,
		Noise:      defaultNoise,
		Seed:       defaultSeed,
		NodePrefix: defaultNodePrefix,
	}
}

// gatherOptions resolves user options on top of DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.NodePrefix == "" {
		o.NodePrefix = defaultNodePrefix
	}

	return o
}

// validate checks the option invariants shared by the generators.
func (o Options) validate() error {
	if o.EdgeProb < 0 || o.EdgeProb > 1 {
		return ErrBadProbability
	}
	if o.WeightLo <= 0 || o.WeightHi < o.WeightLo {
		return ErrBadWeightRange
	}
	if o.Noise < 0 {
		return ErrBadNoise
	}

	return nil
}
