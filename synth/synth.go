package synth

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/dataset"
	"github.com/mathisemb/cbnsl-benchmark/essential"
)

// DAG — seeded random directed acyclic graph.
//
// Description:
//
//	DAG draws a uniformly random topological order over n fresh nodes
//	and then, for every forward pair in that order, adds an arc with
//	probability EdgeProb. The result is acyclic by construction and
//	fully determined by the options' seed.
//
// Complexity: O(n²) pair draws.
//
// Errors:
//   - ErrBadNodeCount   — n < 2.
//   - ErrBadProbability — EdgeProb outside [0, 1].
//   - ErrBadWeightRange, ErrBadNoise — invalid option values (shared
//     validation; DAG itself uses neither knob).
func DAG(n int, opts ...Option) (*cpdag.Graph, error) {
	o := gatherOptions(opts...)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(o.Seed))

	// 1. Fresh labels, shuffled into a random topological order.
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s%d", o.NodePrefix, i)
	}
	order := rng.Perm(n)

	// 2. Forward pairs become arcs with probability EdgeProb.
	g := cpdag.New(labels...)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < o.EdgeProb {
				if err := g.AddArc(labels[order[i]], labels[order[j]]); err != nil {
					return nil, err // unreachable: pairs visited once, labels distinct
				}
			}
		}
	}

	return g, nil
}

// SEM — continuous dataset sampled from a linear-Gaussian structural
// equation model over a DAG.
//
// Description:
//
//	Every arc tail→head gets one weight, drawn once per call: magnitude
//	uniform in [WeightLo, WeightHi], sign uniform. Each sample is then
//	generated in topological order as
//
//	    value(v) = Σ_parents weight(p→v) · value(p) + Noise · N(0,1)
//
//	so roots are pure noise and descendants inherit their parents'
//	signal. Columns appear in sorted node order.
//
// Complexity: O(samples · (V + A)) after an O(V + A) topological sort.
//
// Errors:
//   - ErrNilGraph   — g is nil.
//   - ErrNotDAG     — g carries undirected edges or a directed cycle.
//   - ErrBadSamples — samples < 1.
//   - ErrBadProbability, ErrBadWeightRange, ErrBadNoise — invalid options.
func SEM(g *cpdag.Graph, samples int, opts ...Option) (*dataset.Dataset, error) {
	o := gatherOptions(opts...)
	if g == nil {
		return nil, ErrNilGraph
	}
	if samples < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSamples, samples)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	order, err := topoOrder(g)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(o.Seed))

	// 1. One signed weight per arc, fixed for all samples.
	weights := make(map[cpdag.Arc]float64, len(g.Arcs()))
	for _, a := range g.Arcs() {
		w := o.WeightLo + rng.Float64()*(o.WeightHi-o.WeightLo)
		if rng.Float64() < 0.5 {
			w = -w
		}
		weights[a] = w
	}

	// 2. Sample in topological order, parents before children.
	names := g.Nodes()
	colOf := make(map[string]int, len(names))
	for j, name := range names {
		colOf[name] = j
	}
	rows := make([][]float64, samples)
	for i := range rows {
		row := make([]float64, len(names))
		for _, v := range order {
			parents, _ := g.Parents(v) // v comes from g; lookup cannot fail
			x := o.Noise * rng.NormFloat64()
			for _, p := range parents {
				x += weights[cpdag.Arc{Tail: p, Head: v}] * row[colOf[p]]
			}
			row[colOf[v]] = x
		}
		rows[i] = row
	}

	return dataset.New(names, rows, dataset.Continuous)
}

// Benchmark — a complete synthetic instance: dataset plus golden CPDAG.
//
// The generating DAG is sampled by DAG, the dataset by SEM over it, and
// the golden structure is the DAG's essential graph, already in the
// form every learner output is normalized to before scoring.
//
// Errors: union of DAG and SEM error sets.
func Benchmark(n, samples int, opts ...Option) (*dataset.Dataset, *cpdag.Graph, error) {
	dag, err := DAG(n, opts...)
	if err != nil {
		return nil, nil, err
	}
	ds, err := SEM(dag, samples, opts...)
	if err != nil {
		return nil, nil, err
	}
	golden, err := essential.FromDAG(dag)
	if err != nil {
		return nil, nil, err // unreachable: DAG output is a valid DAG
	}

	return ds, golden, nil
}

// topoOrder sorts the graph's nodes parents-first via Kahn's algorithm.
// Ties resolve in label order so the result is deterministic.
func topoOrder(g *cpdag.Graph) ([]string, error) {
	if g.EdgeCount() > 0 {
		return nil, fmt.Errorf("%w: undirected edges present", ErrNotDAG)
	}

	indeg := make(map[string]int, g.NodeCount())
	for _, v := range g.Nodes() {
		parents, err := g.Parents(v)
		if err != nil {
			return nil, err
		}
		indeg[v] = len(parents)
	}

	var ready []string
	for _, v := range g.Nodes() {
		if indeg[v] == 0 {
			ready = append(ready, v)
		}
	}

	order := make([]string, 0, g.NodeCount())
	for len(ready) > 0 {
		sort.Strings(ready)
		v := ready[0]
		ready = ready[1:]
		order = append(order, v)
		children, err := g.Children(v)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			indeg[c]--
			if indeg[c] == 0 {
				ready = append(ready, c)
			}
		}
	}
	if len(order) != g.NodeCount() {
		return nil, fmt.Errorf("%w: directed cycle", ErrNotDAG)
	}

	return order, nil
}
