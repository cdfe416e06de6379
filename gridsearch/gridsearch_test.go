package gridsearch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/dataset"
	"github.com/mathisemb/cbnsl-benchmark/gridsearch"
	"github.com/mathisemb/cbnsl-benchmark/learner"
	"github.com/mathisemb/cbnsl-benchmark/metric"
)

func benchData(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(
		[]string{"A", "B", "C"},
		[][]float64{{1, 2, 3}, {4, 5, 6}},
		dataset.Continuous,
	)
	require.NoError(t, err)

	return d
}

func golden(t *testing.T) *cpdag.Graph {
	t.Helper()
	g := cpdag.New()
	require.NoError(t, g.AddArc("A", "B"))
	require.NoError(t, g.AddArc("C", "B"))

	return g
}

// TestCombinations: deterministic odometer order and fixed merging.
func TestCombinations(t *testing.T) {
	combos, err := gridsearch.Combinations(
		map[string][]any{"b": {1, 2}, "a": {"x", "y"}},
		gridsearch.Params{"fixed": true},
	)
	require.NoError(t, err)
	require.Len(t, combos, 4)

	// sorted keys: a varies slowest, b fastest
	assert.Equal(t, gridsearch.Params{"a": "x", "b": 1, "fixed": true}, combos[0])
	assert.Equal(t, gridsearch.Params{"a": "x", "b": 2, "fixed": true}, combos[1])
	assert.Equal(t, gridsearch.Params{"a": "y", "b": 1, "fixed": true}, combos[2])
	assert.Equal(t, gridsearch.Params{"a": "y", "b": 2, "fixed": true}, combos[3])
}

// TestCombinations_Empty rejects empty grids and empty value lists.
func TestCombinations_Empty(t *testing.T) {
	_, err := gridsearch.Combinations(nil, nil)
	assert.ErrorIs(t, err, gridsearch.ErrEmptyGrid)

	_, err = gridsearch.Combinations(map[string][]any{"a": {}}, nil)
	assert.ErrorIs(t, err, gridsearch.ErrEmptyGrid)
}

// searchConfig builds a sweep where the "flip" parameter controls how
// close the produced structure is to the golden collider.
func searchConfig(t *testing.T) gridsearch.Config {
	t.Helper()

	return gridsearch.Config{
		Grid:    map[string][]any{"flip": {0, 1, 2}},
		Factory: flipFactory(t),
		Metrics: metric.All(),
		Golden:  golden(t),
	}
}

// flipFactory: flip=0 reproduces the golden structure, flip=1 drops one
// arc, flip=2 fails outright.
func flipFactory(t *testing.T) func(gridsearch.Params) (learner.Learner, error) {
	t.Helper()

	return func(p gridsearch.Params) (learner.Learner, error) {
		flip, ok := p["flip"].(int)
		require.True(t, ok, "flip parameter must be an int")
		switch flip {
		case 0:
			return learner.Fixed("exact", golden(t)), nil
		case 1:
			g := cpdag.New("C")
			require.NoError(t, g.AddArc("A", "B"))

			return learner.Fixed("partial", g), nil
		default:
			return nil, errors.New("unsupported flip")
		}
	}
}

// TestSearch_Validation walks the configuration rejections.
func TestSearch_Validation(t *testing.T) {
	ctx := context.Background()
	cfg := searchConfig(t)

	broken := cfg
	broken.Factory = nil
	_, err := gridsearch.Search(ctx, benchData(t), broken)
	assert.ErrorIs(t, err, gridsearch.ErrNoFactory)

	broken = cfg
	broken.Golden = nil
	_, err = gridsearch.Search(ctx, benchData(t), broken)
	assert.ErrorIs(t, err, gridsearch.ErrNoGolden)

	broken = cfg
	broken.Metrics = nil
	_, err = gridsearch.Search(ctx, benchData(t), broken)
	assert.ErrorIs(t, err, gridsearch.ErrNoMetrics)

	broken = cfg
	broken.Grid = nil
	_, err = gridsearch.Search(ctx, benchData(t), broken)
	assert.ErrorIs(t, err, gridsearch.ErrEmptyGrid)
}

// TestSearch_TrialOutcomes: per-trial scores and captured failures.
func TestSearch_TrialOutcomes(t *testing.T) {
	trials, err := gridsearch.Search(context.Background(), benchData(t), searchConfig(t))
	require.NoError(t, err)
	require.Len(t, trials, 3)

	assert.NoError(t, trials[0].Err)
	assert.Zero(t, trials[0].Scores["shd"], "flip=0 reproduces the golden structure")

	assert.NoError(t, trials[1].Err)
	assert.Equal(t, 1.0, trials[1].Scores["shd"], "flip=1 misses one arc")

	assert.Error(t, trials[2].Err, "flip=2's factory failure is trial data")
	assert.Nil(t, trials[2].Graph)
}

// TestBest honors objective direction and skips failures.
func TestBest(t *testing.T) {
	trials, err := gridsearch.Search(context.Background(), benchData(t), searchConfig(t))
	require.NoError(t, err)

	bySHD, err := gridsearch.Best(trials, metric.SHD{})
	require.NoError(t, err)
	assert.Equal(t, 0, bySHD.Params["flip"])

	byF1, err := gridsearch.Best(trials, metric.F1{})
	require.NoError(t, err)
	assert.Equal(t, 0, byF1.Params["flip"])
}

// TestBest_NotRun: selection over nothing usable errors.
func TestBest_NotRun(t *testing.T) {
	_, err := gridsearch.Best(nil, metric.SHD{})
	assert.ErrorIs(t, err, gridsearch.ErrNotRun)

	failed := []gridsearch.Trial{{Err: errors.New("boom")}}
	_, err = gridsearch.Best(failed, metric.SHD{})
	assert.ErrorIs(t, err, gridsearch.ErrNotRun)

	unscored := []gridsearch.Trial{{Scores: map[string]float64{"something-else": 1}}}
	_, err = gridsearch.Best(unscored, metric.SHD{})
	assert.ErrorIs(t, err, gridsearch.ErrUnknownObjective)
}

// TestParetoFront keeps exactly the non-dominated trials.
func TestParetoFront(t *testing.T) {
	metrics := []metric.Metric{metric.SHD{}, metric.F1{}}
	trials := []gridsearch.Trial{
		{Scores: map[string]float64{"shd": 1, "f1": 0.9}},                 // front
		{Scores: map[string]float64{"shd": 2, "f1": 0.5}},                 // dominated by 0
		{Scores: map[string]float64{"shd": 0, "f1": 0.4}},                 // front: best shd
		{Err: errors.New("boom")},                                         // never on the front
		{Scores: map[string]float64{"shd": 1, "f1": 0.9}},                 // tie with 0: both stay
		{Scores: map[string]float64{"shd": 3, "f1": 0.9, "extra": 1e300}}, // dominated by 0 on shd, tied f1
	}

	front := gridsearch.ParetoFront(trials, metrics)
	require.Len(t, front, 3)
	assert.Equal(t, trials[0].Scores, front[0].Scores)
	assert.Equal(t, trials[2].Scores, front[1].Scores)
	assert.Equal(t, trials[4].Scores, front[2].Scores)

	best, err := gridsearch.BestOnFront(trials, metrics, metric.SHD{})
	require.NoError(t, err)
	assert.Zero(t, best.Scores["shd"])
}
