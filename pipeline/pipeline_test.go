package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/dataset"
	"github.com/mathisemb/cbnsl-benchmark/discretize"
	"github.com/mathisemb/cbnsl-benchmark/learner"
	"github.com/mathisemb/cbnsl-benchmark/metric"
	"github.com/mathisemb/cbnsl-benchmark/pipeline"
)

// fixtures: three variables, a golden A→B←C collider, a perfect and a
// wrong learner.

func benchData(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(
		[]string{"A", "B", "C"},
		[][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {1, 5, 9}},
		dataset.Continuous,
	)
	require.NoError(t, err)

	return d
}

func collider(t *testing.T) *cpdag.Graph {
	t.Helper()
	g := cpdag.New()
	require.NoError(t, g.AddArc("A", "B"))
	require.NoError(t, g.AddArc("C", "B"))

	return g
}

// TestRun_ConfigErrors walks every pre-run rejection.
func TestRun_ConfigErrors(t *testing.T) {
	ctx := context.Background()

	p := pipeline.New()
	_, err := p.Run(ctx, benchData(t))
	assert.ErrorIs(t, err, pipeline.ErrNoLearners)

	p.AddLearner(learner.Fixed("id", collider(t)))
	_, err = p.Run(ctx, nil)
	assert.ErrorIs(t, err, pipeline.ErrNilDataset)

	p.SetGolden(collider(t))
	_, err = p.Run(ctx, benchData(t))
	assert.ErrorIs(t, err, pipeline.ErrNoMetrics)
}

// TestRun_ScoresAgainstGolden: a perfect learner scores perfectly, a
// wrong one is penalized, and both land in registration order.
func TestRun_ScoresAgainstGolden(t *testing.T) {
	golden := collider(t)

	wrong := cpdag.New("B")
	require.NoError(t, wrong.AddArc("A", "C"))

	p := pipeline.New(pipeline.WithLogger(zap.NewNop()))
	p.AddLearner(learner.Fixed("perfect", golden))
	p.AddLearner(learner.Fixed("wrong", wrong))
	p.AddMetric(metric.SHD{})
	p.AddMetric(metric.F1{})
	p.SetGolden(golden)

	rep, err := p.Run(context.Background(), benchData(t))
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 4, rep.Dataset.Samples)
	assert.Equal(t, 3, rep.Dataset.Variables)

	perfect := rep.Results[0]
	assert.Equal(t, "perfect", perfect.Learner)
	require.NoError(t, perfect.Err)
	assert.Zero(t, perfect.Scores["shd"])
	assert.Equal(t, 1.0, perfect.Scores["f1"])

	bad := rep.Results[1]
	assert.Equal(t, "wrong", bad.Learner)
	require.NoError(t, bad.Err)
	// golden A→B, C→B; learned A→C: two missing, one spurious
	assert.Equal(t, 3.0, bad.Scores["shd"])
	assert.Zero(t, bad.Scores["f1"])
}

// TestRun_LearnerFailureIsData: one broken learner does not abort the
// sweep; its error lands on its result.
func TestRun_LearnerFailureIsData(t *testing.T) {
	boom := errors.New("solver exploded")
	broken, err := learner.NewFunc("broken", dataset.Continuous,
		func(context.Context, *dataset.Dataset) (*cpdag.Graph, error) {
			return nil, boom
		})
	require.NoError(t, err)

	p := pipeline.New()
	p.AddLearner(broken)
	p.AddLearner(learner.Fixed("fine", collider(t)))
	p.AddMetric(metric.SHD{})
	p.SetGolden(collider(t))

	rep, err := p.Run(context.Background(), benchData(t))
	require.NoError(t, err, "a learner failure must not fail the run")
	require.Len(t, rep.Results, 2)

	assert.ErrorIs(t, rep.Results[0].Err, boom)
	assert.Nil(t, rep.Results[0].Graph)
	assert.NoError(t, rep.Results[1].Err)
}

// TestRun_NodeSetMismatchIsLearnerFailure: answering over the wrong
// variables is booked on the learner, not the run.
func TestRun_NodeSetMismatchIsLearnerFailure(t *testing.T) {
	alien := cpdag.New("X", "Y", "Z")

	p := pipeline.New()
	p.AddLearner(learner.Fixed("alien", alien))
	p.AddMetric(metric.SHD{})
	p.SetGolden(collider(t))

	rep, err := p.Run(context.Background(), benchData(t))
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Error(t, rep.Results[0].Err)
	assert.Empty(t, rep.Results[0].Scores)
}

// TestRun_DiscreteAdaptation: discrete learners see discretized input,
// continuous learners see the original, and a missing strategy errors.
func TestRun_DiscreteAdaptation(t *testing.T) {
	var seen *dataset.Dataset
	discLearner, err := learner.NewFunc("disc", dataset.Discrete,
		func(_ context.Context, d *dataset.Dataset) (*cpdag.Graph, error) {
			seen = d

			return cpdag.New("A", "B", "C"), nil
		})
	require.NoError(t, err)

	p := pipeline.New()
	p.AddLearner(discLearner)
	_, err = p.Run(context.Background(), benchData(t))
	assert.ErrorIs(t, err, pipeline.ErrNeedDiscrete)

	p.SetStrategy(discretize.Quantile{}, 2)
	_, err = p.Run(context.Background(), benchData(t))
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, dataset.Discrete, seen.Kind())
	assert.Equal(t, 4, seen.Len())
}

// TestRun_Cancellation returns the partial report with ctx.Err().
func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	first, err := learner.NewFunc("canceler", dataset.Continuous,
		func(context.Context, *dataset.Dataset) (*cpdag.Graph, error) {
			cancel() // cancel mid-run; the next learner must not start

			return cpdag.New("A", "B", "C"), nil
		})
	require.NoError(t, err)

	p := pipeline.New()
	p.AddLearner(first)
	p.AddLearner(learner.Fixed("never", collider(t)))

	rep, err := p.Run(ctx, benchData(t))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Len(t, rep.Results, 1, "the second learner must not have run")
}
