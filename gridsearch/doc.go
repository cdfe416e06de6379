// Package gridsearch sweeps a learner's parameter space against one
// dataset and golden structure, then selects winners.
//
// 🚀 The moving parts:
//
//   - Combinations — the Cartesian product of the varied parameter
//     lists, in deterministic (sorted-key, odometer) order, each merged
//     over the fixed parameters.
//   - Search — one trial per combination: the factory builds a learner
//     for the parameters, a single-learner pipeline run learns and
//     scores it, and the trial records structure, scores, duration and
//     error. A failing trial is data; the sweep continues.
//   - Best — the winning trial for one metric, honoring the metric's
//     objective direction (SHD descends, F1 ascends).
//   - ParetoFront / BestOnFront — multi-objective selection: the
//     non-dominated trials, optionally ranked within the front by a
//     tie-breaking metric.
//
// ⚙️ Usage:
//
//	trials, err := gridsearch.Search(ctx, ds, gridsearch.Config{
//		Grid:    map[string][]any{"alpha": {0.01, 0.05, 0.1}},
//		Fixed:   gridsearch.Params{"max_cond": 3},
//		Factory: newCPC,
//		Metrics: metric.All(),
//		Golden:  golden,
//	})
//	winner, err := gridsearch.Best(trials, metric.SHD{})
//
// Trials run sequentially; the benchmark's cost lives inside the
// external learners, not here.
package gridsearch
