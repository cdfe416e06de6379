// Package learner defines the adapter boundary between the benchmark
// and the structure-learning algorithms it orchestrates.
//
// No algorithm lives here. Learners are opaque external collaborators:
// the benchmark hands one a dataset, gets back a structure, and never
// looks inside. The one obligation an adapter carries is normalization:
// whatever a tool emits — an arc list, a weighted adjacency matrix —
// must leave the adapter as a *cpdag.Graph, so the comparison engine
// never touches a tool-specific representation.
//
// 🚀 Adapters:
//
//   - Func — wraps an in-process closure; the workhorse for tests,
//     examples and any learner with a Go binding.
//   - Exec — shells out to an external command (a Python script, an R
//     wrapper, a compiled solver), feeding it a CSV on disk and reading
//     the learned structure back from stdout, in arc-list notation or
//     as a weight-matrix CSV that is thresholded and normalized to a
//     CPDAG.
//
// Each learner also declares the dataset kind it consumes; learners
// over discrete data get their input discretized by the pipeline
// before Learn is called.
//
// ⚙️ Usage:
//
//	cpc := learner.NewExec("cpc", "python3",
//		learner.WithArgs("cpc.py", "--data", learner.DataPathPlaceholder),
//		learner.WithTimeout(5*time.Minute))
//	g, err := cpc.Learn(ctx, ds)
package learner
