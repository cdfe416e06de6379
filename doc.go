// Package cbnslbenchmark is a benchmark harness for continuous
// Bayesian-network structure learning: run several learners over one
// dataset, normalize every answer to a CPDAG, and score the structures
// against a ground truth or against each other.
//
// 🚀 What lives here?
//
//	The learners themselves do not — they are external tools behind
//	adapters. The module is the arena around them:
//		• cpdag      — the CPDAG value type: nodes, arcs, undirected edges
//		• compare    — pairwise structural comparison (the scoring engine)
//		• metric     — SHD, F1, TPR, precision over comparison results
//		• essential  — DAG → essential graph (CPDAG) normalization
//		• graphio    — arc-list notation and weight-matrix I/O
//		• dataset    — samples × variables tables, CSV in and out
//		• discretize — uniform / quantile / k-means / Hartemink binning
//		• learner    — the adapter boundary (in-process and exec)
//		• pipeline   — one sweep: adapt, learn, score, report
//		• gridsearch — parameter sweeps, best-by-metric, Pareto fronts
//		• report     — result tables, CSV exports, agreement matrices
//		• synth      — seeded synthetic DAG + dataset instances
//
// ✨ Design rules the packages share:
//
//   - Every structure becomes a cpdag.Graph at the adapter boundary;
//     nothing downstream knows how a structure was learned.
//   - Comparison is pure and total: ten classification categories
//     cover every relation combination, no default branch.
//   - A learner failure is benchmark data, never a crash.
//   - Everything is deterministic given a seed, including the
//     synthetic instances and every iteration order.
//
// Start with the compare package for the scoring semantics, or
// cmd/cbnslbench for the command-line surface.
package cbnslbenchmark
