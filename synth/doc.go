// SPDX-License-Identifier: MIT

// Package synth generates self-contained benchmark instances: a random
// directed acyclic graph plus a continuous dataset sampled from a
// linear-Gaussian structural equation model over that graph.
//
// 🚀 What you get:
//
//   - DAG        — seeded random DAG over a shuffled topological order;
//     every forward pair becomes an arc with a fixed probability.
//   - SEM        — samples × variables dataset where each variable is a
//     weighted sum of its parents plus Gaussian noise; arc weights are
//     drawn once per graph, with random sign, from a magnitude range.
//   - Benchmark  — the two combined, with the golden structure already
//     normalized to its CPDAG, ready to feed a pipeline run.
//
// Everything is driven by a single seed, so a benchmark instance is
// fully reproducible from its options: the same seed yields the same
// graph, the same weights and the same samples.
//
// ⚙️ Usage:
//
//	ds, golden, err := synth.Benchmark(10, 500, synth.WithSeed(42))
//	// ds     — 500 samples over X0..X9, continuous
//	// golden — CPDAG of the generating DAG, ready for scoring
//
// Generation is plain plumbing around the model; there is no learning
// here and no claim about identifiability of the sampled system.
package synth
