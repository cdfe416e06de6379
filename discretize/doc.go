// Package discretize turns continuous measurement columns into integer
// bin indices for learners that only accept discrete data.
//
// 🚀 Strategies:
//
//   - uniform   — equal-width bins between column min and max.
//   - quantile  — equal-frequency bins; duplicate cut points collapse,
//     so heavily tied data may end up with fewer bins.
//   - kmeans    — one-dimensional Lloyd clustering with deterministic
//     quantile seeding; bin boundaries follow the data's density.
//   - hartemink — information-preserving discretization (Hartemink,
//     2001): start from a finer initial binning, then greedily merge
//     the adjacent bin pair that loses the least total pairwise mutual
//     information against all other variables, until the target bin
//     count is reached. The only multivariate strategy of the set: it
//     considers inter-variable dependencies instead of each column in
//     isolation, which is exactly what a structure learner cares about.
//
// Every strategy validates its input (continuous kind, at least two
// bins) and returns a fresh Discrete dataset; the input is never
// touched.
//
// ⚙️ Usage:
//
//	s, err := discretize.ByName("hartemink")
//	disc, err := s.Apply(continuousData, 3)
//
// Strategy selection by name mirrors the benchmark config file format,
// where a run declares `discretization: {strategy: quantile, bins: 3}`.
package discretize
