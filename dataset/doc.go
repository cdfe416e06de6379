// Package dataset holds the tabular samples a structure learner
// consumes: named float64 columns, row-major storage, and a Kind flag
// separating continuous measurements from discretized bin indices.
//
// A Dataset is validated on construction (unique non-empty column
// names, rectangular rows, finite values) and read-only afterwards, so
// every consumer can share one instance without copies. CSV load and
// save with a configurable delimiter covers the interchange format used
// by external learner processes; summary statistics per column support
// discretization and synthetic-data checks.
package dataset
