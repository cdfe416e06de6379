// Package metric turns structural comparison results into named scalar
// scores (shd, f1, tpr, precision) with an explicit objective direction,
// so benchmark sweeps and grid searches can rank candidates without
// hard-coding which way "better" points.
package metric
