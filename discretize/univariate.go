// SPDX-License-Identifier: MIT

package discretize

import (
	"sort"

	"github.com/mathisemb/cbnsl-benchmark/dataset"
)

// Uniform cuts every column into equal-width intervals between its
// minimum and maximum. Constant columns collapse into a single level.
type Uniform struct{}

// Name returns "uniform".
func (Uniform) Name() string { return "uniform" }

// Apply — equal-width binning, column by column.
//
// Each value maps to floor((v-min)/width) with width = (max-min)/bins,
// clamped into [0, bins). A constant column gets label 0 everywhere.
//
// Complexity: O(rows · columns).
func (Uniform) Apply(d *dataset.Dataset, bins int) (*dataset.Dataset, error) {
	if err := checkInput(d, bins); err != nil {
		return nil, err
	}

	return perColumn(d, bins, uniformLabels)
}

// uniformLabels assigns equal-width bin labels to one column.
func uniformLabels(col []float64, bins int) []int {
	lo, hi := col[0], col[0]
	for _, v := range col {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	labels := make([]int, len(col))
	if hi == lo {
		return labels // constant column: single level
	}
	width := (hi - lo) / float64(bins)
	for i, v := range col {
		lab := int((v - lo) / width)
		if lab >= bins {
			lab = bins - 1 // v == hi lands on the upper boundary
		}
		labels[i] = lab
	}

	return labels
}

// Quantile cuts every column at its k/bins quantiles so that bins hold
// roughly equal sample counts. Duplicate cut points collapse, so
// heavily tied columns may end up with fewer levels than requested.
type Quantile struct{}

// Name returns "quantile".
func (Quantile) Name() string { return "quantile" }

// Apply — equal-frequency binning, column by column.
// Complexity: O(rows · columns · log rows) for the per-column sorts.
func (Quantile) Apply(d *dataset.Dataset, bins int) (*dataset.Dataset, error) {
	if err := checkInput(d, bins); err != nil {
		return nil, err
	}

	return perColumn(d, bins, quantileLabels)
}

// quantileLabels assigns equal-frequency bin labels to one column.
func quantileLabels(col []float64, bins int) []int {
	cuts := quantileCuts(col, bins)
	labels := make([]int, len(col))
	for i, v := range col {
		// index of the first cut point at or above v = bin index
		labels[i] = sort.SearchFloat64s(cuts, v)
	}

	return labels
}

// quantileCuts returns the deduplicated interior cut points of the
// column at quantiles k/bins, k = 1..bins-1, ascending. Each cut sits
// halfway between the two samples straddling the quantile rank, so
// equal-frequency splits stay equal on tie-free data.
func quantileCuts(col []float64, bins int) []float64 {
	if len(col) < 2 {
		return nil // one sample: nothing to cut, single level
	}
	sorted := make([]float64, len(col))
	copy(sorted, col)
	sort.Float64s(sorted)

	cuts := make([]float64, 0, bins-1)
	for k := 1; k < bins; k++ {
		idx := k * len(sorted) / bins
		if idx < 1 {
			idx = 1
		}
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		c := (sorted[idx-1] + sorted[idx]) / 2
		if len(cuts) == 0 || c > cuts[len(cuts)-1] {
			cuts = append(cuts, c)
		}
	}

	return cuts
}

// KMeans clusters every column with one-dimensional Lloyd iterations.
// Seeding is deterministic (quantile mid-points), so repeated runs on
// the same data produce the same labels.
type KMeans struct{}

// kmeansMaxIter bounds the Lloyd loop; 1-D clustering converges in a
// handful of rounds in practice.
const kmeansMaxIter = 100

// Name returns "kmeans".
func (KMeans) Name() string { return "kmeans" }

// Apply — 1-D Lloyd clustering, column by column.
//
// Algorithm Outline:
//  1. Seed centers at the (k+½)/bins quantiles of the column.
//  2. Assign every value to its nearest center.
//  3. Move each center to the mean of its assignment; empty clusters
//     keep their position.
//  4. Repeat 2–3 until assignments stabilize or kmeansMaxIter rounds.
//  5. Relabel clusters by ascending center so labels are ordered.
//
// Complexity: O(rows · bins · iterations) per column.
func (KMeans) Apply(d *dataset.Dataset, bins int) (*dataset.Dataset, error) {
	if err := checkInput(d, bins); err != nil {
		return nil, err
	}

	return perColumn(d, bins, kmeansLabels)
}

// kmeansLabels assigns Lloyd-cluster labels to one column.
func kmeansLabels(col []float64, bins int) []int {
	// 1. Deterministic seeding: mid-quantile positions.
	sorted := make([]float64, len(col))
	copy(sorted, col)
	sort.Float64s(sorted)
	centers := make([]float64, bins)
	for k := range centers {
		idx := (2*k + 1) * len(sorted) / (2 * bins)
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		centers[k] = sorted[idx]
	}

	labels := make([]int, len(col))
	sums := make([]float64, bins)
	sizes := make([]int, bins)
	for iter := 0; iter < kmeansMaxIter; iter++ {
		// 2. Nearest-center assignment.
		changed := false
		for i, v := range col {
			best, bestDist := 0, distance(v, centers[0])
			for k := 1; k < bins; k++ {
				if dist := distance(v, centers[k]); dist < bestDist {
					best, bestDist = k, dist
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}
		// 3. Recenter on cluster means.
		for k := range centers {
			sums[k], sizes[k] = 0, 0
		}
		for i, v := range col {
			sums[labels[i]] += v
			sizes[labels[i]]++
		}
		for k := range centers {
			if sizes[k] > 0 {
				centers[k] = sums[k] / float64(sizes[k])
			}
		}
	}

	// 5. Order labels by center position.
	order := make([]int, bins)
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return centers[order[a]] < centers[order[b]] })
	rank := make([]int, bins)
	for pos, k := range order {
		rank[k] = pos
	}
	for i := range labels {
		labels[i] = rank[labels[i]]
	}

	return labels
}

// distance is the absolute 1-D distance.
func distance(a, b float64) float64 {
	if a > b {
		return a - b
	}

	return b - a
}
