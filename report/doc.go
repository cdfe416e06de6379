// Package report renders benchmark outcomes as plain-text tables and
// CSV exports, and computes pairwise agreement matrices for runs
// without a ground truth.
//
// Two shapes come out of a benchmark:
//
//   - A run report: one row per learner with status, duration and the
//     metric scores against the golden structure. Rendered aligned for
//     terminals (text/tabwriter) or as CSV for spreadsheets.
//   - A pairwise matrix: k learned structures, one k×k grid per metric,
//     each cell scoring structure row against structure column. This is
//     the agreement analysis used when no golden structure exists — the
//     tabular data behind a heatmap, without the pixels (rendering is
//     out of scope here).
//
// The SHD cells of a pairwise matrix are symmetric; F1, TPR and
// precision generally are not, because swapping reference and candidate
// swaps which side the false negatives land on.
package report
