// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/mathisemb/cbnsl-benchmark/compare"
	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/metric"
)

// Structure pairs a learned graph with the learner that produced it.
type Structure struct {
	Name  string
	Graph *cpdag.Graph
}

// Matrix is one metric's k×k pairwise grid: Cells[i][j] scores
// structure i as reference against structure j as candidate. The
// diagonal holds self-comparison values (0 for SHD, 1 for F1 on
// non-empty structures).
type Matrix struct {
	Metric string
	Labels []string
	Cells  [][]float64
}

// PairwiseMatrix — candidate-vs-candidate agreement over one metric.
//
// Description:
//
//	The pairwise analysis replaces golden-structure scoring when no
//	ground truth exists: learners that agree with each other cluster,
//	outliers stand out. Every ordered pair (i, j) is compared once,
//	diagonal included, so row i reads "structure i as the reference".
//
// Complexity: O(k² · n²) for k structures over n nodes.
//
// Errors:
//   - ErrBadShape — fewer than two structures.
//   - compare sentinel errors — nil graphs or node-set mismatches among
//     the structures (all structures must share one node set).
func PairwiseMatrix(structures []Structure, m metric.Metric, opts ...compare.Option) (*Matrix, error) {
	if len(structures) < 2 {
		return nil, ErrBadShape
	}

	mat := &Matrix{
		Metric: m.Name(),
		Labels: make([]string, len(structures)),
		Cells:  make([][]float64, len(structures)),
	}
	for i, s := range structures {
		mat.Labels[i] = s.Name
		mat.Cells[i] = make([]float64, len(structures))
		for j, other := range structures {
			res, err := compare.Compare(s.Graph, other.Graph, opts...)
			if err != nil {
				return nil, fmt.Errorf("report: %q vs %q: %w", s.Name, other.Name, err)
			}
			mat.Cells[i][j] = m.Score(res)
		}
	}

	return mat, nil
}

// WriteTable renders the matrix as an aligned text grid with the metric
// name in the corner cell.
//
// Returns ErrNoResults on an empty matrix.
func (m *Matrix) WriteTable(w io.Writer) error {
	if m == nil || len(m.Cells) == 0 {
		return ErrNoResults
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := m.Metric
	for _, label := range m.Labels {
		header += "\t" + label
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("report: write matrix header: %w", err)
	}
	for i, row := range m.Cells {
		line := m.Labels[i]
		for _, cell := range row {
			line += "\t" + fmt.Sprintf(scoreFormat, cell)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("report: write matrix row: %w", err)
		}
	}

	return tw.Flush()
}

// WriteCSV exports the matrix with row labels in the first column and
// the metric name in the corner cell.
//
// Returns ErrNoResults on an empty matrix.
func (m *Matrix) WriteCSV(w io.Writer) error {
	if m == nil || len(m.Cells) == 0 {
		return ErrNoResults
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{m.Metric}, m.Labels...)); err != nil {
		return fmt.Errorf("report: write matrix csv header: %w", err)
	}
	for i, row := range m.Cells {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, m.Labels[i])
		for _, cell := range row {
			rec = append(rec, strconv.FormatFloat(cell, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write matrix csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
