// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
)

// Sentinel errors for weight-matrix I/O and conversion.
var (
	// ErrBadMatrix indicates a malformed weight matrix: ragged rows,
	// non-numeric cells, shape not matching the header.
	ErrBadMatrix = errors.New("graphio: bad weight matrix")

	// ErrBadThreshold indicates a negative or non-finite cutoff.
	ErrBadThreshold = errors.New("graphio: threshold must be finite and non-negative")
)

// DefaultWeightThreshold is the conventional cutoff for linear-SEM
// weight estimates: |w| > 0.3 counts as an arc.
const DefaultWeightThreshold = 0.3

// WriteWeightCSV writes names as the header row and one CSV row per
// matrix row. The matrix must be square over len(names).
func WriteWeightCSV(w io.Writer, names []string, weights [][]float64) error {
	if len(weights) != len(names) {
		return fmt.Errorf("%w: %d rows for %d names", ErrBadMatrix, len(weights), len(names))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	row := make([]string, len(names))
	for i, r := range weights {
		if len(r) != len(names) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadMatrix, i, len(r), len(names))
		}
		for j, v := range r {
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("graphio: write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadWeightCSV reads a square weight matrix: header row of variable
// names, then one numeric row per variable.
//
// Errors: ErrBadMatrix wrapped with the offending position.
func ReadWeightCSV(r io.Reader) (names []string, weights [][]float64, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	names, err = cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: missing header: %w", ErrBadMatrix, err)
	}
	n := len(names)

	for {
		rec, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrBadMatrix, readErr)
		}
		if len(rec) != n {
			return nil, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadMatrix, len(weights), len(rec), n)
		}
		row := make([]float64, n)
		for j, cell := range rec {
			v, parseErr := strconv.ParseFloat(cell, 64)
			if parseErr != nil {
				return nil, nil, fmt.Errorf("%w: row %d col %d: %w", ErrBadMatrix, len(weights), j, parseErr)
			}
			row[j] = v
		}
		weights = append(weights, row)
	}
	if len(weights) != n {
		return nil, nil, fmt.Errorf("%w: %d rows for %d names", ErrBadMatrix, len(weights), n)
	}

	return names, weights, nil
}

// ReadWeightCSVFile loads a weight matrix from disk.
func ReadWeightCSVFile(path string) ([]string, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("graphio: open weights: %w", err)
	}
	defer f.Close()

	return ReadWeightCSV(f)
}

// ThresholdGraph — weight matrix to directed structure.
//
// Description:
//
//	Every entry weights[i][j] with |w| > threshold becomes the arc
//	names[i]→names[j]. The diagonal is ignored. This is the standard
//	normalization step for learners that estimate a linear-SEM weight
//	matrix rather than a graph.
//
// A matrix asserting both i→j and j→i describes no DAG; the conflict
// surfaces as cpdag.ErrRelationExists wrapped with both labels.
//
// Complexity: O(n²).
//
// Errors:
//   - ErrBadThreshold — threshold is negative, NaN or infinite.
//   - ErrBadMatrix    — shape does not match names.
func ThresholdGraph(names []string, weights [][]float64, threshold float64) (*cpdag.Graph, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return nil, ErrBadThreshold
	}
	if len(weights) != len(names) {
		return nil, fmt.Errorf("%w: %d rows for %d names", ErrBadMatrix, len(weights), len(names))
	}

	g := cpdag.New(names...)
	for i, row := range weights {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadMatrix, i, len(row), len(names))
		}
		for j, w := range row {
			if i == j || math.Abs(w) <= threshold {
				continue
			}
			if err := g.AddArc(names[i], names[j]); err != nil {
				return nil, fmt.Errorf("graphio: weight cell (%s,%s): %w", names[i], names[j], err)
			}
		}
	}

	return g, nil
}
