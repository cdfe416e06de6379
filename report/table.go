// Package report: run-report rendering (aligned text and CSV).
//
// Errors:
//
//	ErrNoResults - a report or matrix with nothing in it.
//	ErrBadShape  - pairwise input with fewer than two structures.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/mathisemb/cbnsl-benchmark/pipeline"
)

// Sentinel errors for report rendering.
var (
	// ErrNoResults indicates an empty report or matrix.
	ErrNoResults = errors.New("report: no results")

	// ErrBadShape indicates pairwise input below two structures.
	ErrBadShape = errors.New("report: need at least two structures")
)

// scoreFormat renders metric values with enough digits to tell learners
// apart without drowning the table.
const scoreFormat = "%.4f"

// metricColumns collects the sorted union of metric names across all
// results, so partially failed runs still render a rectangular table.
func metricColumns(results []pipeline.Result) []string {
	seen := map[string]struct{}{}
	for _, r := range results {
		for name := range r.Scores {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// resultRow renders one learner's cells after the fixed columns.
func resultRow(r pipeline.Result, metrics []string) []string {
	row := make([]string, 0, len(metrics)+3)
	row = append(row, r.Learner, statusOf(r), r.Duration.String())
	for _, name := range metrics {
		if score, ok := r.Scores[name]; ok {
			row = append(row, fmt.Sprintf(scoreFormat, score))
		} else {
			row = append(row, "-")
		}
	}

	return row
}

// WriteTable renders the report as an aligned text table:
//
//	LEARNER  STATUS  DURATION  f1      shd
//	cpc      ok      1.2s      0.8571  2.0000
//	notears  error   4.0s      -       -
//
// Returns ErrNoResults on an empty report.
func WriteTable(w io.Writer, rep *pipeline.Report) error {
	if rep == nil || len(rep.Results) == 0 {
		return ErrNoResults
	}

	metrics := metricColumns(rep.Results)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "run %s: %d samples, %d variables (%s)\n",
		rep.RunID, rep.Dataset.Samples, rep.Dataset.Variables, rep.Dataset.Kind); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	header := "LEARNER\tSTATUS\tDURATION"
	for _, name := range metrics {
		header += "\t" + name
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for _, r := range rep.Results {
		line := ""
		for i, cell := range resultRow(r, metrics) {
			if i > 0 {
				line += "\t"
			}
			line += cell
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}

	return tw.Flush()
}

// WriteCSV exports the report as CSV with the same columns as the text
// table: learner, status, duration, then one column per metric name.
//
// Returns ErrNoResults on an empty report.
func WriteCSV(w io.Writer, rep *pipeline.Report) error {
	if rep == nil || len(rep.Results) == 0 {
		return ErrNoResults
	}

	metrics := metricColumns(rep.Results)
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"learner", "status", "duration"}, metrics...)); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	for _, r := range rep.Results {
		row := []string{r.Learner, statusOf(r), r.Duration.String()}
		for _, name := range metrics {
			if score, ok := r.Scores[name]; ok {
				row = append(row, strconv.FormatFloat(score, 'g', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// statusOf reduces a result to its table cell.
func statusOf(r pipeline.Result) string {
	if r.Err != nil {
		return "error"
	}

	return "ok"
}
