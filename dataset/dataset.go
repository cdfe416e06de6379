// Package dataset: the Dataset type, validation and summary statistics.
//
// Errors:
//
//	ErrNoColumns       - no column names given.
//	ErrEmptyDataset    - no sample rows given.
//	ErrDuplicateColumn - two columns share a name.
//	ErrEmptyColumnName - a column name is the empty string.
//	ErrRaggedRow       - a row's width differs from the header.
//	ErrBadValue        - a cell is NaN or infinite.
//	ErrUnknownColumn   - a queried column name does not exist.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for dataset construction and queries.
var (
	// ErrNoColumns indicates an empty column name list.
	ErrNoColumns = errors.New("dataset: no columns")

	// ErrEmptyDataset indicates zero sample rows.
	ErrEmptyDataset = errors.New("dataset: no rows")

	// ErrDuplicateColumn indicates a repeated column name.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")

	// ErrEmptyColumnName indicates an empty column name.
	ErrEmptyColumnName = errors.New("dataset: empty column name")

	// ErrRaggedRow indicates a row width differing from the header.
	ErrRaggedRow = errors.New("dataset: ragged row")

	// ErrBadValue indicates a NaN or infinite cell.
	ErrBadValue = errors.New("dataset: non-finite value")

	// ErrUnknownColumn indicates a column name that does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")
)

// Kind tells whether the cells are raw measurements or bin indices.
type Kind uint8

const (
	// Continuous marks real-valued measurement columns.
	Continuous Kind = iota

	// Discrete marks columns holding integer bin indices produced by a
	// discretization strategy (stored as float64 for uniform access).
	Discrete
)

// String returns "continuous" or "discrete".
func (k Kind) String() string {
	if k == Discrete {
		return "discrete"
	}

	return "continuous"
}

// Dataset is an immutable samples × variables table.
type Dataset struct {
	names []string
	index map[string]int // column name → position
	rows  [][]float64
	kind  Kind
}

// New validates and wraps the given table. The rows slice is retained,
// not copied; the caller hands over ownership.
//
// Returns ErrNoColumns, ErrEmptyDataset, ErrEmptyColumnName,
// ErrDuplicateColumn, ErrRaggedRow or ErrBadValue on invalid input.
// Complexity: O(rows · columns).
func New(names []string, rows [][]float64, kind Kind) (*Dataset, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptyColumnName
		}
		if _, seen := index[name]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		index[name] = i
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, i, len(row), len(names))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d col %q", ErrBadValue, i, names[j])
			}
		}
	}

	return &Dataset{names: names, index: index, rows: rows, kind: kind}, nil
}

// Names returns a copy of the column names in table order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)

	return out
}

// Len returns the number of sample rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Vars returns the number of variables (columns).
func (d *Dataset) Vars() int { return len(d.names) }

// Kind returns whether the table is continuous or discrete.
func (d *Dataset) Kind() Kind { return d.kind }

// At returns the cell at sample i, column j. Bounds are the caller's
// job, as with any slice access.
func (d *Dataset) At(i, j int) float64 { return d.rows[i][j] }

// Row returns a copy of sample i.
func (d *Dataset) Row(i int) []float64 {
	out := make([]float64, len(d.rows[i]))
	copy(out, d.rows[i])

	return out
}

// Column returns a copy of the named column's values.
//
// Returns ErrUnknownColumn (wrapped with the name) when absent.
func (d *Dataset) Column(name string) ([]float64, error) {
	j, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	out := make([]float64, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[j]
	}

	return out, nil
}

// ColumnAt returns a copy of column j in table order.
func (d *Dataset) ColumnAt(j int) []float64 {
	out := make([]float64, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[j]
	}

	return out
}

// Stats summarizes one column.
type Stats struct {
	N    int
	Mean float64
	Std  float64 // population standard deviation
	Min  float64
	Max  float64
}

// ColumnStats computes N, mean, population std, min and max for the
// named column in one pass over the rows.
//
// Returns ErrUnknownColumn when the name does not exist.
func (d *Dataset) ColumnStats(name string) (Stats, error) {
	col, err := d.Column(name)
	if err != nil {
		return Stats{}, err
	}

	s := Stats{N: len(col), Min: col[0], Max: col[0]}
	var sum, sumSq float64
	for _, v := range col {
		sum += v
		sumSq += v * v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(s.N)
	variance := sumSq/float64(s.N) - s.Mean*s.Mean
	if variance > 0 {
		s.Std = math.Sqrt(variance)
	}

	return s, nil
}
