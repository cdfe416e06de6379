package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrBadCSV indicates a CSV stream that cannot become a Dataset.
var ErrBadCSV = errors.New("dataset: bad csv")

// CSVOptions configures CSV reading and writing.
//
// Fields:
//
//	Delimiter rune — field separator; ',' by default, '\t' for the
//	                 tab-separated exports common in expression data.
//	Kind      Kind — kind tag for the loaded dataset.
type CSVOptions struct {
	Delimiter rune
	Kind      Kind
}

// CSVOption configures CSVOptions.
type CSVOption func(*CSVOptions)

// WithDelimiter sets the field separator.
func WithDelimiter(d rune) CSVOption {
	return func(o *CSVOptions) { o.Delimiter = d }
}

// WithKind tags the loaded dataset as Continuous or Discrete.
func WithKind(k Kind) CSVOption {
	return func(o *CSVOptions) { o.Kind = k }
}

// DefaultCSVOptions returns comma-separated, continuous.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Delimiter: ',', Kind: Continuous}
}

func gatherCSVOptions(opts ...CSVOption) CSVOptions {
	o := DefaultCSVOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ReadCSV loads a dataset: header row of column names, then one numeric
// row per sample. All Dataset invariants apply to the parsed content.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Dataset, error) {
	o := gatherCSVOptions(opts...)
	cr := csv.NewReader(r)
	cr.Comma = o.Delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %w", ErrBadCSV, err)
	}

	var rows [][]float64
	for {
		rec, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadCSV, readErr)
		}
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, parseErr := strconv.ParseFloat(cell, 64)
			if parseErr != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %w", ErrBadCSV, len(rows), j, parseErr)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return New(header, rows, o.Kind)
}

// ReadCSVFile loads a dataset from disk.
func ReadCSVFile(path string, opts ...CSVOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open csv: %w", err)
	}
	defer f.Close()

	return ReadCSV(f, opts...)
}

// WriteCSV writes the header row and all samples. Discrete datasets
// serialize their bin indices without a fractional part, so external
// tools read them back as integers.
func (d *Dataset) WriteCSV(w io.Writer, opts ...CSVOption) error {
	o := gatherCSVOptions(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = o.Delimiter

	if err := cw.Write(d.names); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	rec := make([]string, len(d.names))
	for i, row := range d.rows {
		for j, v := range row {
			if d.kind == Discrete {
				rec[j] = strconv.Itoa(int(v))
			} else {
				rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile saves the dataset to disk.
func (d *Dataset) WriteCSVFile(path string, opts ...CSVOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create csv: %w", err)
	}
	if err = d.WriteCSV(f, opts...); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
