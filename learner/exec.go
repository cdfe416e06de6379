// SPDX-License-Identifier: MIT

package learner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/dataset"
	"github.com/mathisemb/cbnsl-benchmark/essential"
	"github.com/mathisemb/cbnsl-benchmark/graphio"
)

// OutputFormat names the representation an external command prints.
type OutputFormat uint8

const (
	// FormatNotation expects arc-list notation on stdout, e.g.
	// "A->B; B--C; D".
	FormatNotation OutputFormat = iota

	// FormatWeights expects a weight-matrix CSV on stdout (header row
	// of variable names, one numeric row per variable). The matrix is
	// thresholded into a DAG and normalized to its essential graph.
	FormatWeights
)

// DataPathPlaceholder marks where the dataset CSV path is spliced into
// the command arguments.
const DataPathPlaceholder = "{data}"

// maxStderrExcerpt bounds how much captured stderr ends up in errors.
const maxStderrExcerpt = 400

// ExecOptions configures an Exec adapter.
//
// Fields:
//
//	Args      []string      — command arguments; every occurrence of
//	                          DataPathPlaceholder becomes the CSV path.
//	                          Without the placeholder the path is
//	                          appended as the final argument.
//	Dir       string        — working directory; empty inherits.
//	Timeout   time.Duration — per-run cap; zero means no cap.
//	Kind      dataset.Kind  — dataset kind the tool consumes.
//	Format    OutputFormat  — how stdout is parsed.
//	Threshold float64       — |weight| cutoff for FormatWeights.
type ExecOptions struct {
	Args      []string
	Dir       string
	Timeout   time.Duration
	Kind      dataset.Kind
	Format    OutputFormat
	Threshold float64
}

// ExecOption configures ExecOptions; last writer wins.
type ExecOption func(*ExecOptions)

// WithArgs sets the command arguments.
func WithArgs(args ...string) ExecOption {
	return func(o *ExecOptions) { o.Args = args }
}

// WithDir sets the working directory of the command.
func WithDir(dir string) ExecOption {
	return func(o *ExecOptions) { o.Dir = dir }
}

// WithTimeout caps one Learn invocation; the command is killed at the
// deadline and Learn returns ErrExecFailed.
func WithTimeout(d time.Duration) ExecOption {
	return func(o *ExecOptions) { o.Timeout = d }
}

// WithDataKind declares the dataset kind the tool consumes.
func WithDataKind(k dataset.Kind) ExecOption {
	return func(o *ExecOptions) { o.Kind = k }
}

// WithFormat selects how the tool's stdout is parsed.
func WithFormat(f OutputFormat) ExecOption {
	return func(o *ExecOptions) { o.Format = f }
}

// WithThreshold sets the |weight| cutoff used under FormatWeights.
func WithThreshold(t float64) ExecOption {
	return func(o *ExecOptions) { o.Threshold = t }
}

// DefaultExecOptions returns the standard configuration:
//
//	– no extra args, inherited working directory, no timeout,
//	– Continuous input, FormatNotation output,
//	– Threshold = graphio.DefaultWeightThreshold.
func DefaultExecOptions() ExecOptions {
	return ExecOptions{
		Kind:      dataset.Continuous,
		Format:    FormatNotation,
		Threshold: graphio.DefaultWeightThreshold,
	}
}

// Exec adapts an external command into a Learner.
//
// One Learn call: the dataset is written to a temporary CSV, the
// command runs with the CSV path spliced into its arguments, stdout is
// parsed per the configured format, and the temporary file is removed.
// The command never sees anything but the CSV; the benchmark never
// sees anything but the returned CPDAG.
type Exec struct {
	name    string
	command string
	opts    ExecOptions
}

// NewExec builds an external-command adapter named name.
//
// Errors:
//   - ErrNoCommand — command is empty.
//   - ErrBadFormat — the configured output format is unknown.
func NewExec(name, command string, opts ...ExecOption) (*Exec, error) {
	if command == "" {
		return nil, ErrNoCommand
	}
	o := DefaultExecOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Format != FormatNotation && o.Format != FormatWeights {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, o.Format)
	}

	return &Exec{name: name, command: command, opts: o}, nil
}

// Name returns the adapter's identifier.
func (e *Exec) Name() string { return e.name }

// DataKind returns the dataset kind the external tool consumes.
func (e *Exec) DataKind() dataset.Kind { return e.opts.Kind }

// Learn — run the external command on d and parse its structure.
//
// Algorithm Outline:
//  1. Write d to a temporary CSV (removed before returning).
//  2. Splice the CSV path into the argument list.
//  3. Run the command under ctx (plus the configured timeout), capturing
//     stdout and stderr separately.
//  4. Parse stdout: arc-list notation directly, or weight-matrix CSV →
//     threshold → essential-graph normalization.
//
// Errors:
//   - ErrExecFailed — non-zero exit, kill by deadline, spawn failure;
//     wrapped with a stderr excerpt when one exists.
//   - ErrBadOutput  — stdout parsed into nothing usable.
func (e *Exec) Learn(ctx context.Context, d *dataset.Dataset) (*cpdag.Graph, error) {
	// 1. Dataset to disk; the tool reads files, not pipes.
	tmp, err := os.CreateTemp("", "cbnsl-*.csv")
	if err != nil {
		return nil, fmt.Errorf("learner: temp dataset: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)
	if err = d.WriteCSV(tmp); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("learner: write dataset: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("learner: close dataset: %w", err)
	}

	// 2-3. Run with the path spliced in.
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, e.command, spliceArgs(e.opts.Args, path)...)
	cmd.Dir = e.opts.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w%s", ErrExecFailed, filepath.Base(e.command), err, stderrExcerpt(&stderr))
	}

	// 4. Normalize the tool's answer to a CPDAG.
	return e.parseOutput(stdout.String())
}

// spliceArgs substitutes the dataset path for every placeholder, or
// appends it when no placeholder is present.
func spliceArgs(args []string, path string) []string {
	out := make([]string, len(args))
	found := false
	for i, a := range args {
		if strings.Contains(a, DataPathPlaceholder) {
			a = strings.ReplaceAll(a, DataPathPlaceholder, path)
			found = true
		}
		out[i] = a
	}
	if !found {
		out = append(out, path)
	}

	return out
}

// stderrExcerpt renders a bounded stderr tail for error messages.
func stderrExcerpt(buf *bytes.Buffer) string {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return ""
	}
	if len(s) > maxStderrExcerpt {
		s = s[len(s)-maxStderrExcerpt:]
	}

	return ": " + s
}

// parseOutput turns captured stdout into a normalized CPDAG.
func (e *Exec) parseOutput(out string) (*cpdag.Graph, error) {
	switch e.opts.Format {
	case FormatNotation:
		g, err := graphio.ParseNotation(strings.TrimSpace(out))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadOutput, err)
		}

		return g, nil
	case FormatWeights:
		names, weights, err := graphio.ReadWeightCSV(strings.NewReader(out))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadOutput, err)
		}
		dag, err := graphio.ThresholdGraph(names, weights, e.opts.Threshold)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadOutput, err)
		}
		g, err := essential.FromDAG(dag)
		if err != nil {
			return nil, fmt.Errorf("%w: thresholded matrix is no DAG: %w", ErrBadOutput, err)
		}

		return g, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, e.opts.Format)
	}
}
