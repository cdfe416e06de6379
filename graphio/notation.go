// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
)

// Sentinel errors for structure I/O.
var (
	// ErrBadNotation indicates a malformed arc-list string.
	ErrBadNotation = errors.New("graphio: bad structure notation")

	// ErrNilGraph indicates a nil graph passed to a writer.
	ErrNilGraph = errors.New("graphio: nil graph")
)

// connector tokens recognized inside a term, longest first.
var connectors = []string{"->", "<-", "--"}

// ParseNotation builds a Graph from arc-list notation.
//
// Grammar:
//
//	structure = term { ";" term }
//	term      = label { ("->" | "<-" | "--") label }
//
// A single-label term declares an isolated node. Whitespace around
// labels and semicolons is ignored. Declaring the same pair twice (in
// any form) fails: one relation per pair is a structural invariant.
//
// Errors: ErrBadNotation wrapped with the offending term; relation
// conflicts surface cpdag.ErrRelationExists wrapped the same way.
func ParseNotation(s string) (*cpdag.Graph, error) {
	g := cpdag.New()
	for _, term := range strings.Split(s, ";") {
		if err := parseTerm(g, term); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// parseTerm applies one chain term to the graph under construction.
func parseTerm(g *cpdag.Graph, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil // empty terms (trailing semicolons, blank lines) are fine
	}

	prev, rest, err := nextLabel(term)
	if err != nil {
		return err
	}
	if rest == "" { // isolated node
		return g.AddNode(prev)
	}

	for rest != "" {
		op := rest[:2]
		var next string
		next, rest, err = nextLabel(rest[2:])
		if err != nil {
			return err
		}
		switch op {
		case "->":
			err = g.AddArc(prev, next)
		case "<-":
			err = g.AddArc(next, prev)
		case "--":
			err = g.AddEdge(prev, next)
		}
		if err != nil {
			return fmt.Errorf("%w: term %q: %w", ErrBadNotation, term, err)
		}
		prev = next
	}

	return nil
}

// nextLabel splits off the leading label, stopping at the first
// connector token. Empty labels are malformed.
func nextLabel(s string) (label, rest string, err error) {
	cut := len(s)
	for _, c := range connectors {
		if i := strings.Index(s, c); i >= 0 && i < cut {
			cut = i
		}
	}
	label = strings.TrimSpace(s[:cut])
	if label == "" {
		return "", "", fmt.Errorf("%w: empty label in %q", ErrBadNotation, s)
	}
	if strings.ContainsAny(label, " \t") {
		return "", "", fmt.Errorf("%w: label %q contains whitespace", ErrBadNotation, label)
	}

	return label, s[cut:], nil
}

// FormatNotation renders the canonical notation for g, the same string
// Graph.String produces.
//
// Returns ErrNilGraph for a nil graph.
func FormatNotation(g *cpdag.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	return g.String(), nil
}

// ReadStructureFile loads a structure file: arc-list notation spread
// over any number of lines, "#" comments and blank lines skipped.
func ReadStructureFile(path string) (*cpdag.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open structure: %w", err)
	}
	defer f.Close()

	g := cpdag.New()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.Index(text, "#"); i >= 0 {
			text = text[:i]
		}
		for _, term := range strings.Split(text, ";") {
			if err = parseTerm(g, term); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read structure: %w", err)
	}

	return g, nil
}

// WriteStructureFile saves g in canonical notation, one term per line,
// so diffs of learned structures stay readable.
func WriteStructureFile(path string, g *cpdag.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	s, err := FormatNotation(g)
	if err != nil {
		return err
	}
	if s != "" {
		s = strings.ReplaceAll(s, "; ", "\n") + "\n"
	}

	return os.WriteFile(path, []byte(s), 0o644)
}
