// SPDX-License-Identifier: MIT

// Package graphio reads and writes the two structure representations
// that cross this repository's process boundary: compact arc-list
// notation and weighted adjacency matrices in CSV form.
//
// 🚀 Notation:
//
//	A structure is a semicolon-separated list of terms. A term is a
//	chain of node labels joined by "->", "<-" or "--":
//
//	  "smoking->cancer; genetics->cancer"
//	  "A->B--C; D"                         (D is an isolated node)
//	  "X<-Y"                               (same as "Y->X")
//
//	The same notation is what cpdag.Graph.String() prints, so any graph
//	renders into a string that parses back into an equal graph.
//
// Structure files hold the same notation with one addition: "#" starts
// a comment and terms may spread over multiple lines.
//
// 🔢 Weight matrices:
//
//	Continuous-optimization learners emit an n×n weight matrix instead
//	of a graph. ReadWeightCSV loads the matrix (header row carries the
//	variable names), ThresholdGraph keeps every entry with magnitude
//	above a cutoff as a directed arc. DefaultWeightThreshold (0.3) is
//	the conventional cutoff for linear-SEM weight estimates.
//
// ⚙️ Usage:
//
//	g, err := graphio.ParseNotation("A->B; B--C")
//
//	names, w, err := graphio.ReadWeightCSVFile("weights.csv")
//	dag, err := graphio.ThresholdGraph(names, w, graphio.DefaultWeightThreshold)
//
// All parse failures wrap ErrBadNotation or ErrBadMatrix with position
// detail, so callers can branch on the sentinel and print the cause.
package graphio
