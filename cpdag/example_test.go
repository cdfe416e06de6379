package cpdag_test

import (
	"fmt"

	"github.com/mathisemb/cbnsl-benchmark/cpdag"
)

// ExampleGraph builds a small CPDAG and inspects pair relations.
//
// Scenario:
//
//	Sprinkler-style toy structure: Season→Rain identified, Rain and
//	Wet lawn left undirected, Season and Wet lawn unrelated.
func ExampleGraph() {
	g := cpdag.New()
	_ = g.AddArc("season", "rain")
	_ = g.AddEdge("rain", "wet")

	rel, _ := g.Relation("rain", "season")
	fmt.Println("rain vs season:", rel)

	rel, _ = g.Relation("season", "wet")
	fmt.Println("season vs wet:", rel)

	fmt.Println(g)
	// Output:
	// rain vs season: arc-backward
	// season vs wet: none
	// rain--wet; season->rain
}

// ExampleGraph_Clone shows that clones are fully detached copies.
func ExampleGraph_Clone() {
	g := cpdag.New()
	_ = g.AddArc("A", "B")

	c := g.Clone()
	_ = c.AddEdge("B", "C")

	fmt.Println("original:", g)
	fmt.Println("clone:   ", c)
	// Output:
	// original: A->B
	// clone:    A->B; B--C
}
