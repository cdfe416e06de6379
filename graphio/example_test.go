// SPDX-License-Identifier: MIT

package graphio_test

import (
	"fmt"

	"github.com/mathisemb/cbnsl-benchmark/graphio"
)

// ExampleParseNotation loads a ground-truth structure from its compact
// string form.
func ExampleParseNotation() {
	g, err := graphio.ParseNotation("smoking->cancer; genetics->cancer; cancer--cough")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("nodes:", g.NodeCount())
	fmt.Println(g)
	// Output:
	// nodes: 4
	// cancer--cough; genetics->cancer; smoking->cancer
}

// ExampleThresholdGraph turns a linear-SEM weight estimate into arcs.
func ExampleThresholdGraph() {
	names := []string{"X1", "X2", "X3"}
	weights := [][]float64{
		{0, 0.82, 0.04},
		{0, 0, -0.61},
		{0, 0, 0},
	}

	g, _ := graphio.ThresholdGraph(names, weights, graphio.DefaultWeightThreshold)
	fmt.Println(g)
	// Output:
	// X1->X2; X2->X3
}
