// Command cbnslbench benchmarks continuous Bayesian-network structure
// learners: it runs external learners over a dataset, normalizes their
// answers to CPDAGs, and scores them against a golden structure or
// against each other.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cbnslbench:", err)
		os.Exit(1)
	}
}
