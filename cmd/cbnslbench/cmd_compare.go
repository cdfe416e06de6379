package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mathisemb/cbnsl-benchmark/compare"
	"github.com/mathisemb/cbnsl-benchmark/metric"
)

var comparePolicy string

var compareCmd = &cobra.Command{
	Use:   "compare <reference> <candidate>",
	Short: "Score one structure against another",
	Long: `Compare two structures pair by pair and print every metric.

Each argument is either a structure file or inline arc-list notation:

  cbnslbench compare golden.txt learned.txt
  cbnslbench compare 'A->B; B--C' 'B->A; B--C'`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&comparePolicy, "policy", "penalize-once",
		"FP/FN counting convention: penalize-once or penalize-twice")
}

func runCompare(cmd *cobra.Command, args []string) error {
	reference, err := loadStructureArg(args[0])
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	candidate, err := loadStructureArg(args[1])
	if err != nil {
		return fmt.Errorf("candidate: %w", err)
	}

	var opts []compare.Option
	switch comparePolicy {
	case "penalize-once":
		// default
	case "penalize-twice":
		opts = append(opts, compare.WithPolicy(compare.PenalizeTwice))
	default:
		return fmt.Errorf("unknown policy %q", comparePolicy)
	}

	res, err := compare.Compare(reference, candidate, opts...)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "pairs\t%d\n", res.Pairs)
	fmt.Fprintf(tw, "TP\t%d\nFP\t%d\nFN\t%d\n", res.TP, res.FP, res.FN)
	for _, m := range metric.All() {
		fmt.Fprintf(tw, "%s\t%.4f\n", m.Name(), m.Score(res))
	}

	return tw.Flush()
}
