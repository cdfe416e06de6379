package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Global flags and the shared logger, initialized in PersistentPreRunE
// before any subcommand runs.
var (
	devLogging bool
	logger     *zap.Logger

	rootCmd = &cobra.Command{
		Use:   "cbnslbench",
		Short: "Benchmark continuous-BN structure learners against each other or a ground truth",
		Long: `cbnslbench orchestrates structure-learning algorithms over a shared
dataset, converts every learned structure to a CPDAG, and scores the
results with structural comparison metrics (SHD, F1, TPR, precision).

The algorithms themselves are external tools; cbnslbench feeds them a
dataset CSV and reads back either an arc-list structure or a weighted
adjacency matrix.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is a convenience for learner tool paths; absence is fine
			_ = godotenv.Load()

			var err error
			if devLogging {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&devLogging, "dev", false,
		"human-readable development logging instead of JSON")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(synthCmd)
}
