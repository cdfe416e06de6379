package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mathisemb/cbnsl-benchmark/metric"
	"github.com/mathisemb/cbnsl-benchmark/pipeline"
	"github.com/mathisemb/cbnsl-benchmark/report"
)

var (
	runConfigPath string
	runPairwise   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a benchmark sweep described by a YAML config",
	Long: `Run every configured learner over the dataset, score the learned
structures against the golden structure when one is configured, and
print the results table. With --pairwise, additionally print one
agreement matrix per metric over the successfully learned structures —
the analysis of choice when no ground truth exists.`,
	RunE: runBenchmark,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "benchmark.yaml",
		"benchmark config file")
	runCmd.Flags().BoolVar(&runPairwise, "pairwise", false,
		"print pairwise agreement matrices over the learned structures")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(runConfigPath)
	if err != nil {
		return err
	}
	ds, err := cfg.loadDataset()
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	p, err := cfg.buildPipeline()
	if err != nil {
		return err
	}

	rep, err := p.Run(cmd.Context(), ds)
	if err != nil {
		return err
	}

	if err = report.WriteTable(os.Stdout, rep); err != nil {
		return err
	}

	if cfg.Output.CSV != "" {
		f, createErr := os.Create(cfg.Output.CSV)
		if createErr != nil {
			return fmt.Errorf("csv output: %w", createErr)
		}
		defer f.Close()
		if err = report.WriteCSV(f, rep); err != nil {
			return err
		}
		logger.Info("results exported", zap.String("path", cfg.Output.CSV))
	}

	if runPairwise {
		return printPairwise(cfg, rep.Results)
	}

	return nil
}

// printPairwise renders one agreement matrix per configured metric over
// the structures that were actually learned.
func printPairwise(cfg *Config, results []pipeline.Result) error {
	var structures []report.Structure
	for _, r := range results {
		if r.Err == nil && r.Graph != nil {
			structures = append(structures, report.Structure{Name: r.Learner, Graph: r.Graph})
		}
	}
	if len(structures) < 2 {
		return fmt.Errorf("pairwise analysis needs two learned structures, got %d", len(structures))
	}

	names := cfg.Metrics
	if len(names) == 0 {
		for _, m := range metric.All() {
			names = append(names, m.Name())
		}
	}
	for _, name := range names {
		m, err := metric.ByName(name)
		if err != nil {
			return err
		}
		mat, err := report.PairwiseMatrix(structures, m, cfg.comparePolicy()...)
		if err != nil {
			return err
		}
		fmt.Println()
		if err = mat.WriteTable(os.Stdout); err != nil {
			return err
		}
	}

	return nil
}
