package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mathisemb/cbnsl-benchmark/compare"
	"github.com/mathisemb/cbnsl-benchmark/cpdag"
	"github.com/mathisemb/cbnsl-benchmark/dataset"
	"github.com/mathisemb/cbnsl-benchmark/discretize"
	"github.com/mathisemb/cbnsl-benchmark/graphio"
	"github.com/mathisemb/cbnsl-benchmark/learner"
	"github.com/mathisemb/cbnsl-benchmark/metric"
	"github.com/mathisemb/cbnsl-benchmark/pipeline"
)

// Config is the YAML benchmark description consumed by `cbnslbench run`.
type Config struct {
	Dataset struct {
		Path      string `yaml:"path" validate:"required"`
		Delimiter string `yaml:"delimiter" validate:"omitempty,oneof=comma tab"`
		Kind      string `yaml:"kind" validate:"omitempty,oneof=continuous discrete"`
	} `yaml:"dataset"`

	// Golden is an optional structure file in arc-list notation.
	Golden string `yaml:"golden"`

	Metrics []string `yaml:"metrics" validate:"dive,oneof=shd f1 tpr precision"`

	// Policy selects the FP/FN counting convention.
	Policy string `yaml:"policy" validate:"omitempty,oneof=penalize-once penalize-twice"`

	Discretization struct {
		Strategy string `yaml:"strategy" validate:"omitempty,oneof=uniform quantile kmeans hartemink"`
		Bins     int    `yaml:"bins" validate:"omitempty,min=2"`
	} `yaml:"discretization"`

	Learners []LearnerConfig `yaml:"learners" validate:"required,min=1,dive"`

	Output struct {
		CSV string `yaml:"csv"`
	} `yaml:"output"`
}

// LearnerConfig describes one external learner invocation.
type LearnerConfig struct {
	Name    string   `yaml:"name" validate:"required"`
	Command string   `yaml:"command" validate:"required"`
	Args    []string `yaml:"args"`
	Dir     string   `yaml:"dir"`

	// Timeout is a Go duration string, e.g. "5m"; empty means no cap.
	Timeout   string  `yaml:"timeout"`
	Kind      string  `yaml:"kind" validate:"omitempty,oneof=continuous discrete"`
	Format    string  `yaml:"format" validate:"omitempty,oneof=notation weights"`
	Threshold float64 `yaml:"threshold" validate:"omitempty,gt=0"`
}

var validate = validator.New()

// loadConfig reads, parses and validates a benchmark config file.
func loadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err = validate.Struct(&cfg); err != nil {
		return nil, formatValidationError(err)
	}

	return &cfg, nil
}

// formatValidationError rewrites validator output into per-field
// messages a config author can act on.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Namespace())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// loadDataset opens the configured dataset file.
func (c *Config) loadDataset() (*dataset.Dataset, error) {
	var opts []dataset.CSVOption
	if c.Dataset.Delimiter == "tab" {
		opts = append(opts, dataset.WithDelimiter('\t'))
	}
	if c.Dataset.Kind == "discrete" {
		opts = append(opts, dataset.WithKind(dataset.Discrete))
	}

	return dataset.ReadCSVFile(c.Dataset.Path, opts...)
}

// comparePolicy resolves the configured counting policy.
func (c *Config) comparePolicy() []compare.Option {
	if c.Policy == "penalize-twice" {
		return []compare.Option{compare.WithPolicy(compare.PenalizeTwice)}
	}

	return nil
}

// buildPipeline assembles the configured run: learners, metrics,
// discretization and the optional golden structure.
func (c *Config) buildPipeline() (*pipeline.Pipeline, error) {
	p := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithCompareOptions(c.comparePolicy()...),
	)

	for _, lc := range c.Learners {
		l, err := lc.build()
		if err != nil {
			return nil, fmt.Errorf("learner %q: %w", lc.Name, err)
		}
		p.AddLearner(l)
	}

	names := c.Metrics
	if len(names) == 0 {
		for _, m := range metric.All() {
			names = append(names, m.Name())
		}
	}
	for _, name := range names {
		m, err := metric.ByName(name)
		if err != nil {
			return nil, err
		}
		p.AddMetric(m)
	}

	if c.Discretization.Strategy != "" {
		s, err := discretize.ByName(c.Discretization.Strategy)
		if err != nil {
			return nil, err
		}
		p.SetStrategy(s, c.Discretization.Bins)
	}

	if c.Golden != "" {
		g, err := graphio.ReadStructureFile(c.Golden)
		if err != nil {
			return nil, fmt.Errorf("golden structure: %w", err)
		}
		p.SetGolden(g)
	}

	return p, nil
}

// build turns one learner config into its Exec adapter.
func (lc LearnerConfig) build() (learner.Learner, error) {
	opts := []learner.ExecOption{learner.WithArgs(lc.Args...)}
	if lc.Dir != "" {
		opts = append(opts, learner.WithDir(lc.Dir))
	}
	if lc.Timeout != "" {
		d, err := time.ParseDuration(lc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("timeout: %w", err)
		}
		opts = append(opts, learner.WithTimeout(d))
	}
	if lc.Kind == "discrete" {
		opts = append(opts, learner.WithDataKind(dataset.Discrete))
	}
	if lc.Format == "weights" {
		opts = append(opts, learner.WithFormat(learner.FormatWeights))
	}
	if lc.Threshold > 0 {
		opts = append(opts, learner.WithThreshold(lc.Threshold))
	}

	return learner.NewExec(lc.Name, lc.Command, opts...)
}

// loadStructureArg reads a structure from a file path, or parses the
// argument directly as arc-list notation when no such file exists.
func loadStructureArg(arg string) (*cpdag.Graph, error) {
	if _, err := os.Stat(arg); err == nil {
		return graphio.ReadStructureFile(arg)
	}

	return graphio.ParseNotation(arg)
}
