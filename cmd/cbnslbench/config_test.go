package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathisemb/cbnsl-benchmark/dataset"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchmark.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadConfig_Valid parses a complete config.
func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `
dataset:
  path: data.csv
  delimiter: tab
golden: golden.txt
metrics: [shd, f1]
policy: penalize-twice
discretization:
  strategy: hartemink
  bins: 3
learners:
  - name: cpc
    command: python3
    args: ["cpc.py", "--data", "{data}"]
    timeout: 5m
  - name: notears
    command: notears
    format: weights
    threshold: 0.3
    kind: continuous
`))
	require.NoError(t, err)

	assert.Equal(t, "data.csv", cfg.Dataset.Path)
	assert.Equal(t, "golden.txt", cfg.Golden)
	assert.Equal(t, []string{"shd", "f1"}, cfg.Metrics)
	assert.Len(t, cfg.Learners, 2)
	assert.Equal(t, "weights", cfg.Learners[1].Format)
}

// TestLoadConfig_Invalid reports actionable per-field messages.
func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(writeConfig(t, `
dataset:
  delimiter: semicolon
learners: []
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is required")
	assert.Contains(t, err.Error(), "must be one of")

	_, err = loadConfig(writeConfig(t, `
dataset:
  path: data.csv
metrics: [vibes]
learners:
  - name: x
    command: y
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

// TestLearnerConfig_Build maps config fields onto the Exec adapter.
func TestLearnerConfig_Build(t *testing.T) {
	lc := LearnerConfig{Name: "cpc", Command: "python3", Kind: "discrete"}
	l, err := lc.build()
	require.NoError(t, err)
	assert.Equal(t, "cpc", l.Name())
	assert.Equal(t, dataset.Discrete, l.DataKind())

	_, err = LearnerConfig{Name: "broken"}.build()
	assert.Error(t, err, "empty command must be rejected")
}
