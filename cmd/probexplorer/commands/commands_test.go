package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/peplxx/probability-explorer/internal/experiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListYAML(t *testing.T) {
	out, err := run(t, "list", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "continuous:")
	assert.Contains(t, out, "- Normal")
	assert.Contains(t, out, "- Dice Roll")
}

func TestListTable(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Hypergeometric")

	_, err = run(t, "list", "--output", "xml")
	assert.Error(t, err)
}

func TestRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "render", "Normal", "--set", "mean=1", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Normal Distribution")
	assert.Contains(t, out, "Distribution calculated!")
	assert.FileExists(t, filepath.Join(dir, "normal_distribution.svg"))
	assert.FileExists(t, filepath.Join(dir, "normal_distribution.csv"))
}

func TestRenderUnknown(t *testing.T) {
	_, err := run(t, "render", "Zipf", "--out", t.TempDir())
	assert.ErrorIs(t, err, distribution.ErrUnknownDistribution)
}

func TestRenderBadSet(t *testing.T) {
	_, err := run(t, "render", "Normal", "--set", "mean", "--out", t.TempDir())
	assert.Error(t, err)
}

func TestExperiment(t *testing.T) {
	out, err := run(t, "experiment", "Dice Roll", "--seed", "5", "--set", "dice=2", "--out", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Expected Value")

	_, err = run(t, "experiment", "Lottery", "--out", t.TempDir())
	assert.ErrorIs(t, err, experiment.ErrUnknownExperiment)
}

func TestExperimentExportsMarkovMatrix(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "experiment", "Markov Chain", "--seed", "3", "--out", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "transition_matrix.csv"))
	assert.FileExists(t, filepath.Join(dir, "steady_state.csv"))
	assert.FileExists(t, filepath.Join(dir, "markov_chain_state_transitions.svg"))
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "list", "--plot-format", "bmp")
	assert.ErrorContains(t, err, "plot format")
}
