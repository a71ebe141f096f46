package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peplxx/probability-explorer/internal/app"
	"github.com/peplxx/probability-explorer/internal/config"
	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/peplxx/probability-explorer/internal/experiment"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *app.App {
	t.Helper()
	log, _ := test.NewNullLogger()
	return app.New(distribution.NewCatalog(), experiment.NewRegistry(experiment.WithSeed(7)), true, log)
}

func TestParseSet(t *testing.T) {
	in, err := ParseSet([]string{"mean=1.5", " std = 2 "})
	require.NoError(t, err)
	assert.Equal(t, ui.Input{"mean": "1.5", "std": "2"}, in)

	_, err = ParseSet([]string{"mean"})
	assert.Error(t, err)
	_, err = ParseSet([]string{"=1"})
	assert.Error(t, err)
}

func TestRenderDistributionSavesFigure(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	term := New(&out, ui.Input{"mean": "1"}, dir, config.Default().Plot, nil)

	require.NoError(t, newApp(t).Show(term, app.PageContinuous, "Normal"))
	term.Flush()

	text := out.String()
	assert.Contains(t, text, "Normal Distribution")
	assert.Contains(t, text, "Formula")
	assert.Contains(t, text, "Distribution calculated!")
	assert.Contains(t, text, "mean")

	require.Len(t, term.Saved, 2)
	assert.Equal(t, dir, filepath.Dir(term.Saved[0]))
	assert.True(t, strings.HasSuffix(term.Saved[0], ".svg"))
	assert.True(t, strings.HasSuffix(term.Saved[1], ".csv"))
}

func TestExperimentMetricsTable(t *testing.T) {
	var out bytes.Buffer
	term := New(&out, nil, "", config.Default().Plot, nil)

	require.NoError(t, newApp(t).Show(term, app.PageExperiments, "Dice Roll"))
	term.Flush()

	text := out.String()
	assert.Contains(t, text, "Expected Value")
	assert.Contains(t, text, "Variance")
	assert.Contains(t, text, "[figure:")
	assert.Empty(t, term.Saved)
}

func TestMarkovExportsMatrices(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	term := New(&out, nil, dir, config.Default().Plot, nil)

	require.NoError(t, newApp(t).Show(term, app.PageExperiments, "Markov Chain"))
	term.Flush()

	assert.Contains(t, out.String(), "Transition Matrix")
	assert.Contains(t, out.String(), "0.700")

	data, err := os.ReadFile(filepath.Join(dir, "transition_matrix.csv"))
	require.NoError(t, err)
	assert.Equal(t, "0.7,0.2,0.1\n0.3,0.5,0.2\n0.2,0.3,0.5\n", string(data))
	assert.FileExists(t, filepath.Join(dir, "steady_state.csv"))
	assert.Contains(t, term.Saved, filepath.Join(dir, "transition_matrix.csv"))
}

func TestFigureSaveFailureSkipsSuccess(t *testing.T) {
	var out bytes.Buffer
	plot := config.Default().Plot
	plot.Format = "bmp"
	term := New(&out, nil, t.TempDir(), plot, nil)

	require.NoError(t, newApp(t).Show(term, app.PageContinuous, "Normal"))
	term.Flush()

	assert.Contains(t, out.String(), "Error saving figure")
	assert.NotContains(t, out.String(), "Distribution calculated!")
	assert.Empty(t, term.Saved)
}

func TestUnknownDistribution(t *testing.T) {
	var out bytes.Buffer
	term := New(&out, nil, "", config.Default().Plot, nil)
	err := newApp(t).Show(term, app.PageDiscrete, "Zipf")
	assert.ErrorIs(t, err, distribution.ErrUnknownDistribution)
}

func TestBannersAndValues(t *testing.T) {
	var out bytes.Buffer
	term := New(&out, nil, "", config.Default().Plot, nil)

	ps := params.New()
	ps.Set("p", []float64{0.2, 0.8})
	term.Panel(ui.PanelFormula).Values(ps)
	term.Warning("careful")
	term.Panel(ui.PanelPlot).Error("broken")

	text := out.String()
	assert.Contains(t, text, "[0.2, 0.8]")
	assert.Contains(t, text, "careful")
	assert.Contains(t, text, "broken")
	assert.Less(t, strings.Index(text, "Formula"), strings.Index(text, "Plot"))
}

func TestDuplicateFigureNames(t *testing.T) {
	term := New(&bytes.Buffer{}, nil, t.TempDir(), config.Default().Plot, nil)
	assert.Equal(t, "walk", term.fileName("Walk"))
	assert.Equal(t, "walk_2", term.fileName("Walk"))
}
