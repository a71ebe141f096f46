package app

import (
	"testing"

	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/peplxx/probability-explorer/internal/experiment"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, autoUpdate bool) (*App, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return New(distribution.NewCatalog(), experiment.NewRegistry(experiment.WithSeed(1)), autoUpdate, log), hook
}

func TestServeDistribution(t *testing.T) {
	a, hook := newApp(t, true)
	r := ui.NewRecorder(map[string]string{"page": PageDiscrete, "item": "Binomial", "n": "10", "p": "0.5"})

	require.NoError(t, a.Serve(r))
	assert.Equal(t, "Binomial Distribution", r.Find(ui.KindHeader)[0].Text)
	assert.Len(t, r.Find(ui.KindFigure), 1)
	assert.Equal(t, "n=10 p=0.5", r.Find(ui.KindValues)[0].Text)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "Binomial", entry.Data["item"])
}

func TestServeFallsBackToFirstOption(t *testing.T) {
	a, _ := newApp(t, true)
	r := ui.NewRecorder(map[string]string{"page": "Nowhere", "item": "Nothing"})
	require.NoError(t, a.Serve(r))
	assert.Equal(t, "Multivariate Normal Distribution", r.Find(ui.KindHeader)[0].Text)
}

func TestCalculateButton(t *testing.T) {
	a, _ := newApp(t, false)

	r := ui.NewRecorder(map[string]string{"page": PageContinuous, "item": "Normal"})
	require.NoError(t, a.Serve(r))
	assert.Empty(t, r.Find(ui.KindFigure))

	r = ui.NewRecorder(map[string]string{"page": PageContinuous, "item": "Normal", "calculate": "1"})
	require.NoError(t, a.Serve(r))
	assert.Len(t, r.Find(ui.KindFigure), 1)

	r = ui.NewRecorder(map[string]string{"page": PageContinuous, "item": "Normal", "auto": "on"})
	require.NoError(t, a.Serve(r))
	assert.Len(t, r.Find(ui.KindFigure), 1)
}

func TestPlotFailureIsLogged(t *testing.T) {
	a, hook := newApp(t, true)
	r := ui.NewRecorder(map[string]string{"page": PageDiscrete, "item": "Multinomial", "p1": "0.8", "p2": "0.5"})

	require.NoError(t, a.Serve(r))
	assert.Len(t, r.Find(ui.KindWarning), 1)
	assert.Len(t, r.Find(ui.KindError), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestServeExperimentAndAbout(t *testing.T) {
	a, _ := newApp(t, true)

	r := ui.NewRecorder(map[string]string{"page": PageExperiments, "item": "Dice Roll", "dice": "2"})
	require.NoError(t, a.Serve(r))
	assert.Contains(t, r.Metrics(), "Expected Value")

	r = ui.NewRecorder(map[string]string{"page": PageAbout})
	require.NoError(t, a.Serve(r))
	assert.Equal(t, "About", r.Blocks[0].Text)
}

func TestShowUnknownNames(t *testing.T) {
	a, _ := newApp(t, true)
	r := ui.NewRecorder(nil)

	assert.ErrorIs(t, a.Show(r, PageContinuous, "Binomial"), distribution.ErrUnknownDistribution)
	assert.ErrorIs(t, a.Show(r, PageExperiments, "Lottery"), experiment.ErrUnknownExperiment)
	assert.ErrorIs(t, a.Show(r, "Settings", ""), ErrUnknownPage)
	assert.Empty(t, r.Blocks)
}

func TestItemChoice(t *testing.T) {
	a, _ := newApp(t, true)

	c, ok := a.ItemChoice(PageExperiments)
	require.True(t, ok)
	assert.Equal(t, a.Registry.Names(), c.Options)

	_, ok = a.ItemChoice(PageAbout)
	assert.False(t, ok)
}
