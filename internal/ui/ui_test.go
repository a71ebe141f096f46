package ui

import (
	"testing"

	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/stretchr/testify/assert"
)

func TestInputFallsBackToDefault(t *testing.T) {
	in := Input{"mean": "2.5", "std": "oops", "n": "1000", "auto": "on"}

	assert.Equal(t, 2.5, in.Float(params.Slider("mean", "Mean", -10, 10, 0, 0.1)))
	assert.Equal(t, 1.0, in.Float(params.Slider("std", "Std", 0.1, 5, 1, 0.1)))
	assert.Equal(t, 3.0, in.Float(params.Slider("missing", "", 0, 5, 3, 1)))
	assert.Equal(t, 100, in.Int(params.IntSlider("n", "N", 1, 100, 10)))
	assert.True(t, in.Bool("auto", "Auto", false))
	assert.True(t, in.Bool("other", "Other", true))
	assert.False(t, in.Button("calculate", "Calculate"))
}

func TestRecorderPanels(t *testing.T) {
	r := NewRecorder(nil)
	r.Header("title")
	r.Panel(PanelPlot).Error("boom")
	r.Panel(PanelFormula).Metric("Mean", "3.5")

	assert.Equal(t, []Kind{KindHeader, KindError, KindMetric}, r.Kinds())
	assert.Equal(t, PanelPlot, r.Find(KindError)[0].Panel)
	assert.Equal(t, MainArea, r.Blocks[0].Panel)
	assert.Equal(t, map[string]string{"Mean": "3.5"}, r.Metrics())
	assert.Contains(t, r.Text(), "boom")
}
