package experiment

import (
	"fmt"
	"math/rand/v2"

	"github.com/aclements/go-moremath/stats"
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/peplxx/probability-explorer/pkg/sampler"
	"github.com/pkg/errors"
)

var (
	tTestSize   = params.IntSlider("size", "Sample size", 10, 1000, 100)
	tTestEffect = params.Slider("effect", "Effect size", 0, 2, 0.5, 0.01)
)

// Alpha is the significance level of the t-test.
const Alpha = 0.05

// TTestResult is a pooled two-sample, two-sided t-test of Sample1 against Sample2.
type TTestResult struct {
	Sample1, Sample2 []float64
	T, P             float64
}

// Significant reports whether the null hypothesis is rejected at Alpha.
func (r TTestResult) Significant() bool { return r.P < Alpha }

// TTest draws size values from N(0, 1) and N(effect, 1) and compares their means.
func TTest(rng *rand.Rand, size int, effect float64) (TTestResult, error) {
	if size < 2 {
		return TTestResult{}, errors.Errorf("t-test needs at least 2 values per sample, got %d", size)
	}
	n1 := sampler.NewNormalDistParams(0, 1, rng)
	n2 := sampler.NewNormalDistParams(effect, 1, rng)
	if err := n2.Validate(); err != nil {
		return TTestResult{}, errors.Wrap(err, "effect")
	}
	s1, s2 := n1.RandN(size), n2.RandN(size)

	r, err := stats.TwoSampleTTest(stats.Sample{Xs: s1}, stats.Sample{Xs: s2}, stats.LocationDiffers)
	if err != nil {
		return TTestResult{}, errors.Wrap(err, "t-test")
	}
	return TTestResult{Sample1: s1, Sample2: s2, T: r.T, P: r.P}, nil
}

type TTestExperiment struct{}

func (TTestExperiment) Name() string { return "Student's t-test" }
func (TTestExperiment) Description() string {
	return "Demonstrate Student's t-test for comparing two samples"
}

func (TTestExperiment) Run(s ui.Surface, rng *rand.Rand) error {
	res, err := TTest(rng, s.Int(tTestSize), s.Float(tTestEffect))
	if err != nil {
		return err
	}

	panel := s.Panel(ui.PanelFormula)
	panel.Metric("t-statistic", fmt.Sprintf("%.4f", res.T))
	panel.Metric("p-value", fmt.Sprintf("%.4f", res.P))
	significant := "No"
	if res.Significant() {
		significant = "Yes"
	}
	panel.Metric("Significant?", significant)

	f := figure.New("Sample Distributions", "Value", "Frequency")
	f.Hists = []figure.Hist{
		{Label: "Sample 1", Values: res.Sample1, Bins: 30, Color: 0},
		{Label: "Sample 2", Values: res.Sample2, Bins: 30, Color: 1},
	}
	f.VLines = []figure.VLine{
		{X: stats.Mean(res.Sample1), Color: 0},
		{X: stats.Mean(res.Sample2), Color: 1},
	}
	s.Panel(ui.PanelPlot).Figure(f)

	notes{
		Title: "T-Test Properties",
		Items: []string{
			"Tests difference between means",
			"Assumes normal distribution",
			"Null hypothesis: means are equal",
			"p < 0.05 suggests significant difference",
			"Effect size impacts test power",
		},
		Link: "Student's t-test",
		URL:  "https://en.wikipedia.org/wiki/Student%27s_t-test",
	}.write(s.Panel(ui.PanelProperties))
	return nil
}
