package distribution

import (
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	normalMean = params.Slider("mean", "Mean", -10, 10, 0, 0.1)
	normalStd  = params.Slider("std", "Standard deviation", 0.1, 5, 1, 0.1)
)

type normalParams struct {
	Mean float64 `mapstructure:"mean"`
	Std  float64 `mapstructure:"std"`
}

// Normal is the univariate Gaussian.
type Normal struct{}

func (Normal) Name() string   { return "Normal" }
func (Normal) Family() Family { return Continuous }

func (Normal) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	ps := params.New()
	ps.Set("mean", r.Float(normalMean))
	ps.Set("std", r.Float(normalStd))
	return ps, nil
}

// Plot evaluates the density on [mean-4std, mean+4std].
func (Normal) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p normalParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	dist := distuv.Normal{Mu: p.Mean, Sigma: p.Std}
	xs := figure.Linspace(p.Mean-4*p.Std, p.Mean+4*p.Std, 100)
	return densityFigure("Normal Distribution", xs, evaluate(xs, dist.Prob)), nil
}

func (Normal) Formula() string {
	return `f(x) = \frac{1}{\sigma\sqrt{2\pi}} e^{-\frac{(x-\mu)^2}{2\sigma^2}}`
}

func (Normal) Properties() Properties {
	return Properties{
		Summary: "The **Normal Distribution** is the bell-shaped distribution of sums of many small independent effects.",
		Parameters: []string{
			"**μ (mean)**: centre of the distribution",
			"**σ (standard deviation)**: spread around the mean",
		},
		Key: []string{
			"Symmetric about mean",
			"68-95-99.7 rule applies",
			"Bell-shaped curve",
			"Infinite support",
		},
		Links: wikiLinks("Normal_distribution", "Occurrence_and_applications"),
	}
}
