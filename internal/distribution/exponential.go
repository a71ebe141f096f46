package distribution

import (
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var exponentialRate = params.Slider("rate", "Rate parameter (λ)", 0.1, 5, 1, 0.1)

type exponentialParams struct {
	Rate float64 `mapstructure:"rate"`
}

// Exponential models the waiting time between events of a Poisson process.
type Exponential struct{}

func (Exponential) Name() string   { return "Exponential" }
func (Exponential) Family() Family { return Continuous }

func (Exponential) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	ps := params.New()
	ps.Set("rate", r.Float(exponentialRate))
	return ps, nil
}

// Plot evaluates the density on [0, 5/λ].
func (Exponential) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p exponentialParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	dist := distuv.Exponential{Rate: p.Rate}
	xs := figure.Linspace(0, 5/p.Rate, 200)
	return densityFigure("Exponential Distribution", xs, evaluate(xs, dist.Prob)), nil
}

func (Exponential) Formula() string {
	return `f(x) = \lambda e^{-\lambda x}`
}

func (Exponential) Properties() Properties {
	return Properties{
		Summary: "The **Exponential Distribution** is a continuous probability distribution that describes " +
			"the time between events in a Poisson point process.",
		Parameters: []string{"**λ (rate parameter)**: determines the rate of decay"},
		Key: []string{
			"**Support is x ≥ 0** (non-negative values only)",
			"**Mean = 1/λ**",
			"**Variance = 1/λ²**",
			"**Memoryless property**: P(X > s + t | X > s) = P(X > t)",
			"**Maximum entropy** distribution for a given mean",
		},
		Formulas: []Formula{
			{Caption: "On its support:", LaTeX: `f(x) = \lambda e^{-\lambda x} \text{ for } x \geq 0`},
			{Caption: "The cumulative distribution function (CDF) is:", LaTeX: `F(x) = 1 - e^{-\lambda x} \text{ for } x \geq 0`},
		},
		Applications: []string{
			"**Lifetime/survival analysis**",
			"**Time between events**",
			"**Reliability engineering**",
			"**Queueing theory**",
		},
		Links: wikiLinks("Exponential_distribution", "Applications"),
	}
}
