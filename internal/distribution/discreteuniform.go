package distribution

import (
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
)

var discreteUniformLow = params.IntSlider("low", "Low (a)", -10, 10, 0)

// DiscreteUniformHigh returns the control for the upper bound; its minimum is low+1.
func DiscreteUniformHigh(low int) params.Control {
	return params.IntSlider("high", "High (b)", low+1, 20, 10)
}

type discreteUniformParams struct {
	Low  int `mapstructure:"low"`
	High int `mapstructure:"high"`
}

// DiscreteUniform gives equal mass to every integer in [low, high].
type DiscreteUniform struct{}

func (DiscreteUniform) Name() string   { return "Discrete Uniform" }
func (DiscreteUniform) Family() Family { return Discrete }

func (DiscreteUniform) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	low := r.Int(discreteUniformLow)
	ps := params.New()
	ps.Set("low", low)
	ps.Set("high", r.Int(DiscreteUniformHigh(low)))
	return ps, nil
}

func (DiscreteUniform) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p discreteUniformParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	mass := 1 / float64(p.High-p.Low+1)
	pmf := evaluate(figure.Ints(p.Low, p.High), func(float64) float64 { return mass })
	return massFigure("Discrete Uniform Distribution", "Value", p.Low, pmf), nil
}

func (DiscreteUniform) Formula() string {
	return `P(X=k) = \frac{1}{b-a+1} \quad \text{for } k \in \{a,\ldots,b\}`
}

func (DiscreteUniform) Properties() Properties {
	return Properties{
		Summary: "The **Discrete Uniform Distribution** models a random variable that can take on " +
			"a finite number of equally likely values.",
		Parameters: []string{
			"**a**: Lower bound (inclusive)",
			"**b**: Upper bound (inclusive)",
		},
		Key: []string{
			"**Support**: {a, a+1, ..., b}",
			"**Mean**: (a + b)/2",
			"**Variance**: ((b - a + 1)² - 1)/12",
		},
		Applications: []string{
			"Rolling a fair die",
			"Random selection from a finite set",
			"Simple random sampling",
			"Basic randomization algorithms",
		},
		Links: []Link{{Title: "Discrete uniform distribution", URL: "https://en.wikipedia.org/wiki/Discrete_uniform_distribution"}},
	}
}
