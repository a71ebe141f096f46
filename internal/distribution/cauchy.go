package distribution

import (
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	cauchyLoc   = params.Slider("loc", "Location (x₀)", -10, 10, 0, 0.1)
	cauchyScale = params.Slider("scale", "Scale (γ)", 0.1, 10, 1, 0.1)
)

type cauchyParams struct {
	Loc   float64 `mapstructure:"loc"`
	Scale float64 `mapstructure:"scale"`
}

// Cauchy is the Lorentz distribution, a Student's t with one degree of freedom.
type Cauchy struct{}

func (Cauchy) Name() string   { return "Cauchy" }
func (Cauchy) Family() Family { return Continuous }

func (Cauchy) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	ps := params.New()
	ps.Set("loc", r.Float(cauchyLoc))
	ps.Set("scale", r.Float(cauchyScale))
	return ps, nil
}

// Plot evaluates the density on [x₀-10γ, x₀+10γ].
func (Cauchy) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p cauchyParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	dist := distuv.StudentsT{Mu: p.Loc, Sigma: p.Scale, Nu: 1}
	xs := figure.Linspace(p.Loc-10*p.Scale, p.Loc+10*p.Scale, 1000)
	return densityFigure("Cauchy Distribution", xs, evaluate(xs, dist.Prob)), nil
}

func (Cauchy) Formula() string {
	return `f(x) = \frac{1}{\pi\gamma[1 + (\frac{x-x_0}{\gamma})^2]}`
}

func (Cauchy) Properties() Properties {
	return Properties{
		Summary: "The **Cauchy Distribution** is a continuous probability distribution that describes " +
			"the ratio of two normally distributed variables.",
		Parameters: []string{
			"**x₀ (location)**: the peak of the distribution",
			"**γ (scale)**: controls the width/spread",
		},
		Key: []string{
			"**Support**: x ∈ (-∞,∞)",
			"**Mean**: undefined (does not exist)",
			"**Variance**: undefined (does not exist)",
			"**Heavy-tailed** distribution",
			"**Stable distribution**",
		},
		Applications: []string{
			"**Physics**: describing resonance behavior",
			"**Engineering**: modeling noise in communication systems",
			"**Finance**: modeling price fluctuations",
			"**Statistics**: as a pathological example in estimation theory",
		},
		Links: wikiLinks("Cauchy_distribution", "Occurrence_and_applications"),
	}
}
