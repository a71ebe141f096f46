package distribution

import (
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
)

var (
	uniformA = params.Slider("a", "Lower bound (a)", -10, 10, 0, 0.1)
	uniformB = params.Slider("b", "Upper bound (b)", -10, 10, 1, 0.1)
)

// uniformMinWidth is added to a when the bounds are inverted.
const uniformMinWidth = 0.1

type uniformParams struct {
	A float64 `mapstructure:"a"`
	B float64 `mapstructure:"b"`
}

// Uniform is the continuous uniform distribution on [a, b].
type Uniform struct{}

func (Uniform) Name() string   { return "Uniform" }
func (Uniform) Family() Family { return Continuous }

func (Uniform) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	a, b, warn := UniformBounds(r.Float(uniformA), r.Float(uniformB))
	ps := params.New()
	ps.Set("a", a)
	ps.Set("b", b)
	if warn != "" {
		return ps, []params.Warning{warn}
	}
	return ps, nil
}

// UniformBounds replaces b with a + 0.1 when b <= a.
func UniformBounds(a, b float64) (float64, float64, params.Warning) {
	if b <= a {
		return a, a + uniformMinWidth, "Upper bound must be greater than lower bound"
	}
	return a, b, ""
}

// Plot evaluates the density on [a-0.5, b+0.5].
func (Uniform) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p uniformParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	xs := figure.Linspace(p.A-0.5, p.B+0.5, 100)
	height := 1 / (p.B - p.A)
	return densityFigure("Uniform Distribution", xs, evaluate(xs, func(x float64) float64 {
		if x >= p.A && x <= p.B {
			return height
		}
		return 0
	})), nil
}

func (Uniform) Formula() string {
	return `f(x) = \frac{1}{b-a} \text{ for } a \leq x \leq b`
}

func (Uniform) Properties() Properties {
	return Properties{
		Parameters: []string{
			"**a**: lower bound",
			"**b**: upper bound",
		},
		Key: []string{
			"Constant probability density over interval [a,b]",
			"Mean = (a+b)/2",
			"Variance = (b-a)²/12",
			"Maximum entropy continuous distribution for interval [a,b]",
			"All points in interval equally likely",
		},
		Links: wikiLinks("Continuous_uniform_distribution", "Applications"),
	}
}
