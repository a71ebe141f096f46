package distribution

import (
	"math"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var chiSquaredDF = params.IntSlider("df", "Degrees of freedom", 1, 30, 1)

type chiSquaredParams struct {
	DF int `mapstructure:"df"`
}

// ChiSquared is the distribution of a sum of k squared standard normals.
type ChiSquared struct{}

func (ChiSquared) Name() string   { return "Chi-squared" }
func (ChiSquared) Family() Family { return Continuous }

func (ChiSquared) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	ps := params.New()
	ps.Set("df", r.Int(chiSquaredDF))
	return ps, nil
}

// Plot evaluates the density on [0, max(30, 3k)].
func (ChiSquared) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p chiSquaredParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	k := float64(p.DF)
	xs := figure.Linspace(0, math.Max(30, 3*k), 200)
	return densityFigure("Chi-squared Distribution", xs, evaluate(xs, func(x float64) float64 {
		return chiSquaredPDF(k, x)
	})), nil
}

// chiSquaredPDF is the density with the limit at x = 0 taken explicitly.
func chiSquaredPDF(k, x float64) float64 {
	if x == 0 {
		switch {
		case k < 2:
			return math.Inf(1)
		case k == 2:
			return 0.5
		default:
			return 0
		}
	}
	return distuv.ChiSquared{K: k}.Prob(x)
}

func (ChiSquared) Formula() string {
	return `f(x) = \frac{1}{2^{k/2}\Gamma(k/2)}x^{k/2-1}e^{-x/2}`
}

func (ChiSquared) Properties() Properties {
	return Properties{
		Parameters: []string{"**k (degrees of freedom)**: number of squared normals summed"},
		Key: []string{
			"Support is x > 0",
			"Mean equals degrees of freedom (k)",
			"Variance equals 2k",
			"Right-skewed distribution",
			"Sum of k squared standard normal variables",
		},
		Links: wikiLinks("Chi-squared_distribution", "Applications"),
	}
}
