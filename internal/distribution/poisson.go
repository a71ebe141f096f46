package distribution

import (
	"math"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var poissonLambda = params.Slider("lambda", "Rate parameter (λ)", 0.1, 20, 5, 0.1)

type poissonParams struct {
	Lambda float64 `mapstructure:"lambda"`
}

// Poisson counts events in a fixed interval.
type Poisson struct{}

func (Poisson) Name() string   { return "Poisson" }
func (Poisson) Family() Family { return Discrete }

func (Poisson) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	ps := params.New()
	ps.Set("lambda", r.Float(poissonLambda))
	return ps, nil
}

// Plot evaluates the PMF on 0..max(20, ⌊3λ⌋)-1.
func (Poisson) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p poissonParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	hi := max(20, int(math.Floor(3*p.Lambda)))
	dist := distuv.Poisson{Lambda: p.Lambda}
	return massFigure("Poisson Distribution", "Number of Events", 0, evaluate(figure.Ints(0, hi-1), dist.Prob)), nil
}

func (Poisson) Formula() string {
	return `P(X=k) = \frac{\lambda^k e^{-\lambda}}{k!}`
}

func (Poisson) Properties() Properties {
	return Properties{
		Parameters: []string{"**λ**: expected number of events per interval"},
		Key: []string{
			"Models number of events in fixed time/space interval",
			"Events occur independently at constant rate",
			"Mean = Variance = λ",
			"Support is k ∈ {0,1,2,...}",
			"Limit of binomial as n→∞, p→0 with np=λ",
		},
		Links: wikiLinks("Poisson_distribution", "Occurrence_and_applications"),
	}
}
