package distribution

import (
	"math"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
)

var geometricP = params.Slider("p", "Probability of success (p)", 0.01, 1, 0.5, 0.01)

type geometricParams struct {
	P float64 `mapstructure:"p"`
}

// Geometric counts trials up to and including the first success.
type Geometric struct{}

func (Geometric) Name() string   { return "Geometric" }
func (Geometric) Family() Family { return Discrete }

func (Geometric) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	ps := params.New()
	ps.Set("p", r.Float(geometricP))
	return ps, nil
}

// Plot evaluates the PMF on 1..min(20, ⌊5/p⌋)-1.
func (Geometric) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p geometricParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	hi := max(min(20, int(math.Floor(5/p.P)))-1, 1)
	pmf := evaluate(figure.Ints(1, hi), func(k float64) float64 {
		return math.Pow(1-p.P, k-1) * p.P
	})
	return massFigure("Geometric Distribution", "Number of Trials Until Success", 1, pmf), nil
}

func (Geometric) Formula() string {
	return `P(X=k) = (1-p)^{k-1}p`
}

func (Geometric) Properties() Properties {
	return Properties{
		Summary: "The **Geometric Distribution** models the number of trials needed to get the first success " +
			"in a sequence of independent Bernoulli trials.",
		Parameters: []string{"**p (probability of success)**: probability of success on each trial"},
		Key: []string{
			"**Support**: k ∈ {1,2,3,...}",
			"**Mean = 1/p**",
			"**Variance = (1-p)/p²**",
			"**Memoryless property**: P(X > s + t | X > s) = P(X > t)",
			"**Independent trials** with fixed probability",
		},
		Applications: []string{
			"**Quality control** (number of items inspected until finding a defect)",
			"**Marketing** (number of attempts until first sale)",
			"**Reliability** (number of trials until first failure)",
			"**Game theory** (number of attempts until first win)",
		},
		Links: wikiLinks("Geometric_distribution", "Applications"),
	}
}
