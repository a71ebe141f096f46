package distribution

import (
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var bernoulliP = params.Slider("p", "Probability of success (p)", 0, 1, 0.5, 0.01)

type bernoulliParams struct {
	P float64 `mapstructure:"p"`
}

// Bernoulli is a single trial with two outcomes.
type Bernoulli struct{}

func (Bernoulli) Name() string   { return "Bernoulli" }
func (Bernoulli) Family() Family { return Discrete }

func (Bernoulli) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	ps := params.New()
	ps.Set("p", r.Float(bernoulliP))
	return ps, nil
}

func (Bernoulli) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p bernoulliParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	dist := distuv.Bernoulli{P: p.P}
	return massFigure("Bernoulli Distribution", "Outcome", 0, evaluate(figure.Ints(0, 1), dist.Prob)), nil
}

func (Bernoulli) Formula() string {
	return `P(X=k) = p^k(1-p)^{1-k}, k \in \{0,1\}`
}

func (Bernoulli) Properties() Properties {
	return Properties{
		Summary:    "The **Bernoulli Distribution** models a single trial with two possible outcomes (success/failure).",
		Parameters: []string{"**p (probability of success)**: probability of success on the trial"},
		Key: []string{
			"**Support**: k ∈ {0,1}",
			"**Mean**: p",
			"**Variance**: p(1-p)",
			"**Simplest discrete distribution**",
			"**Special case** of Binomial with n=1",
		},
		Applications: []string{
			"**Coin flips** (heads/tails)",
			"**Quality control** (pass/fail)",
			"**Medical tests** (positive/negative)",
			"**Binary outcomes** in any experiment",
		},
		Links: wikiLinks("Bernoulli_distribution", "Applications"),
	}
}
