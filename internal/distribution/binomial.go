package distribution

import (
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	binomialN = params.IntSlider("n", "Number of trials (n)", 1, 100, 10)
	binomialP = params.Slider("p", "Probability of success (p)", 0, 1, 0.5, 0.01)
)

type binomialParams struct {
	N int     `mapstructure:"n"`
	P float64 `mapstructure:"p"`
}

// Binomial counts successes in n independent trials.
type Binomial struct{}

func (Binomial) Name() string   { return "Binomial" }
func (Binomial) Family() Family { return Discrete }

func (Binomial) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	ps := params.New()
	ps.Set("n", r.Int(binomialN))
	ps.Set("p", r.Float(binomialP))
	return ps, nil
}

// Plot evaluates the PMF on 0..n.
func (Binomial) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p binomialParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	ks := figure.Ints(0, p.N)
	pmf := evaluate(ks, func(k float64) float64 { return binomialPMF(p.N, p.P, k) })
	return massFigure("Binomial Distribution", "Number of Successes", 0, pmf), nil
}

// binomialPMF handles the degenerate p = 0 and p = 1 cases, where the log form yields NaN.
func binomialPMF(n int, p, k float64) float64 {
	switch p {
	case 0:
		return indicator(k == 0)
	case 1:
		return indicator(k == float64(n))
	}
	return distuv.Binomial{N: float64(n), P: p}.Prob(k)
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (Binomial) Formula() string {
	return `P(X=k) = \binom{n}{k}p^k(1-p)^{n-k}`
}

func (Binomial) Properties() Properties {
	return Properties{
		Parameters: []string{
			"**n**: number of trials",
			"**p**: probability of success on each trial",
		},
		Key: []string{
			"Models number of successes in n independent trials",
			"Each trial has probability p of success",
			"Mean = np",
			"Variance = np(1-p)",
			"Support is k ∈ {0,1,...,n}",
		},
		Links: wikiLinks("Binomial_distribution", "Statistical_inference"),
	}
}
