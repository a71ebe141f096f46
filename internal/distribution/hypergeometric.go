package distribution

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
)

var hypergeometricN = params.IntSlider("N", "N (population size)", 1, 100, 50)

// HypergeometricControls returns the K and n controls, whose upper bound is the population size.
func HypergeometricControls(population int) (successes, draws params.Control) {
	return params.IntSlider("K", "K (number of success states)", 0, population, 20),
		params.IntSlider("n", "n (number of draws)", 0, population, 10)
}

type hypergeometricParams struct {
	N     int `mapstructure:"N"`
	K     int `mapstructure:"K"`
	Draws int `mapstructure:"n"`
}

// Hypergeometric counts successes in draws without replacement.
type Hypergeometric struct{}

func (Hypergeometric) Name() string   { return "Hypergeometric" }
func (Hypergeometric) Family() Family { return Discrete }

func (Hypergeometric) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	n := r.Int(hypergeometricN)
	kc, dc := HypergeometricControls(n)

	ps := params.New()
	ps.Set("N", n)
	ps.Set("K", r.Int(kc))
	ps.Set("n", r.Int(dc))
	return ps, nil
}

// Plot evaluates the PMF on 0..min(n, K).
func (Hypergeometric) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p hypergeometricParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	dist := stats.HypergeometicDist{N: p.N, K: p.K, Draws: p.Draws}
	ks := figure.Ints(0, min(p.Draws, p.K))
	return massFigure("Hypergeometric Distribution", "Number of Successes", 0, evaluate(ks, dist.PMF)), nil
}

func (Hypergeometric) Formula() string {
	return `P(X=k) = \frac{\binom{K}{k}\binom{N-K}{n-k}}{\binom{N}{n}}`
}

func (Hypergeometric) Properties() Properties {
	return Properties{
		Summary: "The **Hypergeometric Distribution** models the probability of obtaining k successes in n draws " +
			"without replacement from a population of size N containing K successes.",
		Parameters: []string{
			"**N**: Population size",
			"**K**: Number of success states in the population",
			"**n**: Number of draws",
			"**k**: Number of observed successes",
		},
		Key: []string{
			"**Support**: max(0, n-(N-K)) ≤ k ≤ min(n, K)",
			"**Mean**: n(K/N)",
			"**Variance**: n(K/N)(1-K/N)((N-n)/(N-1))",
		},
		Applications: []string{
			"Quality control sampling",
			"Random sampling in finite populations",
			"Card drawing problems",
			"Population sampling",
		},
		Links: wikiLinks("Hypergeometric_distribution", "Applications_and_examples"),
	}
}
