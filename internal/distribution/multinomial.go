package distribution

import (
	"fmt"
	"math"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/peplxx/probability-explorer/pkg/heatmapplotter"
	"github.com/pkg/errors"
)

var (
	multinomialN  = params.IntSlider("n", "Number of trials (n)", 1, 100, 10)
	multinomialP1 = params.Slider("p1", "p₁", 0, 1, 0.33, 0.01)
	multinomialP2 = params.Slider("p2", "p₂", 0, 1, 0.33, 0.01)
)

// roundoff absorbs float error in 1-p₁-p₂ for slider values that sum to exactly 1.
const roundoff = 1e-9

type multinomialParams struct {
	N int       `mapstructure:"n"`
	P []float64 `mapstructure:"p"`
}

// Multinomial is the three-category multinomial; p₃ is derived from p₁ and p₂.
type Multinomial struct{}

func (Multinomial) Name() string   { return "Multinomial" }
func (Multinomial) Family() Family { return Discrete }

// Parameters derives p₃ = min(1-p₁-p₂, 1). A negative p₃ is kept as is and
// reported; Plot rejects it.
func (Multinomial) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	n := r.Int(multinomialN)
	p1, p2 := r.Float(multinomialP1), r.Float(multinomialP2)
	p3 := ThirdProbability(p1, p2)

	ps := params.New()
	ps.Set("n", n)
	ps.Set("p", []float64{p1, p2, p3})
	if p3 < -roundoff {
		return ps, []params.Warning{params.Warning(fmt.Sprintf("p₁ + p₂ exceeds 1, p₃ = %.2f", p3))}
	}
	return ps, nil
}

// ThirdProbability completes a three-category probability vector.
func ThirdProbability(p1, p2 float64) float64 {
	return math.Min(1-p1-p2, 1)
}

// Plot evaluates P(k₁, k₂, n-k₁-k₂) on the grid {0..n}².
func (Multinomial) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p multinomialParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	if len(p.P) != 3 {
		return nil, errors.Errorf("multinomial: expected 3 probabilities, got %d", len(p.P))
	}
	probs := make([]float64, len(p.P))
	for i, pi := range p.P {
		if pi < -roundoff {
			return nil, errors.Errorf("multinomial: probability p%d = %.2f is negative", i+1, pi)
		}
		probs[i] = math.Max(pi, 0)
	}

	ks := figure.Ints(0, p.N)
	g := heatmapplotter.NewGrid(ks, ks, func(k1, k2 float64) float64 {
		k3 := float64(p.N) - k1 - k2
		if k3 < 0 {
			return 0
		}
		return multinomialPMF(float64(p.N), []float64{k1, k2, k3}, probs)
	})

	f := figure.New("Multinomial Distribution", "X₁ (Category 1)", "X₂ (Category 2)")
	f.Grid = &g
	f.ColorBarLabel = "Probability"
	return f, nil
}

func multinomialPMF(n float64, ks, ps []float64) float64 {
	lg, _ := math.Lgamma(n + 1)
	logp := lg
	for i, k := range ks {
		if k == 0 {
			continue
		}
		if ps[i] == 0 {
			return 0
		}
		lk, _ := math.Lgamma(k + 1)
		logp += k*math.Log(ps[i]) - lk
	}
	return math.Exp(logp)
}

func (Multinomial) Formula() string {
	return `P(X_1=k_1,...,X_m=k_m) = \frac{n!}{k_1!...k_m!}p_1^{k_1}...p_m^{k_m}`
}

func (Multinomial) Properties() Properties {
	return Properties{
		Parameters: []string{
			"**n**: number of trials",
			"**p₁, p₂**: probabilities of the first two categories, p₃ = 1 - p₁ - p₂",
		},
		Key: []string{
			"Generalizes binomial to multiple categories",
			"Models counts across m categories in n trials",
			"Each trial results in exactly one category",
			"Category probabilities sum to 1",
			"Mean of category i = np_i",
			"Covariance between i,j = -np_ip_j",
			"Support is k_i ≥ 0 with Σk_i = n",
		},
		Links: []Link{{Title: "Multinomial distribution", URL: "https://en.wikipedia.org/wiki/Multinomial_distribution"}},
	}
}
