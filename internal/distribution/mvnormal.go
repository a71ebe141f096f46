package distribution

import (
	"math"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/peplxx/probability-explorer/pkg/heatmapplotter"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

var (
	mvnMean1 = params.Slider("mean1", "μ₁", -5, 5, 0, 0.1)
	mvnMean2 = params.Slider("mean2", "μ₂", -5, 5, 0, 0.1)
	mvnVar1  = params.Slider("var1", "σ₁²", 0.1, 5, 1, 0.1)
	mvnVar2  = params.Slider("var2", "σ₂²", 0.1, 5, 1, 0.1)
	mvnCorr  = params.Slider("corr", "Correlation ρ", -1, 1, 0, 0.01)
)

// Density grid over [-5, 5) on both axes.
const (
	mvnLow  = -5.0
	mvnHigh = 5.0
	mvnStep = 0.05

	singularTol = 1e-9
)

type mvnParams struct {
	Mean []float64   `mapstructure:"mean"`
	Cov  [][]float64 `mapstructure:"cov"`
}

// MultivariateNormal is the bivariate Gaussian given by two variances and a correlation.
type MultivariateNormal struct{}

func (MultivariateNormal) Name() string   { return "Multivariate Normal" }
func (MultivariateNormal) Family() Family { return Continuous }

func (MultivariateNormal) Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning) {
	m1, m2 := r.Float(mvnMean1), r.Float(mvnMean2)
	v1, v2 := r.Float(mvnVar1), r.Float(mvnVar2)
	rho := r.Float(mvnCorr)
	cov12 := rho * math.Sqrt(v1*v2)

	ps := params.New()
	ps.Set("mean", []float64{m1, m2})
	ps.Set("cov", [][]float64{{v1, cov12}, {cov12, v2}})
	return ps, nil
}

// Plot evaluates the joint density on a regular grid. A singular covariance
// (|ρ| = 1) has no density and is reported as an error.
func (MultivariateNormal) Plot(ps params.ParameterSet) (*figure.Figure, error) {
	var p mvnParams
	if err := params.Decode(ps, &p); err != nil {
		return nil, err
	}
	if len(p.Mean) != 2 || len(p.Cov) != 2 || len(p.Cov[0]) != 2 || len(p.Cov[1]) != 2 {
		return nil, errors.New("multivariate normal: expected a 2-vector mean and a 2x2 covariance")
	}

	v1, v2, cov12 := p.Cov[0][0], p.Cov[1][1], p.Cov[0][1]
	if math.Abs(cov12) >= math.Sqrt(v1*v2)*(1-singularTol) {
		return nil, errors.New("multivariate normal: covariance matrix is singular (|ρ| = 1)")
	}
	sigma := mat.NewSymDense(2, []float64{p.Cov[0][0], p.Cov[0][1], p.Cov[1][0], p.Cov[1][1]})
	dist, ok := distmv.NewNormal(p.Mean, sigma, nil)
	if !ok {
		return nil, errors.New("multivariate normal: covariance matrix is not positive definite")
	}

	xs := figure.Arange(mvnLow, mvnHigh, mvnStep)
	pt := make([]float64, 2)
	g := heatmapplotter.NewGrid(xs, xs, func(x, y float64) float64 {
		pt[0], pt[1] = x, y
		return dist.Prob(pt)
	})

	f := figure.New("Multivariate Normal Distribution", "X₁", "X₂")
	f.Grid = &g
	f.ColorBarLabel = "Probability Density"
	return f, nil
}

func (MultivariateNormal) Formula() string {
	return `f(x) = \frac{1}{2\pi|\Sigma|^{1/2}} \exp\left(-\frac{1}{2}(x-\mu)^T\Sigma^{-1}(x-\mu)\right)`
}

func (MultivariateNormal) Properties() Properties {
	return Properties{
		Parameters: []string{
			"**μ = (μ₁, μ₂)**: mean vector",
			"**σ₁², σ₂²**: variances of the components",
			"**ρ**: correlation, the covariance is ρσ₁σ₂",
		},
		Key: []string{
			"Generalizes univariate normal to multiple dimensions",
			"Characterized by mean vector and covariance matrix",
			"Elliptical contours of constant density",
			"Marginal and conditional distributions are normal",
			"Linear combinations are normally distributed",
		},
		Links: wikiLinks("Multivariate_normal_distribution", "Applications"),
	}
}
