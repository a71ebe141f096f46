package sampler

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// NormalDistParams draws normal samples with the Box–Muller transform.
type NormalDistParams struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`

	rnd *rand.Rand
	// второе значение пары Бокса-Мюллера
	spare    float64
	hasSpare bool
}

// NewNormalDistParams creates a normal sampler. A nil rnd uses the global source.
func NewNormalDistParams(mean, stdDev float64, rnd *rand.Rand) *NormalDistParams {
	return &NormalDistParams{Mean: mean, StdDev: stdDev, rnd: rnd}
}

// Validate checks that the mean is finite and the deviation is positive and finite.
func (p *NormalDistParams) Validate() error {
	switch {
	case math.IsNaN(p.Mean) || math.IsInf(p.Mean, 0):
		return errors.Errorf("mean %g must be finite", p.Mean)
	case !(p.StdDev > 0) || math.IsInf(p.StdDev, 1):
		return errors.Errorf("std_dev %g must be positive and finite", p.StdDev)
	}
	return nil
}

// standard returns one N(0, 1) value. Each Box–Muller step yields two
// independent values; the second one is kept for the next call.
func (p *NormalDistParams) standard() float64 {
	if p.hasSpare {
		p.hasSpare = false
		return p.spare
	}

	// 1-u1 лежит в (0, 1], логарифм конечен
	u1 := 1 - float64At(p.rnd)
	u2 := float64At(p.rnd)

	r := math.Sqrt(-2.0 * math.Log(u1))
	sin, cos := math.Sincos(2.0 * math.Pi * u2)
	p.spare, p.hasSpare = r*sin, true
	return r * cos
}

func (p *NormalDistParams) Generate() float64 {
	return p.standard()*p.StdDev + p.Mean
}

func (p *NormalDistParams) RandN(n int) []float64 {
	r := make([]float64, n)
	fill(r, p.Generate)
	return r
}
