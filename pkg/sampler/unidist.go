package sampler

import (
	"math/rand/v2"
)

// Sampler draws batches of random values.
type Sampler interface {
	RandN(n int) []float64
}

// UniDistParams draws uniform samples on [Low, High).
type UniDistParams struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`

	rnd *rand.Rand
}

// NewUniDistParams creates a uniform sampler on [low, high). A nil rnd uses the global source.
func NewUniDistParams(low, high float64, rnd *rand.Rand) *UniDistParams {
	return &UniDistParams{Low: low, High: high, rnd: rnd}
}

func (p *UniDistParams) Generate() float64 {
	return p.Low + (p.High-p.Low)*float64At(p.rnd)
}

func (p *UniDistParams) RandN(n int) []float64 {
	r := make([]float64, n)
	fill(r, p.Generate)
	return r
}

// fill sets every element of v to a fresh draw.
func fill(v []float64, draw func() float64) {
	for i := range v {
		v[i] = draw()
	}
}

func float64At(rnd *rand.Rand) float64 {
	if rnd == nil {
		return rand.Float64()
	}
	return rnd.Float64()
}
