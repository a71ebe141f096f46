package sampler

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Rander is any gonum distribution that can draw a single value.
type Rander interface {
	Rand() float64
}

// DistuvGenerator генерирует случайные числа из распределения gonum.
type DistuvGenerator struct {
	dist Rander
}

// NewExponential creates an exponential sampler with the given rate.
func NewExponential(rate float64, rnd *rand.Rand) *DistuvGenerator {
	return &DistuvGenerator{dist: distuv.Exponential{Rate: rate, Src: source(rnd)}}
}

// NewPoisson creates a Poisson sampler with mean lambda.
func NewPoisson(lambda float64, rnd *rand.Rand) *DistuvGenerator {
	return &DistuvGenerator{dist: distuv.Poisson{Lambda: lambda, Src: source(rnd)}}
}

// Rand генерирует одно случайное число
func (g *DistuvGenerator) Rand() float64 {
	return g.dist.Rand()
}

// RandN генерирует n случайных чисел
func (g *DistuvGenerator) RandN(n int) []float64 {
	result := make([]float64, n)
	fill(result, g.dist.Rand)
	return result
}

// distuv treats a nil Src as the global source; a typed nil would not be.
func source(rnd *rand.Rand) rand.Source {
	if rnd == nil {
		return nil
	}
	return rnd
}
