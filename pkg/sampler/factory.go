package sampler

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Kinds understood by New.
const (
	Uniform     = "Uniform"
	Normal      = "Normal"
	Exponential = "Exponential"
	Poisson     = "Poisson"
)

// ErrUnknownKind is returned by New for an unsupported distribution name.
var ErrUnknownKind = errors.New("unknown sampler kind")

// New returns the standard member of a family: Uniform(0,1), Normal(0,1),
// Exponential(1) or Poisson(1).
func New(kind string, rnd *rand.Rand) (Sampler, error) {
	switch kind {
	case Uniform:
		return NewUniDistParams(0, 1, rnd), nil
	case Normal:
		n := NewNormalDistParams(0, 1, rnd)
		return n, n.Validate()
	case Exponential:
		return NewExponential(1, rnd), nil
	case Poisson:
		return NewPoisson(1, rnd), nil
	default:
		return nil, errors.Wrap(ErrUnknownKind, kind)
	}
}
