package sampler

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

const Tolerance = 0.05

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestUniformRange(t *testing.T) {
	u := NewUniDistParams(-2, 3, seeded())
	for _, v := range u.RandN(10000) {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}

func TestNormalMoments(t *testing.T) {
	n := NewNormalDistParams(5, 2, seeded())
	require.NoError(t, n.Validate())
	mean, std := stat.PopMeanStdDev(n.RandN(50000), nil)
	assert.InDelta(t, 5, mean, Tolerance)
	assert.InDelta(t, 2, std, Tolerance)
}

func TestNormalValidate(t *testing.T) {
	assert.Error(t, NewNormalDistParams(0, 0, nil).Validate())
	assert.Error(t, NewNormalDistParams(0, -1, nil).Validate())
	assert.Error(t, NewNormalDistParams(math.NaN(), 1, nil).Validate())
	assert.Error(t, NewNormalDistParams(math.Inf(1), 1, nil).Validate())
	assert.Error(t, NewNormalDistParams(0, math.Inf(1), nil).Validate())
}

func TestFactory(t *testing.T) {
	cases := map[string]float64{Uniform: 0.5, Normal: 0, Exponential: 1, Poisson: 1}
	for kind, want := range cases {
		s, err := New(kind, seeded())
		require.NoError(t, err, kind)
		assert.InDelta(t, want, stat.Mean(s.RandN(50000), nil), Tolerance, kind)
	}

	_, err := New("Cauchy", nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
