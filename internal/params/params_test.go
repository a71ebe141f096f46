package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterSetKeepsOrder(t *testing.T) {
	ps := New()
	ps.Set("b", 2.0)
	ps.Set("a", 1)
	ps.Set("b", 3.0)

	assert.Equal(t, []string{"b", "a"}, ps.Keys())
	assert.Equal(t, 3.0, ps.Float("b"))
	assert.Equal(t, 1.0, ps.Float("a"))
	assert.True(t, math.IsNaN(ps.Float("missing")))
	assert.Equal(t, "b=3 a=1", ps.String())
}

func TestDecodeConvertsNumbers(t *testing.T) {
	ps := New()
	ps.Set("n", 10)
	ps.Set("p", []float64{0.2, 0.3, 0.5})
	ps.Set("scale", 2)

	var out struct {
		N     int       `mapstructure:"n"`
		P     []float64 `mapstructure:"p"`
		Scale float64   `mapstructure:"scale"`
	}
	require.NoError(t, Decode(ps, &out))
	assert.Equal(t, 10, out.N)
	assert.Equal(t, []float64{0.2, 0.3, 0.5}, out.P)
	assert.Equal(t, 2.0, out.Scale)
}

func TestDecodeMissingField(t *testing.T) {
	ps := New()
	ps.Set("mean", 0.0)

	var out struct {
		Mean float64 `mapstructure:"mean"`
		Std  float64 `mapstructure:"std"`
	}
	assert.Error(t, Decode(ps, &out))
}

func TestControlClamp(t *testing.T) {
	c := Slider("x", "X", -1, 1, 0.5, 0.1)
	assert.Equal(t, -1.0, c.Clamp(-7))
	assert.Equal(t, 1.0, c.Clamp(7))
	assert.Equal(t, 0.5, c.Clamp(math.NaN()))

	i := IntSlider("n", "N", 1, 10, 3)
	assert.Equal(t, 4.0, i.Clamp(3.6))
	assert.Equal(t, 1.0, i.Clamp(0))
}

func TestChoiceResolve(t *testing.T) {
	c := Choice{Name: "d", Options: []string{"Uniform", "Poisson"}}
	assert.Equal(t, "Poisson", c.Resolve("Poisson"))
	assert.Equal(t, "Uniform", c.Resolve("Cauchy"))

	c.Default = "Poisson"
	assert.Equal(t, "Poisson", c.Resolve(""))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[[1, 0.5], [0.5, 2]]", Format([][]float64{{1, 0.5}, {0.5, 2}}))
	assert.Equal(t, "[0.33, 0.33, 0.34]", Format([]float64{0.33, 0.33, 0.34}))
}
