package convolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestNewKernelNormalizes(t *testing.T) {
	k, err := NewKernel([]float64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, k.Len())
	assert.Equal(t, []float64{0.25, 0.75}, k.Power(1))

	_, err = NewKernel(nil)
	assert.Error(t, err)
	_, err = NewKernel([]float64{1, -1})
	assert.Error(t, err)
	_, err = NewKernel([]float64{0, 0})
	assert.Error(t, err)
}

func TestConvolveCoins(t *testing.T) {
	k, err := Uniform(2)
	require.NoError(t, err)
	got := k.Convolve([]float64{0.5, 0.5})
	assert.True(t, floats.EqualApprox([]float64{0.25, 0.5, 0.25}, got, 1e-12))
}

func TestTwoDice(t *testing.T) {
	d6, err := Uniform(6)
	require.NoError(t, err)
	pmf := d6.Power(2)

	require.Len(t, pmf, 11)
	// сумма 7 (индекс 5) самая вероятная: 6/36
	assert.InDelta(t, 6.0/36, pmf[5], 1e-12)
	assert.InDelta(t, 1.0/36, pmf[0], 1e-12)
	assert.InDelta(t, 1.0/36, pmf[10], 1e-12)
	assert.InDelta(t, 1, floats.Sum(pmf), 1e-12)
}

func TestPowerZero(t *testing.T) {
	d6, err := Uniform(6)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, d6.Power(0))
}
