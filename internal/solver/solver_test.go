package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const Tolerance = 1e-3

// TestSolveWithBounds tests the SolveWithBounds function.
func TestSolveWithBounds(t *testing.T) {
	A := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 6, 6, 7, 88, 9})
	b := mat.NewVecDense(3, []float64{1, 2, 3})

	x, F, err := SolveWithBounds(A, b, []float64{-1, -1, -1}, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0, F, Tolerance)
	assert.InDelta(t, 0, x.AtVec(0), Tolerance)
	assert.InDelta(t, 0, x.AtVec(1), Tolerance)
	assert.InDelta(t, 1.0/3, x.AtVec(2), Tolerance)
}

func TestSolveWithBoundsDims(t *testing.T) {
	A := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	_, _, err := SolveWithBounds(A, mat.NewVecDense(3, nil), []float64{0, 0}, []float64{1, 1})
	assert.Error(t, err)
	_, _, err = SolveWithBounds(A, mat.NewVecDense(2, nil), []float64{0}, []float64{1, 1})
	assert.Error(t, err)
}

func TestStationary(t *testing.T) {
	P := mat.NewDense(3, 3, []float64{
		0.7, 0.2, 0.1,
		0.3, 0.5, 0.2,
		0.2, 0.3, 0.5,
	})
	pi, err := Stationary(P)
	require.NoError(t, err)
	assert.InDelta(t, 19.0/41, pi.AtVec(0), Tolerance)
	assert.InDelta(t, 13.0/41, pi.AtVec(1), Tolerance)
	assert.InDelta(t, 9.0/41, pi.AtVec(2), Tolerance)
	assert.InDelta(t, 1, mat.Sum(pi), 1e-12)
}

func TestStationaryPeriodic(t *testing.T) {
	pi, err := Stationary(mat.NewDense(2, 2, []float64{0, 1, 1, 0}))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pi.AtVec(0), Tolerance)
	assert.InDelta(t, 0.5, pi.AtVec(1), Tolerance)
}

func TestStationaryNotSquare(t *testing.T) {
	_, err := Stationary(mat.NewDense(2, 3, nil))
	assert.Error(t, err)
}
