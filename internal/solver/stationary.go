package solver

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Stationary returns the distribution π with πP = π and Σπ = 1 for a
// row-stochastic matrix P.
//
// The system (Pᵀ - I)π = 0 is stacked with a row of ones equal to 1 and
// solved with every πᵢ bounded to [0, 1].
func Stationary(P mat.Matrix) (*mat.VecDense, error) {
	n, c := P.Dims()
	if n != c {
		return nil, errors.Errorf("solver: transition matrix is %dx%d, want square", n, c)
	}

	A := mat.NewDense(n+1, n, nil)
	A.Copy(P.T())
	for i := range n {
		A.Set(i, i, A.At(i, i)-1)
		A.Set(n, i, 1)
	}
	b := mat.NewVecDense(n+1, nil)
	b.SetVec(n, 1)

	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := range upper {
		upper[i] = 1
	}

	pi, _, err := SolveWithBounds(A, b, lower, upper)
	if err != nil {
		return nil, err
	}

	// Нормируем, чтобы сумма была ровно 1.
	if s := mat.Sum(pi); s > 0 {
		pi.ScaleVec(1/s, pi)
	}
	return pi, nil
}
