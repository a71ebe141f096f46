// Package solver holds bounded least-squares solvers for small dense systems.
package solver

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// penalty is added to the residual for every component outside its bounds.
const penalty = 1000

// SolveWithBounds minimizes ||Ax - b|| subject to lower <= x <= upper with
// Nelder–Mead. It returns x and the residual norm at x.
func SolveWithBounds(A mat.Matrix, b mat.Vector, lower, upper []float64) (*mat.VecDense, float64, error) {
	r, n := A.Dims()
	if b.Len() != r {
		return nil, 0, errors.Errorf("solver: b has %d rows, A has %d", b.Len(), r)
	}
	if len(lower) != n || len(upper) != n {
		return nil, 0, errors.Errorf("solver: bounds must have %d entries", n)
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			var Ax mat.VecDense
			Ax.MulVec(A, mat.NewVecDense(n, x))
			var diff mat.VecDense
			diff.SubVec(&Ax, b)
			p := 0.0
			for i := range len(x) {
				// штраф за выход за границы
				if x[i] < lower[i] || x[i] > upper[i] {
					p += penalty
				}
			}
			return mat.Norm(&diff, 2) + p
		},
	}

	settings := &optimize.Settings{
		MajorIterations: 1000,
		FuncEvaluations: 10000,
	}

	// стартуем из середины допустимой области
	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = (lower[i] + upper[i]) / 2
	}

	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if result == nil {
		return nil, 0, errors.Wrap(err, "solver: minimize")
	}
	if err != nil {
		switch result.Status {
		case optimize.IterationLimit, optimize.FunctionEvaluationLimit:
			// лимит исчерпан, берём лучшую найденную точку
		default:
			return nil, 0, errors.Wrap(err, "solver: minimize")
		}
	}

	F := problem.Func(result.X)

	return mat.NewVecDense(n, result.X), F, nil
}
