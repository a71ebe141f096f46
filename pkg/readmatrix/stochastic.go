package readmatrix

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RowSumTolerance is the allowed deviation of a row sum from 1.
const RowSumTolerance = 1e-6

// ValidateStochastic checks that m is square, non-negative and that every row sums to 1.
// All offending rows are reported together.
func ValidateStochastic(m mat.Matrix) error {
	r, c := m.Dims()
	if r != c {
		return errors.Errorf("transition matrix must be square, got %dx%d", r, c)
	}

	var result *multierror.Error
	row := make([]float64, c)
	for i := range r {
		mat.Row(row, i, m)
		if floats.Min(row) < 0 {
			result = multierror.Append(result, errors.Errorf("row %d has negative entries", i+1))
		}
		if s := floats.Sum(row); math.Abs(s-1) > RowSumTolerance {
			result = multierror.Append(result, errors.Errorf("row %d sums to %g, want 1", i+1, s))
		}
	}
	return result.ErrorOrNil()
}
