// Package convolve implements discrete convolution of probability mass functions.
package convolve

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Kernel is a probability mass function on 0..n-1 used as a convolution kernel.
type Kernel struct {
	kernel *mat.VecDense
}

// NewKernel builds a kernel from non-negative weights, normalized to sum to 1.
func NewKernel(weights []float64) (*Kernel, error) {
	if len(weights) == 0 {
		return nil, errors.New("convolve: empty kernel")
	}
	sum := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, errors.Errorf("convolve: negative weight %g at %d", w, i)
		}
		sum += w
	}
	if sum == 0 {
		return nil, errors.New("convolve: kernel weights sum to zero")
	}

	v := mat.NewVecDense(len(weights), floats.ScaleTo(make([]float64, len(weights)), 1/sum, weights))
	return &Kernel{v}, nil
}

// Uniform is the kernel of a fair n-sided die, faces 0..n-1.
func Uniform(n int) (*Kernel, error) {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return NewKernel(w)
}

// Len is the support size of the kernel.
func (ck *Kernel) Len() int { return ck.kernel.Len() }

// Функция для добавления Zero-Padding к вектору
func padVector(input []float64, padding int) *mat.VecDense {
	padded := mat.NewVecDense(len(input)+2*padding, nil)

	// Заполняем середину исходным вектором
	for i, v := range input {
		padded.SetVec(i+padding, v)
	}

	return padded
}

// Convolve returns the full convolution of input with the kernel: the
// distribution of X+K for independent X ~ input and K ~ kernel.
// The result has len(input)+Len()-1 entries.
func (ck *Kernel) Convolve(input []float64) []float64 {
	k := ck.kernel.Len()
	if len(input) == 0 {
		return nil
	}

	// Применяем zero padding
	padded := padVector(input, k-1)

	output := make([]float64, len(input)+k-1)
	for i := range output {
		sum := 0.0
		for j := 0; j < k; j++ {
			sum += padded.AtVec(i+k-1-j) * ck.kernel.AtVec(j)
		}
		output[i] = sum
	}

	return output
}

// Power returns the distribution of the sum of n independent draws from the kernel.
func (ck *Kernel) Power(n int) []float64 {
	if n <= 0 {
		return []float64{1}
	}
	out := mat.Col(nil, 0, ck.kernel)
	for range n - 1 {
		out = ck.Convolve(out)
	}
	return out
}
