package heatmapplotter

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grid is a regular grid of values. Row r of Values holds the points at Ys[r],
// column c the points at Xs[c].
type Grid struct {
	Xs, Ys []float64
	Values *mat.Dense
}

// NewGrid evaluates f at every (x, y) pair.
func NewGrid(xs, ys []float64, f func(x, y float64) float64) Grid {
	m := mat.NewDense(len(ys), len(xs), nil)
	for r, y := range ys {
		for c, x := range xs {
			m.Set(r, c, f(x, y))
		}
	}
	return Grid{Xs: xs, Ys: ys, Values: m}
}

func (g Grid) Dims() (c, r int)   { return len(g.Xs), len(g.Ys) }
func (g Grid) Z(c, r int) float64 { return g.Values.At(r, c) }
func (g Grid) X(c int) float64    { return g.Xs[c] }
func (g Grid) Y(r int) float64    { return g.Ys[r] }

// Min returns the smallest finite value of the grid.
func (g Grid) Min() float64 {
	lo, _ := g.bounds()
	return lo
}

// Max returns the largest finite value of the grid.
func (g Grid) Max() float64 {
	_, hi := g.bounds()
	return hi
}

func (g Grid) bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	r, c := g.Values.Dims()
	for i := range r {
		for j := range c {
			v := g.Values.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// Sum adds up every value of the grid.
func (g Grid) Sum() float64 {
	return mat.Sum(g.Values)
}
