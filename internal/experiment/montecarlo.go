package experiment

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var monteCarloPoints = params.IntSlider("points", "Number of points", 100, 10000, 1000)

// PiResult holds the sampled points and the resulting estimate of π.
type PiResult struct {
	Xs, Ys   []float64
	Inside   []bool
	Estimate float64
}

// Error is the absolute distance from π.
func (r PiResult) Error() float64 { return math.Abs(r.Estimate - math.Pi) }

// EstimatePi throws n points into [-1, 1]² and counts those inside the unit circle.
func EstimatePi(rng *rand.Rand, n int) PiResult {
	u := distuv.Uniform{Min: -1, Max: 1, Src: rng}
	res := PiResult{
		Xs:     make([]float64, n),
		Ys:     make([]float64, n),
		Inside: make([]bool, n),
	}
	inside := 0
	for i := range n {
		// Точка в квадрате [-1, 1]²
		x, y := u.Rand(), u.Rand()
		res.Xs[i], res.Ys[i] = x, y
		if math.Hypot(x, y) <= 1 {
			res.Inside[i] = true
			inside++
		}
	}
	res.Estimate = 4 * float64(inside) / float64(n)
	return res
}

type MonteCarloExperiment struct{}

func (MonteCarloExperiment) Name() string        { return "Monte Carlo Pi" }
func (MonteCarloExperiment) Description() string { return "Estimate π using Monte Carlo simulation" }

func (MonteCarloExperiment) Run(s ui.Surface, rng *rand.Rand) error {
	res := EstimatePi(rng, s.Int(monteCarloPoints))

	stats := s.Panel(ui.PanelFormula)
	stats.Metric("π Estimate", fmt.Sprintf("%.6f", res.Estimate))
	stats.Metric("Actual π", fmt.Sprintf("%.6f", math.Pi))
	stats.Metric("Error", fmt.Sprintf("%.6f", res.Error()))

	in := figure.Scatter{Label: "Inside", Color: 2}
	out := figure.Scatter{Label: "Outside", Color: 0}
	for i := range res.Xs {
		if res.Inside[i] {
			in.Xs, in.Ys = append(in.Xs, res.Xs[i]), append(in.Ys, res.Ys[i])
		} else {
			out.Xs, out.Ys = append(out.Xs, res.Xs[i]), append(out.Ys, res.Ys[i])
		}
	}
	f := figure.New("Monte Carlo estimate of π", "x", "y")
	f.Scatters = []figure.Scatter{in, out}
	f.EqualAxes = true
	s.Panel(ui.PanelPlot).Figure(f)

	notes{
		Title: "Monte Carlo Method Properties",
		Items: []string{
			"Uses random sampling to estimate π",
			"Area of circle = πr²",
			"Area of square = (2r)²",
			"Ratio = π/4",
			"Accuracy improves with more points",
		},
		Link: "Monte Carlo Methods",
		URL:  "https://en.wikipedia.org/wiki/Monte_Carlo_method",
	}.write(s.Panel(ui.PanelProperties))
	return nil
}
