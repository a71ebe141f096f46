package experiment

import (
	"fmt"
	"math/rand/v2"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	walkSteps = params.IntSlider("steps", "Number of steps", 1, 1000, 100)
	walkCount = params.IntSlider("walks", "Number of walks", 1, 100, 10)
)

// WalkResult holds simple symmetric random walks.
type WalkResult struct {
	// Paths[w][t] is the position of walk w after t+1 steps.
	Paths [][]float64
	Final []float64
	Mean  float64
	// Std is the population standard deviation of the final positions.
	Std float64
}

// RandomWalks simulates walks of ±1 steps with equal probability.
func RandomWalks(rng *rand.Rand, walks, steps int) WalkResult {
	coin := distuv.Bernoulli{P: 0.5, Src: rng}
	res := WalkResult{
		Paths: make([][]float64, walks),
		Final: make([]float64, walks),
	}
	for w := range walks {
		path := make([]float64, steps)
		pos := 0.0
		for t := range steps {
			pos += 2*coin.Rand() - 1
			path[t] = pos
		}
		res.Paths[w] = path
		res.Final[w] = pos
	}
	res.Mean, res.Std = stat.PopMeanStdDev(res.Final, nil)
	return res
}

type RandomWalkExperiment struct{}

func (RandomWalkExperiment) Name() string { return "Random Walk" }
func (RandomWalkExperiment) Description() string {
	return "Simulate random walks and observe their statistical properties"
}

func (RandomWalkExperiment) Run(s ui.Surface, rng *rand.Rand) error {
	steps := s.Int(walkSteps)
	walks := s.Int(walkCount)
	res := RandomWalks(rng, walks, steps)

	stats := s.Panel(ui.PanelFormula)
	stats.Metric("Mean Final Position", fmt.Sprintf("%.2f", res.Mean))
	stats.Metric("Standard Deviation", fmt.Sprintf("%.2f", res.Std))

	f := figure.New(fmt.Sprintf("Random Walks (n=%d)", walks), "Time Steps", "Position")
	ts := figure.Ints(0, steps-1)
	for i, p := range res.Paths {
		f.Lines = append(f.Lines, figure.Series{Xs: ts, Ys: p, Color: i})
	}
	s.Panel(ui.PanelPlot).Figure(f)

	notes{
		Title: "Random Walk Properties",
		Items: []string{
			"Each step is independent",
			"Equal probability of +1 or -1 step",
			"Expected final position = 0",
			"Variance grows with number of steps",
			"Distance from origin ~ √n steps",
		},
		Link: "Random Walk",
		URL:  "https://en.wikipedia.org/wiki/Random_walk",
	}.write(s.Panel(ui.PanelProperties))
	return nil
}
