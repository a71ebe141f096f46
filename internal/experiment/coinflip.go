package experiment

import (
	"fmt"
	"math/rand/v2"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"gonum.org/v1/gonum/stat/distuv"
)

var coinFlips = params.IntSlider("flips", "Number of flips", 1, 10000, 100)

// CoinResult holds the empirical frequencies of a fair coin.
type CoinResult struct {
	Heads float64
	Tails float64
}

// FlipCoins flips a fair coin n times.
func FlipCoins(rng *rand.Rand, n int) CoinResult {
	coin := distuv.Bernoulli{P: 0.5, Src: rng}
	heads := 0
	for range n {
		if coin.Rand() == 1 {
			heads++
		}
	}
	return CoinResult{
		Heads: float64(heads) / float64(n),
		Tails: float64(n-heads) / float64(n),
	}
}

type CoinFlipExperiment struct{}

func (CoinFlipExperiment) Name() string { return "Coin Flip" }
func (CoinFlipExperiment) Description() string {
	return "Simulate coin flips and observe probability distribution"
}

func (CoinFlipExperiment) Run(s ui.Surface, rng *rand.Rand) error {
	n := s.Int(coinFlips)
	res := FlipCoins(rng, n)

	stats := s.Panel(ui.PanelFormula)
	stats.Metric("Heads Probability", fmt.Sprintf("%.3f", res.Heads))
	stats.Metric("Tails Probability", fmt.Sprintf("%.3f", res.Tails))

	f := figure.New(fmt.Sprintf("Probability Distribution (%d flips)", n), "", "Probability")
	f.Bars = []figure.Bars{{Values: []float64{res.Heads, res.Tails}}}
	f.NominalX = []string{"Heads", "Tails"}
	s.Panel(ui.PanelPlot).Figure(f)

	notes{
		Title: "Coin Flip Properties",
		Items: []string{
			"Each flip is independent",
			"Probability of heads = 0.5",
			"Probability of tails = 0.5",
			"Expected value = 0.5",
			"Variance = 0.25",
		},
		Link: "Coin Flipping Probability",
		URL:  "https://en.wikipedia.org/wiki/Coin_flipping#Physics",
	}.write(s.Panel(ui.PanelProperties))
	return nil
}
