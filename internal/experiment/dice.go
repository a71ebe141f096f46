package experiment

import (
	"fmt"
	"math/rand/v2"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/peplxx/probability-explorer/pkg/convolve"
	"gonum.org/v1/gonum/stat"
)

var (
	diceRolls = params.IntSlider("rolls", "Number of rolls", 1, 10000, 100)
	diceCount = params.IntSlider("dice", "Number of dice", 1, 4, 1)
)

// DiceResult summarizes repeated rolls of several fair dice.
type DiceResult struct {
	Dice int
	Sums []float64
	// Frequencies[i] is the share of rolls that summed to Dice+i.
	Frequencies []float64
	Mean        float64
	// Variance is the population variance of the sums.
	Variance float64
}

// TheoreticalMean is 3.5 per die.
func (r DiceResult) TheoreticalMean() float64 { return 3.5 * float64(r.Dice) }

// TheoreticalVariance is 35/12 per die.
func (r DiceResult) TheoreticalVariance() float64 { return 35.0 / 12 * float64(r.Dice) }

// TheoreticalPMF is P(sum = Dice+i), the dice-fold convolution of a fair die.
func (r DiceResult) TheoreticalPMF() []float64 {
	d6, err := convolve.Uniform(6)
	if err != nil {
		panic(err)
	}
	return d6.Power(r.Dice)
}

// RollDice sums dice fair six-sided dice, rolls times.
func RollDice(rng *rand.Rand, rolls, dice int) DiceResult {
	res := DiceResult{Dice: dice, Sums: make([]float64, rolls)}
	idx := make([]int, rolls)
	for i := range rolls {
		sum := 0
		for range dice {
			sum += rng.IntN(6) + 1
		}
		res.Sums[i] = float64(sum)
		idx[i] = sum - dice
	}
	res.Frequencies = frequencies(idx, 5*dice+1)
	res.Mean, res.Variance = stat.PopMeanVariance(res.Sums, nil)
	return res
}

type DiceExperiment struct{}

func (DiceExperiment) Name() string { return "Dice Roll" }
func (DiceExperiment) Description() string {
	return "Simulate dice rolls and observe probability distributions"
}

func (DiceExperiment) Run(s ui.Surface, rng *rand.Rand) error {
	rolls := s.Int(diceRolls)
	dice := s.Int(diceCount)
	res := RollDice(rng, rolls, dice)

	stats := s.Panel(ui.PanelFormula)
	stats.Metric("Expected Value", fmt.Sprintf("%.2f", res.Mean))
	stats.Metric("Variance", fmt.Sprintf("%.2f", res.Variance))

	f := figure.New(fmt.Sprintf("Probability Distribution (%d rolls, %d dice)", rolls, dice), "Sum of Dice", "Probability")
	f.Bars = []figure.Bars{{Label: "Observed", XMin: float64(dice), Values: res.Frequencies}}
	f.Lines = []figure.Series{{
		Label:  "Theoretical",
		Xs:     figure.Ints(dice, 6*dice),
		Ys:     res.TheoreticalPMF(),
		Color:  1,
		Dashed: true,
	}}
	s.Panel(ui.PanelPlot).Figure(f)

	notes{
		Title: "Dice Roll Properties",
		Items: []string{
			"Each die has 6 faces (1-6)",
			"Each roll is independent",
			fmt.Sprintf("For %d dice: min sum %d, max sum %d", dice, dice, 6*dice),
			fmt.Sprintf("Theoretical E[X]: %.1f", res.TheoreticalMean()),
			fmt.Sprintf("Theoretical Var[X]: %.2f", res.TheoreticalVariance()),
		},
		Link: "Dice Probability",
		URL:  "https://en.wikipedia.org/wiki/Dice#Probability",
	}.write(s.Panel(ui.PanelProperties))
	return nil
}
