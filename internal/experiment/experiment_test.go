package experiment

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/peplxx/probability-explorer/pkg/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 42))
}

func TestFlipCoins(t *testing.T) {
	res := FlipCoins(seeded(1), 10000)
	assert.InDelta(t, 1, res.Heads+res.Tails, 1e-12)
	assert.InDelta(t, 0.5, res.Heads, 0.03)
}

func TestRollDiceConverges(t *testing.T) {
	for dice := 1; dice <= 4; dice++ {
		res := RollDice(seeded(uint64(dice)), 10000, dice)
		require.Len(t, res.Sums, 10000)
		require.Len(t, res.Frequencies, 5*dice+1)
		assert.InDelta(t, 1, floats.Sum(res.Frequencies), 1e-9)
		assert.InEpsilon(t, 3.5*float64(dice), res.Mean, 0.05)
		assert.InEpsilon(t, 35.0/12*float64(dice), res.Variance, 0.05)
		assert.Equal(t, float64(dice), floats.Min(res.Sums))
		assert.LessOrEqual(t, floats.Max(res.Sums), float64(6*dice))
	}
}

func TestEstimatePiErrorShrinks(t *testing.T) {
	const trials = 20
	var small, large float64
	for i := range trials {
		small += EstimatePi(seeded(uint64(i)), 100).Error()
		large += EstimatePi(seeded(uint64(i+1000)), 10000).Error()
	}
	assert.Less(t, large/trials, small/trials)
	assert.Less(t, large/trials, 0.05)
}

func TestEstimatePiPoints(t *testing.T) {
	res := EstimatePi(seeded(7), 500)
	inside := 0
	for i := range res.Xs {
		assert.LessOrEqual(t, math.Abs(res.Xs[i]), 1.0)
		assert.LessOrEqual(t, math.Abs(res.Ys[i]), 1.0)
		if res.Inside[i] {
			inside++
		}
	}
	assert.Equal(t, 4*float64(inside)/500, res.Estimate)
}

func TestRandomWalks(t *testing.T) {
	res := RandomWalks(seeded(3), 50, 100)
	require.Len(t, res.Paths, 50)
	for w, p := range res.Paths {
		require.Len(t, p, 100)
		assert.Equal(t, p[99], res.Final[w])
		// Чётность позиции совпадает с чётностью номера шага.
		assert.Equal(t, 0.0, math.Mod(p[98]+99, 2))
	}
	mean, std := stat.PopMeanStdDev(res.Final, nil)
	assert.Equal(t, mean, res.Mean)
	assert.Equal(t, std, res.Std)
}

func TestSampleMeans(t *testing.T) {
	src, err := sampler.New(sampler.Uniform, seeded(5))
	require.NoError(t, err)

	means := SampleMeans(src, 2000, 30)
	mean, std := stat.PopMeanStdDev(means, nil)
	assert.InDelta(t, 0.5, mean, 0.01)
	assert.InDelta(t, math.Sqrt(1.0/12/30), std, 0.005)
}

func TestTTest(t *testing.T) {
	res, err := TTest(seeded(11), 100, 2)
	require.NoError(t, err)
	assert.Less(t, res.T, 0.0)
	assert.True(t, res.Significant())

	m1, v1 := stat.MeanVariance(res.Sample1, nil)
	m2, v2 := stat.MeanVariance(res.Sample2, nil)
	pooled := (v1 + v2) / 2
	assert.InDelta(t, (m1-m2)/math.Sqrt(pooled*2/100), res.T, 1e-9)

	res, err = TTest(seeded(12), 10, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.P, 0.0)
	assert.LessOrEqual(t, res.P, 1.0)
}

func TestTTestRejectsBadInput(t *testing.T) {
	_, err := TTest(seeded(1), 100, math.NaN())
	assert.ErrorContains(t, err, "effect")
	_, err = TTest(seeded(1), 1, 0.5)
	assert.Error(t, err)
}

func TestSimulateChain(t *testing.T) {
	history, err := SimulateChain(seeded(9), DefaultTransitionMatrix(), 0, 100000)
	require.NoError(t, err)
	require.Len(t, history, 100001)
	assert.Equal(t, 0, history[0])

	freq := frequencies(history, 3)
	assert.InDelta(t, 19.0/41, freq[0], 0.02)
	assert.InDelta(t, 13.0/41, freq[1], 0.02)
	assert.InDelta(t, 9.0/41, freq[2], 0.02)
}

func TestSimulateChainRejectsBadMatrix(t *testing.T) {
	bad := mat.NewDense(2, 2, []float64{0.5, 0.6, 1, 0})
	_, err := SimulateChain(seeded(1), bad, 0, 10)
	assert.Error(t, err)

	_, err = SimulateChain(seeded(1), DefaultTransitionMatrix(), 3, 10)
	assert.Error(t, err)
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "CoinFlip", DefaultName(CoinFlipExperiment{}))
	assert.Equal(t, "Dice", DefaultName(&DiceExperiment{}))
	assert.Equal(t, []string{"A", "B", "C", "D"}, StateNames(4))
}

func TestRegistryRunsEveryExperiment(t *testing.T) {
	r := NewRegistry(WithSeed(1))
	require.Len(t, r.Names(), 7)

	for _, name := range r.Names() {
		rec := ui.NewRecorder(nil)
		require.NoError(t, r.Run(name, rec), name)

		assert.Equal(t, ui.KindHeader, rec.Blocks[0].Kind)
		assert.Equal(t, name, rec.Blocks[0].Text)
		assert.Equal(t, ui.KindMarkdown, rec.Blocks[1].Kind)
		assert.NotEmpty(t, rec.Metrics(), name)

		figs := rec.Find(ui.KindFigure)
		require.Len(t, figs, 1, name)
		assert.Equal(t, ui.PanelPlot, figs[0].Panel)
		_, err := figs[0].Figure.Plot()
		assert.NoError(t, err, name)
	}
}

func TestRegistrySeedIsReproducible(t *testing.T) {
	r := NewRegistry(WithSeed(99))
	a, b := ui.NewRecorder(map[string]string{"points": "5000"}), ui.NewRecorder(map[string]string{"points": "5000"})
	require.NoError(t, r.Run("Monte Carlo Pi", a))
	require.NoError(t, r.Run("Monte Carlo Pi", b))
	assert.Equal(t, a.Metrics(), b.Metrics())
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("Birthday Paradox")
	assert.ErrorIs(t, err, ErrUnknownExperiment)
	assert.ErrorIs(t, r.Run("Birthday Paradox", ui.NewRecorder(nil)), ErrUnknownExperiment)

	_, err = newRegistry(0, DiceExperiment{}, DiceExperiment{})
	assert.Error(t, err)
}

func TestRegistryCustomMatrix(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	r := NewRegistry(WithSeed(1), WithTransitionMatrix(m))
	rec := ui.NewRecorder(map[string]string{"steps": "10"})
	require.NoError(t, r.Run("Markov Chain", rec))

	metrics := rec.Metrics()
	assert.Equal(t, "0.545", metrics["State A Frequency"])
	assert.Equal(t, "0.455", metrics["State B Frequency"])
}

func TestMarkovSteadyState(t *testing.T) {
	r := NewRegistry(WithSeed(1))
	rec := ui.NewRecorder(map[string]string{"steps": "1000"})
	require.NoError(t, r.Run("Markov Chain", rec))

	metrics := rec.Metrics()
	for state, want := range map[string]float64{"A": 19.0 / 41, "B": 13.0 / 41, "C": 9.0 / 41} {
		got, err := strconv.ParseFloat(metrics["State "+state+" Steady State"], 64)
		require.NoError(t, err, state)
		assert.InDelta(t, want, got, 2e-3, state)
	}

	matrices := rec.Find(ui.KindMatrix)
	require.Len(t, matrices, 2)
	assert.Equal(t, "Transition Matrix", matrices[0].Text)
	assert.True(t, mat.Equal(DefaultTransitionMatrix(), matrices[0].Matrix))
	assert.Equal(t, "Steady State", matrices[1].Text)
	r1, c1 := matrices[1].Matrix.Dims()
	assert.Equal(t, []int{1, 3}, []int{r1, c1})
	assert.InDelta(t, 19.0/41, matrices[1].Matrix.At(0, 0), 2e-3)
}

func TestDiceMatchesTheory(t *testing.T) {
	res := RollDice(seeded(11), 20000, 2)
	pmf := res.TheoreticalPMF()
	require.Len(t, pmf, len(res.Frequencies))
	assert.InDelta(t, 1, floats.Sum(pmf), 1e-12)
	for i := range pmf {
		assert.InDelta(t, pmf[i], res.Frequencies[i], 0.015, "sum %d", i+2)
	}
}
