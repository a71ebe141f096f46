package experiment

import (
	"fmt"
	"math/rand/v2"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/solver"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/peplxx/probability-explorer/pkg/readmatrix"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

var markovSteps = params.IntSlider("steps", "Number of steps", 10, 1000, 100)

// DefaultTransitionMatrix is the three-state chain A, B, C. Row i holds the
// probabilities of moving from state i.
func DefaultTransitionMatrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0.7, 0.2, 0.1, // A -> A,B,C
		0.3, 0.5, 0.2, // B -> A,B,C
		0.2, 0.3, 0.5, // C -> A,B,C
	})
}

// SimulateChain runs the chain from start for steps transitions. The returned
// history includes the start state, so it has steps+1 entries.
func SimulateChain(rng *rand.Rand, m mat.Matrix, start, steps int) ([]int, error) {
	if err := readmatrix.ValidateStochastic(m); err != nil {
		return nil, err
	}
	n, _ := m.Dims()
	if start < 0 || start >= n {
		return nil, errors.Errorf("start state %d out of range [0, %d)", start, n)
	}

	rows := make([]distuv.Categorical, n)
	for i := range rows {
		rows[i] = distuv.NewCategorical(mat.Row(nil, i, m), rng)
	}

	history := make([]int, 0, steps+1)
	state := start
	history = append(history, state)
	for range steps {
		state = int(rows[state].Rand())
		history = append(history, state)
	}
	return history, nil
}

// StateNames labels states A, B, C, ...
func StateNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

// MarkovChainExperiment simulates a chain with a fixed transition matrix starting in state A.
type MarkovChainExperiment struct {
	Matrix *mat.Dense
}

func (MarkovChainExperiment) Name() string { return "Markov Chain" }
func (MarkovChainExperiment) Description() string {
	return "Simulate a simple Markov chain and observe state transitions"
}

func (e MarkovChainExperiment) matrix() *mat.Dense {
	if e.Matrix == nil {
		return DefaultTransitionMatrix()
	}
	return e.Matrix
}

func (e MarkovChainExperiment) Run(s ui.Surface, rng *rand.Rand) error {
	steps := s.Int(markovSteps)
	m := e.matrix()
	history, err := SimulateChain(rng, m, 0, steps)
	if err != nil {
		return err
	}
	n, _ := m.Dims()
	states := StateNames(n)

	panel := s.Panel(ui.PanelFormula)
	panel.Matrix("Transition Matrix", m, states, states)
	for i, freq := range frequencies(history, n) {
		panel.Metric(fmt.Sprintf("State %s Frequency", states[i]), fmt.Sprintf("%.3f", freq))
	}
	pi, err := solver.Stationary(m)
	if err != nil {
		panel.Warning("Steady state not found: " + err.Error())
	} else {
		for i := range n {
			panel.Metric(fmt.Sprintf("State %s Steady State", states[i]), fmt.Sprintf("%.3f", pi.AtVec(i)))
		}
		panel.Matrix("Steady State", pi.T(), []string{"π"}, states)
	}

	ys := make([]float64, len(history))
	for i, st := range history {
		ys[i] = float64(st)
	}
	f := figure.New("Markov Chain State Transitions", "Time Steps", "State")
	f.Lines = []figure.Series{{Xs: figure.Ints(0, len(history)-1), Ys: ys}}
	f.NominalY = states
	s.Panel(ui.PanelPlot).Figure(f)

	notes{
		Title: "Markov Chain Properties",
		Items: []string{
			"Memoryless process",
			"Next state depends only on current state",
			"Transition probabilities are fixed",
			"Can reach steady state distribution",
			"Used in weather prediction, natural language processing and the PageRank algorithm",
		},
		Link: "Markov Chain",
		URL:  "https://en.wikipedia.org/wiki/Markov_chain",
	}.write(s.Panel(ui.PanelProperties))
	return nil
}
