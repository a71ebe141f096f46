package experiment

import (
	"math/rand/v2"
	"time"

	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrUnknownExperiment is returned when a name is not registered.
var ErrUnknownExperiment = errors.New("unknown experiment")

// Registry maps display names to experiments. It is built once and never modified afterwards.
type Registry struct {
	names  []string
	byName map[string]Experiment
	seed   uint64
}

// Option configures a Registry.
type Option func(*registryOptions)

type registryOptions struct {
	seed   uint64
	matrix *mat.Dense
}

// WithSeed makes every run use the same random stream. Zero means a time-based seed.
func WithSeed(seed uint64) Option {
	return func(o *registryOptions) { o.seed = seed }
}

// WithTransitionMatrix replaces the Markov chain transition matrix.
func WithTransitionMatrix(m *mat.Dense) Option {
	return func(o *registryOptions) { o.matrix = m }
}

// NewRegistry registers every experiment in display order.
func NewRegistry(opts ...Option) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	r, err := newRegistry(o.seed,
		CoinFlipExperiment{},
		DiceExperiment{},
		MonteCarloExperiment{},
		RandomWalkExperiment{},
		CentralLimitExperiment{},
		TTestExperiment{},
		MarkovChainExperiment{Matrix: o.matrix},
	)
	if err != nil {
		panic(err)
	}
	return r
}

func newRegistry(seed uint64, es ...Experiment) (*Registry, error) {
	r := &Registry{byName: map[string]Experiment{}, seed: seed}
	for _, e := range es {
		name := e.Name()
		if name == "" {
			name = DefaultName(e)
		}
		if _, dup := r.byName[name]; dup {
			return nil, errors.Errorf("duplicate experiment %q", name)
		}
		r.byName[name] = e
		r.names = append(r.names, name)
	}
	return r, nil
}

// Names lists experiments in display order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Lookup returns the named experiment.
func (r *Registry) Lookup(name string) (Experiment, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownExperiment, "%q", name)
	}
	return e, nil
}

// Run writes the experiment header and description, then runs it with a fresh random stream.
func (r *Registry) Run(name string, s ui.Surface) error {
	e, err := r.Lookup(name)
	if err != nil {
		return err
	}
	s.Header(name)
	s.Markdown(e.Description())
	return errors.Wrap(e.Run(s, r.rand()), name)
}

func (r *Registry) rand() *rand.Rand {
	seed := r.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
