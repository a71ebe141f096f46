package distribution

import (
	"github.com/pkg/errors"
)

// ErrUnknownDistribution is returned when a name is not in the catalog.
var ErrUnknownDistribution = errors.New("unknown distribution")

// Catalog maps display names to distributions, per family.
// It is built once and never modified afterwards.
type Catalog struct {
	names  map[Family][]string
	byName map[Family]map[string]Distribution
}

// NewCatalog builds the catalog of every distribution in display order.
func NewCatalog() *Catalog {
	c, err := newCatalog(
		MultivariateNormal{},
		Normal{},
		ChiSquared{},
		Uniform{},
		Exponential{},
		Cauchy{},
		Gamma{},
		Multinomial{},
		Poisson{},
		Binomial{},
		Geometric{},
		Bernoulli{},
		Hypergeometric{},
		DiscreteUniform{},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func newCatalog(ds ...Distribution) (*Catalog, error) {
	c := &Catalog{
		names:  map[Family][]string{},
		byName: map[Family]map[string]Distribution{},
	}
	for _, d := range ds {
		f := d.Family()
		if c.byName[f] == nil {
			c.byName[f] = map[string]Distribution{}
		}
		if _, dup := c.byName[f][d.Name()]; dup {
			return nil, errors.Errorf("duplicate %s distribution %q", f, d.Name())
		}
		c.byName[f][d.Name()] = d
		c.names[f] = append(c.names[f], d.Name())
	}
	return c, nil
}

// Names lists the distributions of a family in display order.
func (c *Catalog) Names(f Family) []string {
	out := make([]string, len(c.names[f]))
	copy(out, c.names[f])
	return out
}

// Lookup returns the named distribution of a family.
func (c *Catalog) Lookup(f Family, name string) (Distribution, error) {
	d, ok := c.byName[f][name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDistribution, "%s %q", f, name)
	}
	return d, nil
}

// Find looks a name up in every family.
func (c *Catalog) Find(name string) (Distribution, error) {
	for _, f := range []Family{Continuous, Discrete} {
		if d, ok := c.byName[f][name]; ok {
			return d, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownDistribution, "%q", name)
}
