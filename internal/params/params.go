// Package params holds the values a distribution or experiment reads from its
// controls during one render cycle.
package params

import (
	"fmt"
	"math"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// ParameterSet is an ordered mapping from parameter name to value.
// Values are float64, int, []float64 or [][]float64.
type ParameterSet struct {
	keys   []string
	values map[string]any
}

// New returns an empty set.
func New() ParameterSet {
	return ParameterSet{values: make(map[string]any)}
}

// Set stores v under name. Re-setting a name keeps its original position.
func (ps *ParameterSet) Set(name string, v any) {
	if ps.values == nil {
		ps.values = make(map[string]any)
	}
	if _, ok := ps.values[name]; !ok {
		ps.keys = append(ps.keys, name)
	}
	ps.values[name] = v
}

// Get returns the value stored under name.
func (ps ParameterSet) Get(name string) (any, bool) {
	v, ok := ps.values[name]
	return v, ok
}

// Float returns a scalar parameter as float64. Missing or non-scalar values yield NaN.
func (ps ParameterSet) Float(name string) float64 {
	switch v := ps.values[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return math.NaN()
	}
}

// Keys returns parameter names in insertion order.
func (ps ParameterSet) Keys() []string {
	out := make([]string, len(ps.keys))
	copy(out, ps.keys)
	return out
}

// Len returns the number of parameters.
func (ps ParameterSet) Len() int { return len(ps.keys) }

// Map returns a copy of the set as a plain map.
func (ps ParameterSet) Map() map[string]any {
	m := make(map[string]any, len(ps.keys))
	for _, k := range ps.keys {
		m[k] = ps.values[k]
	}
	return m
}

// Format renders a single value for display.
func Format(v any) string {
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%.4g", t)
	case int:
		return fmt.Sprintf("%d", t)
	case []float64:
		parts := make([]string, len(t))
		for i, x := range t {
			parts[i] = Format(x)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case [][]float64:
		rows := make([]string, len(t))
		for i, r := range t {
			rows[i] = Format(r)
		}
		return "[" + strings.Join(rows, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// String renders the set as "name=value" pairs in order.
func (ps ParameterSet) String() string {
	parts := make([]string, 0, len(ps.keys))
	for _, k := range ps.keys {
		parts = append(parts, k+"="+Format(ps.values[k]))
	}
	return strings.Join(parts, " ")
}

// Decode copies the set into a typed struct using `mapstructure` tags.
// Ints and floats convert into each other.
func Decode(ps ParameterSet, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnset:       true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "params: build decoder")
	}
	if err := dec.Decode(ps.Map()); err != nil {
		return errors.Wrap(err, "params: decode")
	}
	return nil
}

// Warning is a non-fatal validation message. The offending value has already
// been corrected when a Warning is produced.
type Warning string

func (w Warning) String() string { return string(w) }
