package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/peplxx/probability-explorer/internal/params"
)

// Input is a ControlReader over raw string input, as it arrives from a
// query string or the command line.
type Input map[string]string

func (v Input) Float(c params.Control) float64 {
	raw, ok := v[c.Name]
	if !ok {
		return c.Clamp(math.NaN())
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		f = math.NaN()
	}
	return c.Clamp(f)
}

func (v Input) Int(c params.Control) int {
	c.Integer = true
	return int(v.Float(c))
}

func (v Input) Choice(c params.Choice) string {
	return c.Resolve(v[c.Name])
}

func (v Input) Bool(name, _ string, def bool) bool {
	raw, ok := v[name]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		// HTML checkboxes submit "on".
		return raw == "on"
	}
	return b
}

func (v Input) Button(name, label string) bool {
	return v.Bool(name, label, false)
}
