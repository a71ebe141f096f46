package params

import "math"

// Control describes a numeric slider.
type Control struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Default float64
	Step    float64
	Integer bool
}

// Slider builds a float control.
func Slider(name, label string, min, max, def, step float64) Control {
	return Control{Name: name, Label: label, Min: min, Max: max, Default: def, Step: step}
}

// IntSlider builds an integer control with step 1.
func IntSlider(name, label string, min, max, def int) Control {
	return Control{
		Name:    name,
		Label:   label,
		Min:     float64(min),
		Max:     float64(max),
		Default: float64(def),
		Step:    1,
		Integer: true,
	}
}

// Clamp brings v into the control's range. NaN falls back to the default,
// which is clamped as well so a dynamic range never yields an out-of-range value.
func (c Control) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		v = c.Default
	}
	if c.Integer {
		v = math.Round(v)
	}
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	return v
}

// Choice describes a select box.
type Choice struct {
	Name    string
	Label   string
	Options []string
	Default string
}

// Resolve returns v when it is one of the options, otherwise the default
// (or the first option when no default is set).
func (c Choice) Resolve(v string) string {
	for _, o := range c.Options {
		if o == v {
			return v
		}
	}
	if c.Default != "" {
		return c.Default
	}
	if len(c.Options) > 0 {
		return c.Options[0]
	}
	return ""
}
