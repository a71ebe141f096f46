// Package pipeline renders a distribution onto a UI surface.
package pipeline

import (
	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/pkg/errors"
)

// SuccessMessage is shown under a plot that rendered.
const SuccessMessage = "Distribution calculated!"

// Trigger decides whether a render cycle draws the distribution.
type Trigger struct {
	// AutoUpdate renders on every change of a control.
	AutoUpdate bool
	// Calculate is set when the calculate button was pressed in this cycle.
	Calculate bool
}

// ShouldRender reports whether the distribution is drawn in this cycle.
func (t Trigger) ShouldRender() bool {
	return t.AutoUpdate || t.Calculate
}

// Render writes, in order, the formula and parameter values, the plot and the
// properties of d. A plot failure, including a panic, becomes an error banner
// and the remaining panels are still written. The success banner follows only
// a figure the surface managed to draw. The returned error is the plot or
// figure failure, for logging.
func Render(s ui.Surface, d distribution.Distribution, ps params.ParameterSet, warnings []params.Warning) error {
	for _, w := range warnings {
		s.Warning(w.String())
	}

	formula := s.Panel(ui.PanelFormula)
	formula.Markdown("Distribution Formula:")
	formula.LaTeX(d.Formula())
	formula.Markdown("Key Parameters:")
	formula.Values(ps)

	plotPanel := s.Panel(ui.PanelPlot)
	plotPanel.Markdown("Distribution Plot:")
	f, err := plot(d, ps)
	if err != nil {
		plotPanel.Error("Error plotting distribution: " + err.Error())
	} else if err = plotPanel.Figure(f); err == nil {
		plotPanel.Success(SuccessMessage)
	}

	distribution.WriteProperties(s.Panel(ui.PanelProperties), d)
	return err
}

func plot(d distribution.Distribution, ps params.ParameterSet) (f *figure.Figure, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, errors.Errorf("%s: %v", d.Name(), r)
		}
	}()
	f, err = d.Plot(ps)
	if err != nil {
		return nil, err
	}
	if f == nil || f.Empty() {
		return nil, errors.Errorf("%s: nothing to plot", d.Name())
	}
	return f, nil
}
