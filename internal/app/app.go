// Package app is the navigation shell: it turns page and item selections
// into pipeline renders and experiment runs.
package app

import (
	"time"

	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/peplxx/probability-explorer/internal/experiment"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/pipeline"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Top-level pages.
const (
	PageContinuous  = "Continuous Distributions"
	PageDiscrete    = "Discrete Distributions"
	PageExperiments = "Experiments"
	PageAbout       = "About"
)

// Pages lists the pages in navigation order.
var Pages = []string{PageContinuous, PageDiscrete, PageExperiments, PageAbout}

// Control names used by the shell itself.
const (
	ControlPage       = "page"
	ControlItem       = "item"
	ControlAutoUpdate = "auto"
	ControlCalculate  = "calculate"
)

// ErrUnknownPage is returned for a page name outside Pages.
var ErrUnknownPage = errors.New("unknown page")

// App is the application state shared by every render cycle. It is read-only after New.
type App struct {
	Catalog  *distribution.Catalog
	Registry *experiment.Registry
	// AutoUpdate is the initial state of the auto-update checkbox.
	AutoUpdate bool

	log *logrus.Logger
}

// New creates the shell. A nil logger means the logrus standard logger.
func New(c *distribution.Catalog, r *experiment.Registry, autoUpdate bool, log *logrus.Logger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{Catalog: c, Registry: r, AutoUpdate: autoUpdate, log: log}
}

// PageFamily maps a distribution page to its catalog family.
func PageFamily(page string) (distribution.Family, bool) {
	switch page {
	case PageContinuous:
		return distribution.Continuous, true
	case PageDiscrete:
		return distribution.Discrete, true
	}
	return 0, false
}

// PageChoice is the navigation control.
func PageChoice() params.Choice {
	return params.Choice{Name: ControlPage, Label: "Navigation", Options: Pages}
}

// ItemChoice is the selector of the given page, or false for pages without items.
func (a *App) ItemChoice(page string) (params.Choice, bool) {
	if f, ok := PageFamily(page); ok {
		return params.Choice{Name: ControlItem, Label: "Select distribution type", Options: a.Catalog.Names(f)}, true
	}
	if page == PageExperiments {
		return params.Choice{Name: ControlItem, Label: "Select experiment", Options: a.Registry.Names()}, true
	}
	return params.Choice{}, false
}

// Serve runs one render cycle: it reads the page and item from the sidebar and
// renders the selection on s.
func (a *App) Serve(s ui.Surface) error {
	sidebar := s.Sidebar()
	page := sidebar.Choice(PageChoice())

	switch page {
	case PageContinuous, PageDiscrete:
		c, _ := a.ItemChoice(page)
		f, _ := PageFamily(page)
		return a.ShowDistribution(s, f, sidebar.Choice(c))
	case PageExperiments:
		c, _ := a.ItemChoice(page)
		return a.RunExperiment(s, sidebar.Choice(c))
	default:
		WriteAbout(s)
		return nil
	}
}

// ShowDistribution reads the parameters of a distribution and, when the
// trigger allows it, renders it through the pipeline.
func (a *App) ShowDistribution(s ui.Surface, f distribution.Family, name string) error {
	d, err := a.Catalog.Lookup(f, name)
	if err != nil {
		return err
	}
	sidebar := s.Sidebar()
	ps, warnings := d.Parameters(sidebar)
	trigger := pipeline.Trigger{
		AutoUpdate: sidebar.Bool(ControlAutoUpdate, "Auto-update plot", a.AutoUpdate),
		Calculate:  sidebar.Button(ControlCalculate, "Calculate Distribution"),
	}

	s.Header(d.Name() + " Distribution")
	if !trigger.ShouldRender() {
		s.Markdown("Press **Calculate Distribution** to draw the plot.")
		return nil
	}

	start := time.Now()
	renderErr := pipeline.Render(s, d, ps, warnings)
	entry := a.log.WithFields(logrus.Fields{
		"page":     f.String(),
		"item":     name,
		"params":   ps.String(),
		"duration": time.Since(start),
	})
	if renderErr != nil {
		entry.WithError(renderErr).Warn("distribution plot failed")
	} else {
		entry.Debug("distribution rendered")
	}
	return nil
}

// RunExperiment runs a registered experiment on s.
func (a *App) RunExperiment(s ui.Surface, name string) error {
	start := time.Now()
	err := a.Registry.Run(name, s)
	entry := a.log.WithFields(logrus.Fields{
		"page":     PageExperiments,
		"item":     name,
		"duration": time.Since(start),
	})
	if err != nil {
		if errors.Is(err, experiment.ErrUnknownExperiment) {
			return err
		}
		entry.WithError(err).Warn("experiment failed")
		s.Error(err.Error())
		return nil
	}
	entry.Debug("experiment finished")
	return nil
}

// Show renders a page programmatically. Unlike Serve, unknown names are errors.
func (a *App) Show(s ui.Surface, page, item string) error {
	switch page {
	case PageContinuous, PageDiscrete:
		f, _ := PageFamily(page)
		return a.ShowDistribution(s, f, item)
	case PageExperiments:
		return a.RunExperiment(s, item)
	case PageAbout:
		WriteAbout(s)
		return nil
	}
	return errors.Wrapf(ErrUnknownPage, "%q", page)
}
