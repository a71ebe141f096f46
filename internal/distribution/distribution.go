// Package distribution contains the closed set of probability distributions
// shown by the explorer and the catalog that names them.
package distribution

import (
	"fmt"
	"strings"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
)

// Family partitions the catalog.
type Family int

const (
	Continuous Family = iota
	Discrete
)

func (f Family) String() string {
	switch f {
	case Continuous:
		return "Continuous"
	case Discrete:
		return "Discrete"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Distribution is one catalog entry. Entries are stateless: every call
// receives the parameters it works on.
type Distribution interface {
	Name() string
	Family() Family
	// Parameters reads the controls and returns the current parameters.
	// Invalid combinations are corrected and reported as warnings.
	Parameters(r ui.ControlReader) (params.ParameterSet, []params.Warning)
	// Plot evaluates the PDF/PMF for ps.
	Plot(ps params.ParameterSet) (*figure.Figure, error)
	// Formula is a LaTeX expression of the density, independent of parameters.
	Formula() string
	Properties() Properties
}

// Link is a reference shown under the properties text.
type Link struct {
	Title string
	URL   string
}

// Formula is an extra LaTeX expression with a lead-in sentence.
type Formula struct {
	Caption string
	LaTeX   string
}

// Properties is the static description of a distribution.
type Properties struct {
	Summary      string
	Parameters   []string
	Key          []string
	Formulas     []Formula
	Where        []string
	Applications []string
	Links        []Link
}

// WriteProperties writes the description of d, the formula again and the reference links.
func WriteProperties(w ui.Writer, d Distribution) {
	p := d.Properties()

	var sb strings.Builder
	if p.Summary != "" {
		sb.WriteString(p.Summary)
		sb.WriteString("\n\n")
	}
	if len(p.Parameters) > 0 {
		sb.WriteString("Parameters:\n")
		bullets(&sb, p.Parameters)
		sb.WriteString("\n")
	}
	sb.WriteString("Key Properties:\n")
	bullets(&sb, p.Key)
	w.Markdown(sb.String())

	kind := "probability density function (PDF)"
	if d.Family() == Discrete {
		kind = "probability mass function (PMF)"
	}
	w.Markdown(fmt.Sprintf("The %s is given by:", kind))
	w.LaTeX(d.Formula())

	for _, f := range p.Formulas {
		w.Markdown(f.Caption)
		w.LaTeX(f.LaTeX)
	}

	sb.Reset()
	if len(p.Where) > 0 {
		sb.WriteString("where:\n")
		bullets(&sb, p.Where)
		sb.WriteString("\n")
	}
	if len(p.Applications) > 0 {
		sb.WriteString("Common applications:\n")
		bullets(&sb, p.Applications)
		sb.WriteString("\n")
	}
	if len(p.Links) > 0 {
		sb.WriteString("Important links:\n")
		for _, l := range p.Links {
			fmt.Fprintf(&sb, "- [**%s**](%s)\n", l.Title, l.URL)
		}
	}
	if sb.Len() > 0 {
		w.Markdown(sb.String())
	}
}

func bullets(sb *strings.Builder, items []string) {
	for _, it := range items {
		sb.WriteString("- ")
		sb.WriteString(it)
		sb.WriteString("\n")
	}
}

// wikiLinks returns the usual trio of Wikipedia sections for an article.
func wikiLinks(article, applications string) []Link {
	base := "https://en.wikipedia.org/wiki/" + article
	return []Link{
		{Title: "Properties", URL: base + "#Properties"},
		{Title: "Applications", URL: base + "#" + applications},
		{Title: "Relationship to other distributions", URL: base + "#Related_distributions"},
	}
}

// densityFigure is a single PDF line.
func densityFigure(title string, xs, ys []float64) *figure.Figure {
	f := figure.New(title, "x", "Probability Density")
	f.Lines = []figure.Series{{Xs: xs, Ys: ys}}
	return f
}

// massFigure is a PMF bar chart over consecutive integers starting at lo.
func massFigure(title, xlabel string, lo int, ys []float64) *figure.Figure {
	f := figure.New(title, xlabel, "Probability")
	f.Bars = []figure.Bars{{XMin: float64(lo), Values: ys}}
	return f
}

func evaluate(xs []float64, pdf func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = pdf(x)
	}
	return ys
}
