package web

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/peplxx/probability-explorer/internal/config"
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Control kinds rendered in the sidebar form.
const (
	controlSlider   = "slider"
	controlSelect   = "select"
	controlCheckbox = "checkbox"
	controlButton   = "button"
)

// control is a sidebar widget, recorded when the page reads its value.
type control struct {
	Kind    string
	Name    string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Value   string
	Options []string
	Checked bool
}

type block struct {
	Kind ui.Kind
	HTML template.HTML
}

// page is the ui.Surface of one HTTP request. Reading a control both resolves
// its value from the query and adds the widget to the sidebar form.
type page struct {
	input ui.Input
	plot  config.Plot
	log   logrus.FieldLogger

	controls []control
	seen     map[string]bool

	main   []block
	panels [ui.NumPanels][]block
}

func newPage(input ui.Input, plot config.Plot, log logrus.FieldLogger) *page {
	return &page{input: input, plot: plot, log: log, seen: map[string]bool{}}
}

func (p *page) record(c control) {
	if p.seen[c.Name] {
		return
	}
	p.seen[c.Name] = true
	p.controls = append(p.controls, c)
}

func (p *page) Float(c params.Control) float64 {
	v := p.input.Float(c)
	p.record(control{
		Kind:  controlSlider,
		Name:  c.Name,
		Label: c.Label,
		Min:   c.Min,
		Max:   c.Max,
		Step:  c.Step,
		Value: params.Format(v),
	})
	return v
}

func (p *page) Int(c params.Control) int {
	c.Integer = true
	if c.Step <= 0 {
		c.Step = 1
	}
	return int(p.Float(c))
}

func (p *page) Choice(c params.Choice) string {
	v := p.input.Choice(c)
	p.record(control{Kind: controlSelect, Name: c.Name, Label: c.Label, Options: c.Options, Value: v})
	return v
}

func (p *page) Bool(name, label string, def bool) bool {
	v := p.input.Bool(name, label, def)
	p.record(control{Kind: controlCheckbox, Name: name, Label: label, Checked: v})
	return v
}

func (p *page) Button(name, label string) bool {
	v := p.input.Button(name, label)
	p.record(control{Kind: controlButton, Name: name, Label: label})
	return v
}

func (p *page) Panel(i int) ui.Writer     { return &panelWriter{p: p, panel: i} }
func (p *page) Sidebar() ui.ControlReader { return p }

func (p *page) Header(text string)            { p.add(ui.MainArea, header(text)) }
func (p *page) Markdown(text string)          { p.add(ui.MainArea, block{ui.KindMarkdown, markdown(text)}) }
func (p *page) LaTeX(expr string)             { p.add(ui.MainArea, latex(expr)) }
func (p *page) Values(ps params.ParameterSet) { p.add(ui.MainArea, values(ps)) }
func (p *page) Metric(label, value string)    { p.add(ui.MainArea, metric(label, value)) }
func (p *page) Figure(f *figure.Figure) error { return p.figure(ui.MainArea, f) }
func (p *page) Success(msg string)            { p.add(ui.MainArea, banner(ui.KindSuccess, msg)) }
func (p *page) Warning(msg string)            { p.add(ui.MainArea, banner(ui.KindWarning, msg)) }
func (p *page) Error(msg string)              { p.add(ui.MainArea, banner(ui.KindError, msg)) }

func (p *page) Matrix(title string, m mat.Matrix, rows, cols []string) {
	p.add(ui.MainArea, matrix(title, m, rows, cols))
}

func (p *page) add(panel int, b block) {
	if panel >= 0 && panel < len(p.panels) {
		p.panels[panel] = append(p.panels[panel], b)
		return
	}
	p.main = append(p.main, b)
}

// figure adds f to the panel as inline SVG. A failure is shown as an error banner.
func (p *page) figure(panel int, f *figure.Figure) error {
	b, err := p.svg(f)
	if err != nil {
		p.log.WithError(err).WithField("figure", f.Title).Warn("figure render failed")
		p.add(panel, banner(ui.KindError, "Error plotting distribution: "+err.Error()))
		return err
	}
	p.add(panel, b)
	return nil
}

func (p *page) svg(f *figure.Figure) (b block, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v", r)
		}
	}()

	var buf bytes.Buffer
	if err := f.Render(&buf, p.plot.Width(), p.plot.Height(), "svg"); err != nil {
		return block{}, err
	}
	svg := buf.String()
	// убираем XML-заголовок, SVG встраивается в HTML
	if i := strings.Index(svg, "<svg"); i > 0 {
		svg = svg[i:]
	}
	return block{ui.KindFigure, template.HTML(`<figure class="plot">` + svg + `</figure>`)}, nil
}

func header(text string) block {
	return block{ui.KindHeader, template.HTML("<h2>" + html.EscapeString(text) + "</h2>")}
}

func latex(expr string) block {
	return block{ui.KindLaTeX, template.HTML(`<div class="latex">\[` + html.EscapeString(expr) + `\]</div>`)}
}

func values(ps params.ParameterSet) block {
	var sb strings.Builder
	sb.WriteString(`<table class="values">`)
	for _, k := range ps.Keys() {
		v, _ := ps.Get(k)
		fmt.Fprintf(&sb, "<tr><th>%s</th><td>%s</td></tr>", html.EscapeString(k), html.EscapeString(params.Format(v)))
	}
	sb.WriteString("</table>")
	return block{ui.KindValues, template.HTML(sb.String())}
}

func metric(label, value string) block {
	return block{ui.KindMetric, template.HTML(fmt.Sprintf(
		`<div class="metric"><span class="label">%s</span><span class="value">%s</span></div>`,
		html.EscapeString(label), html.EscapeString(value)))}
}

func matrix(title string, m mat.Matrix, rows, cols []string) block {
	var sb strings.Builder
	sb.WriteString(`<table class="values matrix"><caption>` + html.EscapeString(title) + `</caption><tr><th></th>`)
	r, c := m.Dims()
	for j := 0; j < c; j++ {
		sb.WriteString("<th>" + html.EscapeString(labelAt(cols, j)) + "</th>")
	}
	sb.WriteString("</tr>")
	for i := 0; i < r; i++ {
		sb.WriteString("<tr><th>" + html.EscapeString(labelAt(rows, i)) + "</th>")
		for j := 0; j < c; j++ {
			fmt.Fprintf(&sb, "<td>%.3f</td>", m.At(i, j))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return block{ui.KindMatrix, template.HTML(sb.String())}
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func banner(kind ui.Kind, msg string) block {
	return block{kind, template.HTML(`<div class="banner ` + string(kind) + `">` + html.EscapeString(msg) + `</div>`)}
}

type panelWriter struct {
	p     *page
	panel int
}

func (w *panelWriter) Header(text string)            { w.p.add(w.panel, header(text)) }
func (w *panelWriter) Markdown(text string)          { w.p.add(w.panel, block{ui.KindMarkdown, markdown(text)}) }
func (w *panelWriter) LaTeX(expr string)             { w.p.add(w.panel, latex(expr)) }
func (w *panelWriter) Values(ps params.ParameterSet) { w.p.add(w.panel, values(ps)) }
func (w *panelWriter) Metric(label, value string)    { w.p.add(w.panel, metric(label, value)) }
func (w *panelWriter) Figure(f *figure.Figure) error { return w.p.figure(w.panel, f) }
func (w *panelWriter) Success(msg string)            { w.p.add(w.panel, banner(ui.KindSuccess, msg)) }
func (w *panelWriter) Warning(msg string)            { w.p.add(w.panel, banner(ui.KindWarning, msg)) }
func (w *panelWriter) Error(msg string)              { w.p.add(w.panel, banner(ui.KindError, msg)) }

func (w *panelWriter) Matrix(title string, m mat.Matrix, rows, cols []string) {
	w.p.add(w.panel, matrix(title, m, rows, cols))
}

var _ ui.Surface = (*page)(nil)
