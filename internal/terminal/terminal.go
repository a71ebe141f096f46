// Package terminal renders distributions and experiments on a text terminal.
// Figures are saved as files.
package terminal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/peplxx/probability-explorer/internal/config"
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"github.com/peplxx/probability-explorer/internal/presenter"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

var panelTitles = [ui.NumPanels]string{"Formula", "Plot", "Properties"}

// Terminal is a ui.Surface writing to out. Control values come from Input.
type Terminal struct {
	ui.Input

	out  io.Writer
	dir  string
	plot config.Plot
	log  *logrus.Logger

	panel   int
	metrics [][]string
	names   map[string]int

	// Saved lists the files written for figures, in order.
	Saved []string
}

// New creates a terminal surface. An empty dir disables figure saving.
func New(out io.Writer, input ui.Input, dir string, plot config.Plot, log *logrus.Logger) *Terminal {
	if input == nil {
		input = ui.Input{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Terminal{
		Input: input,
		out:   out,
		dir:   dir,
		plot:  plot,
		log:   log,
		panel: ui.MainArea,
		names: map[string]int{},
	}
}

// ParseSet turns name=value pairs into control input.
func ParseSet(pairs []string) (ui.Input, error) {
	in := ui.Input{}
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Errorf("invalid --set %q, expected name=value", p)
		}
		in[name] = strings.TrimSpace(value)
	}
	return in, nil
}

func (t *Terminal) Panel(i int) ui.Writer     { return &panelWriter{t: t, panel: i} }
func (t *Terminal) Sidebar() ui.ControlReader { return t.Input }

func (t *Terminal) Header(text string)            { t.header(ui.MainArea, text) }
func (t *Terminal) Markdown(text string)          { t.markdown(ui.MainArea, text) }
func (t *Terminal) LaTeX(expr string)             { t.latex(ui.MainArea, expr) }
func (t *Terminal) Values(ps params.ParameterSet) { t.values(ui.MainArea, ps) }
func (t *Terminal) Metric(label, value string)    { t.metric(ui.MainArea, label, value) }
func (t *Terminal) Figure(f *figure.Figure) error { return t.figure(ui.MainArea, f) }
func (t *Terminal) Success(msg string)            { t.banner(ui.MainArea, color.Success.Style, "✔ ", msg) }
func (t *Terminal) Warning(msg string)            { t.banner(ui.MainArea, color.Warn.Style, "⚠ ", msg) }
func (t *Terminal) Error(msg string)              { t.banner(ui.MainArea, color.Danger.Style, "✖ ", msg) }

func (t *Terminal) Matrix(title string, m mat.Matrix, rows, cols []string) {
	t.matrix(ui.MainArea, title, m, rows, cols)
}

// Flush writes pending metrics. Call it after the render cycle.
func (t *Terminal) Flush() {
	if len(t.metrics) == 0 {
		return
	}
	t.table([]string{"Metric", "Value"}, t.metrics)
	t.metrics = nil
}

// enter flushes pending output and prints a panel heading when the panel changes.
func (t *Terminal) enter(panel int) {
	t.Flush()
	if panel == t.panel {
		return
	}
	t.panel = panel
	if panel >= 0 && panel < len(panelTitles) {
		fmt.Fprintln(t.out, color.Cyan.Sprint("── "+panelTitles[panel]+" ──"))
	}
}

func (t *Terminal) header(panel int, text string) {
	t.enter(panel)
	fmt.Fprintln(t.out, color.Bold.Sprint(text))
	fmt.Fprintln(t.out, strings.Repeat("=", len([]rune(text))))
}

func (t *Terminal) markdown(panel int, text string) {
	t.enter(panel)
	fmt.Fprintln(t.out, text)
}

func (t *Terminal) latex(panel int, expr string) {
	t.enter(panel)
	fmt.Fprintln(t.out, "    "+expr)
}

func (t *Terminal) values(panel int, ps params.ParameterSet) {
	t.enter(panel)
	rows := make([][]string, 0, ps.Len())
	for _, k := range ps.Keys() {
		v, _ := ps.Get(k)
		rows = append(rows, []string{k, params.Format(v)})
	}
	t.table([]string{"Parameter", "Value"}, rows)
}

// metric buffers consecutive metrics into one table.
func (t *Terminal) metric(panel int, label, value string) {
	if panel != t.panel || len(t.metrics) == 0 {
		t.enter(panel)
	}
	t.metrics = append(t.metrics, []string{label, value})
}

// matrix prints m as a table and, when saving is on, exports it as <title>.csv.
func (t *Terminal) matrix(panel int, title string, m mat.Matrix, rows, cols []string) {
	t.enter(panel)
	fmt.Fprintln(t.out, color.Bold.Sprint(title))
	r, c := m.Dims()
	header := make([]string, 0, c+1)
	header = append(header, "")
	for j := 0; j < c; j++ {
		header = append(header, labelAt(cols, j))
	}
	data := make([][]string, 0, r)
	for i := 0; i < r; i++ {
		row := make([]string, 0, c+1)
		row = append(row, labelAt(rows, i))
		for j := 0; j < c; j++ {
			row = append(row, fmt.Sprintf("%.3f", m.At(i, j)))
		}
		data = append(data, row)
	}
	t.table(header, data)

	if t.dir == "" {
		return
	}
	path := filepath.Join(t.dir, t.fileName(title)+".csv")
	err := os.MkdirAll(t.dir, 0o755)
	if err == nil {
		err = presenter.SaveDenseToCSV(m, path)
	}
	if err != nil {
		t.log.WithError(err).WithField("matrix", title).Warn("failed to save matrix")
		t.banner(panel, color.Danger.Style, "✖ ", "Error saving matrix: "+err.Error())
		return
	}
	t.Saved = append(t.Saved, path)
	fmt.Fprintln(t.out, "Saved "+path)
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func (t *Terminal) figure(panel int, f *figure.Figure) error {
	t.enter(panel)
	if t.dir == "" {
		fmt.Fprintf(t.out, "[figure: %s]\n", f.Title)
		return nil
	}
	paths, err := presenter.SaveFigure(f, t.dir, t.fileName(f.Title), t.plot.Width(), t.plot.Height(), t.plot.Format)
	if err != nil {
		t.log.WithError(err).WithField("figure", f.Title).Warn("failed to save figure")
		t.banner(panel, color.Danger.Style, "✖ ", "Error saving figure: "+err.Error())
		return err
	}
	t.Saved = append(t.Saved, paths...)
	for _, p := range paths {
		fmt.Fprintln(t.out, "Saved "+p)
	}
	return nil
}

// fileName makes figure names unique within one render.
func (t *Terminal) fileName(title string) string {
	name := presenter.FileName(title)
	t.names[name]++
	if n := t.names[name]; n > 1 {
		name += "_" + strconv.Itoa(n)
	}
	return name
}

func (t *Terminal) banner(panel int, style color.Style, icon, msg string) {
	t.enter(panel)
	fmt.Fprintln(t.out, style.Sprint(icon+msg))
}

func (t *Terminal) table(header []string, rows [][]string) {
	output := tablewriter.NewWriter(t.out)
	output.SetHeader(header)
	output.SetAutoWrapText(false)
	output.SetAlignment(tablewriter.ALIGN_LEFT)
	output.AppendBulk(rows)
	output.Render()
}

type panelWriter struct {
	t     *Terminal
	panel int
}

func (p *panelWriter) Header(text string)            { p.t.header(p.panel, text) }
func (p *panelWriter) Markdown(text string)          { p.t.markdown(p.panel, text) }
func (p *panelWriter) LaTeX(expr string)             { p.t.latex(p.panel, expr) }
func (p *panelWriter) Values(ps params.ParameterSet) { p.t.values(p.panel, ps) }
func (p *panelWriter) Metric(label, value string)    { p.t.metric(p.panel, label, value) }
func (p *panelWriter) Figure(f *figure.Figure) error { return p.t.figure(p.panel, f) }
func (p *panelWriter) Success(msg string)            { p.t.banner(p.panel, color.Success.Style, "✔ ", msg) }
func (p *panelWriter) Warning(msg string)            { p.t.banner(p.panel, color.Warn.Style, "⚠ ", msg) }
func (p *panelWriter) Error(msg string)              { p.t.banner(p.panel, color.Danger.Style, "✖ ", msg) }

func (p *panelWriter) Matrix(title string, m mat.Matrix, rows, cols []string) {
	p.t.matrix(p.panel, title, m, rows, cols)
}

var _ ui.Surface = (*Terminal)(nil)
