package ui

import (
	"fmt"
	"strings"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"gonum.org/v1/gonum/mat"
)

// Kind tags a recorded block.
type Kind string

const (
	KindHeader   Kind = "header"
	KindMarkdown Kind = "markdown"
	KindLaTeX    Kind = "latex"
	KindValues   Kind = "values"
	KindMetric   Kind = "metric"
	KindMatrix   Kind = "matrix"
	KindFigure   Kind = "figure"
	KindSuccess  Kind = "success"
	KindWarning  Kind = "warning"
	KindError    Kind = "error"
)

// MainArea is the panel index of blocks written outside any panel.
const MainArea = -1

// Block is one piece of recorded output.
type Block struct {
	Panel  int
	Kind   Kind
	Text   string
	Figure *figure.Figure
	Matrix mat.Matrix
}

// Recorder is an in-memory Surface. Control values come from Input, output is
// appended to Blocks in write order.
type Recorder struct {
	Input
	Blocks []Block

	// FigureErr makes every Figure call fail with this error.
	FigureErr error
}

// NewRecorder creates a Recorder reading the given raw control values.
func NewRecorder(input map[string]string) *Recorder {
	if input == nil {
		input = map[string]string{}
	}
	return &Recorder{Input: Input(input)}
}

func (r *Recorder) Panel(i int) Writer { return &panelRecorder{r: r, panel: i} }

func (r *Recorder) Sidebar() ControlReader { return r.Input }

func (r *Recorder) Header(text string)   { r.add(MainArea, KindHeader, text, nil) }
func (r *Recorder) Markdown(text string) { r.add(MainArea, KindMarkdown, text, nil) }
func (r *Recorder) LaTeX(expr string)    { r.add(MainArea, KindLaTeX, expr, nil) }
func (r *Recorder) Values(ps params.ParameterSet) {
	r.add(MainArea, KindValues, ps.String(), nil)
}
func (r *Recorder) Metric(label, value string) {
	r.add(MainArea, KindMetric, label+": "+value, nil)
}
func (r *Recorder) Matrix(title string, m mat.Matrix, rows, cols []string) {
	r.matrix(MainArea, title, m)
}
func (r *Recorder) Figure(f *figure.Figure) error { return r.figure(MainArea, f) }
func (r *Recorder) Success(msg string)            { r.add(MainArea, KindSuccess, msg, nil) }
func (r *Recorder) Warning(msg string)            { r.add(MainArea, KindWarning, msg, nil) }
func (r *Recorder) Error(msg string)              { r.add(MainArea, KindError, msg, nil) }

func (r *Recorder) add(panel int, kind Kind, text string, f *figure.Figure) {
	r.Blocks = append(r.Blocks, Block{Panel: panel, Kind: kind, Text: text, Figure: f})
}

func (r *Recorder) matrix(panel int, title string, m mat.Matrix) {
	r.Blocks = append(r.Blocks, Block{Panel: panel, Kind: KindMatrix, Text: title, Matrix: mat.DenseCopyOf(m)})
}

func (r *Recorder) figure(panel int, f *figure.Figure) error {
	if r.FigureErr != nil {
		r.add(panel, KindError, "Error plotting distribution: "+r.FigureErr.Error(), nil)
		return r.FigureErr
	}
	r.add(panel, KindFigure, f.Title, f)
	return nil
}

// Kinds lists the kinds of all blocks in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Blocks))
	for i, b := range r.Blocks {
		out[i] = b.Kind
	}
	return out
}

// Find returns the blocks of the given kind.
func (r *Recorder) Find(kind Kind) []Block {
	var out []Block
	for _, b := range r.Blocks {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Metrics returns recorded metrics keyed by label.
func (r *Recorder) Metrics() map[string]string {
	out := map[string]string{}
	for _, b := range r.Find(KindMetric) {
		label, value, _ := strings.Cut(b.Text, ": ")
		out[label] = value
	}
	return out
}

// Text joins the text of every block, one per line.
func (r *Recorder) Text() string {
	var sb strings.Builder
	for _, b := range r.Blocks {
		fmt.Fprintf(&sb, "[%d %s] %s\n", b.Panel, b.Kind, b.Text)
	}
	return sb.String()
}

type panelRecorder struct {
	r     *Recorder
	panel int
}

func (p *panelRecorder) Header(text string)   { p.r.add(p.panel, KindHeader, text, nil) }
func (p *panelRecorder) Markdown(text string) { p.r.add(p.panel, KindMarkdown, text, nil) }
func (p *panelRecorder) LaTeX(expr string)    { p.r.add(p.panel, KindLaTeX, expr, nil) }
func (p *panelRecorder) Values(ps params.ParameterSet) {
	p.r.add(p.panel, KindValues, ps.String(), nil)
}
func (p *panelRecorder) Metric(label, value string) {
	p.r.add(p.panel, KindMetric, label+": "+value, nil)
}
func (p *panelRecorder) Matrix(title string, m mat.Matrix, rows, cols []string) {
	p.r.matrix(p.panel, title, m)
}
func (p *panelRecorder) Figure(f *figure.Figure) error { return p.r.figure(p.panel, f) }
func (p *panelRecorder) Success(msg string)            { p.r.add(p.panel, KindSuccess, msg, nil) }
func (p *panelRecorder) Warning(msg string)            { p.r.add(p.panel, KindWarning, msg, nil) }
func (p *panelRecorder) Error(msg string)              { p.r.add(p.panel, KindError, msg, nil) }

var _ Surface = (*Recorder)(nil)
