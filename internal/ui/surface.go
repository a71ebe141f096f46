// Package ui defines the surface that distributions, experiments and the
// pipeline draw on. Hosts (web, terminal, tests) provide implementations.
package ui

import (
	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/peplxx/probability-explorer/internal/params"
	"gonum.org/v1/gonum/mat"
)

// Fixed panels of a distribution page.
const (
	PanelFormula = iota
	PanelPlot
	PanelProperties

	NumPanels
)

// ControlReader reads control values. Readers never fail: missing or invalid
// input falls back to the control default.
type ControlReader interface {
	Float(c params.Control) float64
	Int(c params.Control) int
	Choice(c params.Choice) string
	Bool(name, label string, def bool) bool
	Button(name, label string) bool
}

// Writer receives rendered output.
type Writer interface {
	Header(text string)
	Markdown(text string)
	LaTeX(expr string)
	Values(ps params.ParameterSet)
	Metric(label, value string)
	// Matrix writes a labelled matrix. rows and cols name its rows and columns.
	Matrix(title string, m mat.Matrix, rows, cols []string)
	// Figure draws f. A failed figure is reported on the surface and returned.
	Figure(f *figure.Figure) error
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Surface is the whole UI of one render cycle. Its own Writer methods write
// to the main area.
type Surface interface {
	ControlReader
	Writer
	Panel(i int) Writer
	Sidebar() ControlReader
}
