// Package figure holds plot data produced by distributions and experiments
// and turns it into gonum plots.
package figure

import (
	"image/color"
	"io"
	"math"

	"github.com/peplxx/probability-explorer/pkg/heatmapplotter"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ColorLevels is the number of palette levels used for 2-D densities.
const ColorLevels = 20

// Series is a polyline. Non-finite points are kept in the data and skipped when drawn.
type Series struct {
	Label  string
	Xs, Ys []float64
	Color  int // index into the plotutil palette
	Dashed bool
}

// Bars is a bar chart. Bar i is drawn at XMin+i.
type Bars struct {
	Label  string
	XMin   float64
	Values []float64
	Color  int
}

// Scatter is a set of points.
type Scatter struct {
	Label  string
	Xs, Ys []float64
	Color  int
}

// Hist is a histogram of raw samples.
type Hist struct {
	Label     string
	Values    []float64
	Bins      int
	Normalize bool
	Color     int
}

// VLine marks a position on the x axis across the whole plot.
type VLine struct {
	Label string
	X     float64
	Color int
}

// Figure is a plot artifact: the computed data plus axis decoration.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	Lines    []Series
	Bars     []Bars
	Scatters []Scatter
	Hists    []Hist
	VLines   []VLine

	// Grid switches the figure to a filled heatmap with a colour bar.
	Grid          *heatmapplotter.Grid
	ColorBarLabel string

	// NominalX/NominalY replace numeric ticks with category names at 0..n-1.
	NominalX []string
	NominalY []string
	// EqualAxes keeps one unit the same length on both axes.
	EqualAxes bool
}

// New creates an empty figure.
func New(title, xlabel, ylabel string) *Figure {
	return &Figure{Title: title, XLabel: xlabel, YLabel: ylabel}
}

// Empty reports whether the figure has nothing to draw.
func (f *Figure) Empty() bool {
	return f.Grid == nil && len(f.Lines)+len(f.Bars)+len(f.Scatters)+len(f.Hists) == 0
}

// Plot builds the gonum plot for a non-grid figure.
func (f *Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Add(plotter.NewGrid())

	for _, h := range f.Hists {
		vals := finite(h.Values)
		if len(vals) == 0 {
			continue
		}
		bins := h.Bins
		if bins <= 0 {
			bins = 30
		}
		hist, err := plotter.NewHist(plotter.Values(vals), bins)
		if err != nil {
			return nil, errors.Wrapf(err, "figure: histogram %q", h.Label)
		}
		if h.Normalize {
			hist.Normalize(1)
		}
		hist.FillColor = translucent(plotutil.Color(h.Color))
		hist.LineStyle.Width = vg.Points(0.5)
		p.Add(hist)
		addLegend(p, h.Label, hist)
	}

	for _, b := range f.Bars {
		bars, err := plotter.NewBarChart(plotter.Values(b.Values), barWidth(len(b.Values)))
		if err != nil {
			return nil, errors.Wrapf(err, "figure: bars %q", b.Label)
		}
		bars.XMin = b.XMin
		bars.Color = plotutil.Color(b.Color)
		bars.LineStyle.Width = vg.Points(0.5)
		p.Add(bars)
		addLegend(p, b.Label, bars)
	}

	for _, s := range f.Lines {
		pts := finiteXYs(s.Xs, s.Ys)
		if len(pts) == 0 {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "figure: line %q", s.Label)
		}
		l.Color = plotutil.Color(s.Color)
		l.Width = vg.Points(1.5)
		if s.Dashed {
			l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(l)
		addLegend(p, s.Label, l)
	}

	for _, s := range f.Scatters {
		pts := finiteXYs(s.Xs, s.Ys)
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "figure: scatter %q", s.Label)
		}
		sc.GlyphStyle.Color = plotutil.Color(s.Color)
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		addLegend(p, s.Label, sc)
	}

	// Vertical markers span the y range of everything added so far.
	for _, v := range f.VLines {
		if math.IsNaN(v.X) || math.IsInf(v.X, 0) {
			continue
		}
		l, err := plotter.NewLine(plotter.XYs{{X: v.X, Y: p.Y.Min}, {X: v.X, Y: p.Y.Max}})
		if err != nil {
			return nil, errors.Wrapf(err, "figure: marker %q", v.Label)
		}
		l.Color = plotutil.Color(v.Color)
		l.Width = vg.Points(1.5)
		l.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(l)
		addLegend(p, v.Label, l)
	}

	if len(f.NominalX) > 0 {
		p.NominalX(f.NominalX...)
	}
	if len(f.NominalY) > 0 {
		p.NominalY(f.NominalY...)
	}
	if f.EqualAxes {
		lo := math.Min(p.X.Min, p.Y.Min)
		hi := math.Max(p.X.Max, p.Y.Max)
		p.X.Min, p.Y.Min = lo, lo
		p.X.Max, p.Y.Max = hi, hi
	}
	p.Legend.Top = true

	return p, nil
}

// Render draws the figure in the given format (svg, png, pdf, ...) and writes it to w.
func (f *Figure) Render(w io.Writer, width, height vg.Length, format string) error {
	if f.Grid != nil {
		h := heatmapplotter.MakeHeatmapPlot(*f.Grid, f.Title, f.XLabel, f.YLabel, f.ColorBarLabel, ColorLevels)
		_, err := h.WriteTo(w, width, height, format)
		return err
	}

	p, err := f.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return errors.Wrapf(err, "figure: canvas %q", format)
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "figure: write")
}

func addLegend(p *plot.Plot, label string, thumb plot.Thumbnailer) {
	if label != "" {
		p.Legend.Add(label, thumb)
	}
}

func barWidth(n int) vg.Length {
	w := 300 / float64(max(n, 1))
	return vg.Points(math.Max(2, math.Min(20, w)))
}

func translucent(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 128}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finite(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if isFinite(v) {
			out = append(out, v)
		}
	}
	return out
}

func finiteXYs(xs, ys []float64) plotter.XYs {
	n := min(len(xs), len(ys))
	pts := make(plotter.XYs, 0, n)
	for i := range n {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}
	return pts
}
