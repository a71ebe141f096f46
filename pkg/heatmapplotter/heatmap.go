package heatmapplotter

import (
	"fmt"
	"image/color"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// rasterCells is the grid size above which cells are drawn as an image
// instead of one rectangle per cell.
const rasterCells = 2500

// Heatmap is a filled 2-D density plot with a palette legend acting as a colour bar.
// Iso-lines between the colour levels are drawn on top, so the result reads as a
// filled contour plot.
type Heatmap struct {
	Plot    *plot.Plot
	HeatMap *plotter.HeatMap
	// Contour is nil for a constant grid.
	Contour *plotter.Contour
	Legend  plot.Legend
}

// MakeHeatmapPlot builds a heatmap of g with the given number of colour levels.
// label captions the colour bar ("Probability Density", "Probability").
func MakeHeatmapPlot(g plotter.GridXYZ, title, xlabel, ylabel, label string, levels int) *Heatmap {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	pal := palette.Rainbow(levels, palette.Blue, palette.Red, 1, 1, 1)
	heatmap := plotter.NewHeatMap(g, pal)
	c, r := g.Dims()
	heatmap.Rasterized = c*r > rasterCells
	p.Add(heatmap)

	var contour *plotter.Contour
	if heatmap.Max > heatmap.Min && levels > 1 {
		contour = plotter.NewContour(g, isoLevels(heatmap.Min, heatmap.Max, levels), nil)
		contour.LineStyles = []draw.LineStyle{{Color: color.Gray{Y: 60}, Width: vg.Points(0.4)}}
		p.Add(contour)
	}

	// Create a legend.
	l := plot.NewLegend()
	l.Add(label)
	thumbs := plotter.PaletteThumbnailers(pal)
	nthumbs := len(thumbs)
	for i := nthumbs - 1; i >= 0; i-- {
		t := thumbs[i]
		if i != 0 && i != nthumbs-1 && i%(nthumbs/4+1) != 0 {
			l.Add("", t)
			continue
		}
		val := heatmap.Min
		if nthumbs > 1 {
			val += (heatmap.Max - heatmap.Min) * float64(i) / float64(nthumbs-1)
		}
		l.Add(fmt.Sprintf("%.2g", val), t)
	}

	p.X.Padding = 0
	p.Y.Padding = 0

	return &Heatmap{Plot: p, HeatMap: heatmap, Contour: contour, Legend: l}
}

// isoLevels splits (min, max) into n equal bands and returns the n-1 inner edges.
func isoLevels(min, max float64, n int) []float64 {
	out := make([]float64, n-1)
	for k := range out {
		out[k] = min + (max-min)*float64(k+1)/float64(n)
	}
	return out
}

// Draw renders the legend on the right of dc and the plot in the remaining space.
func (h *Heatmap) Draw(dc draw.Canvas) {
	h.Legend.Top = true
	// Calculate the width of the legend.
	r := h.Legend.Rectangle(dc)
	legendWidth := r.Max.X - r.Min.X
	h.Legend.YOffs = -h.Plot.Title.TextStyle.FontExtents().Height // Adjust the legend down a little.

	h.Legend.Draw(dc)
	dc = draw.Crop(dc, 0, -legendWidth-vg.Millimeter, 0, 0) // Make space for the legend.
	h.Plot.Draw(dc)
}

// WriteTo draws the heatmap on a canvas of the given size and format
// (svg, png, pdf, ...) and writes it to w.
func (h *Heatmap) WriteTo(w io.Writer, width, height vg.Length, format string) (int64, error) {
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return 0, errors.Wrapf(err, "heatmap: canvas %q", format)
	}
	h.Draw(draw.New(c))
	n, err := c.WriteTo(w)
	return n, errors.Wrap(err, "heatmap: write")
}
