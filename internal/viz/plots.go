// Package viz provides no-fuss plotting helpers for inspecting a generated
// snow-object table: grouped PNG histograms and scatter plots via gonum/plot,
// and a single-file HTML report via go-echarts. Plots are for visual
// inspection only and are not required for the generated file's correctness.
package viz

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/snowsim/internal/dataset"
)

// groupColors assigns each label a stable semi-transparent fill so
// overlapping histogram bars stay readable.
var groupColors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 160},
	{R: 255, G: 127, B: 14, A: 160},
	{R: 44, G: 160, B: 44, A: 160},
	{R: 214, G: 39, B: 40, A: 160},
}

// HistogramOptions configures a grouped histogram. Zero values pick
// defaults: 30 bins, the column name as title and x-axis label.
type HistogramOptions struct {
	Bins   int
	Title  string
	XLabel string
}

// Histogram writes a PNG histogram of one numeric column, with one
// overlaid series per label.
func Histogram(d *dataset.Dataset, column, path string, o HistogramOptions) error {
	if o.Bins == 0 {
		o.Bins = 30
	}
	if o.Title == "" {
		o.Title = column
	}
	if o.XLabel == "" {
		o.XLabel = column
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = "count"

	for i, label := range sortedLabels(d) {
		vals := d.Filter(label).Column(column)
		if vals == nil {
			return fmt.Errorf("histogram: unknown column %q", column)
		}
		if len(vals) == 0 {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(vals), o.Bins)
		if err != nil {
			return fmt.Errorf("histogram %s/%s: %w", column, label, err)
		}
		c := groupColors[i%len(groupColors)]
		h.FillColor = c
		h.LineStyle.Color = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save histogram %s: %w", path, err)
	}
	return nil
}

// ScatterOptions configures a 2D scatter plot.
type ScatterOptions struct {
	Title  string
	XLabel string
	YLabel string
}

// Scatter writes a PNG scatter of two numeric columns, one colored series
// per label.
func Scatter(d *dataset.Dataset, xColumn, yColumn, path string, o ScatterOptions) error {
	if o.Title == "" {
		o.Title = fmt.Sprintf("%s vs %s", yColumn, xColumn)
	}
	if o.XLabel == "" {
		o.XLabel = xColumn
	}
	if o.YLabel == "" {
		o.YLabel = yColumn
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel

	for i, label := range sortedLabels(d) {
		sub := d.Filter(label)
		xs, ys := sub.Column(xColumn), sub.Column(yColumn)
		if xs == nil || ys == nil {
			return fmt.Errorf("scatter: unknown column %q or %q", xColumn, yColumn)
		}
		pts := make(plotter.XYs, len(xs))
		for j := range xs {
			pts[j] = plotter.XY{X: xs[j], Y: ys[j]}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("scatter %s: %w", label, err)
		}
		c := groupColors[i%len(groupColors)]
		s.GlyphStyle.Color = c
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s)
		p.Legend.Add(label, s)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save scatter %s: %w", path, err)
	}
	return nil
}

func sortedLabels(d *dataset.Dataset) []string {
	counts := d.LabelCounts()
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
