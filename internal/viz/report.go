package viz

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/snowsim/internal/dataset"
)

// HTMLReport renders a self-contained HTML page with binned histograms for
// each numeric column, a color count chart, and a size-vs-motion scatter,
// each split by label.
func HTMLReport(d *dataset.Dataset, path string) error {
	page := components.NewPage()
	page.PageTitle = "snow objects"

	for _, column := range []string{"size", "roughness", "motion"} {
		page.AddCharts(columnHistogram(d, column, 30))
	}
	page.AddCharts(colorCounts(d))
	page.AddCharts(featureScatter(d, "motion", "size"))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}
	return nil
}

// columnHistogram bins one numeric column over its full range and adds one
// bar series per label.
func columnHistogram(d *dataset.Dataset, column string, bins int) *charts.Bar {
	all := d.Column(column)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range all {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(all) == 0 || lo == hi {
		lo, hi = 0, 1
	}
	width := (hi - lo) / float64(bins)

	edges := make([]string, bins)
	for i := range edges {
		edges[i] = fmt.Sprintf("%.2f", lo+width*float64(i))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: column, Subtitle: fmt.Sprintf("rows=%d bins=%d", len(all), bins)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(edges)

	for _, label := range sortedLabels(d) {
		counts := make([]int, bins)
		for _, v := range d.Filter(label).Column(column) {
			b := int((v - lo) / width)
			if b >= bins {
				b = bins - 1
			}
			if b < 0 {
				b = 0
			}
			counts[b]++
		}
		data := make([]opts.BarData, bins)
		for i, n := range counts {
			data[i] = opts.BarData{Value: n}
		}
		bar.AddSeries(label, data)
	}
	return bar
}

// colorCounts charts how often each color occurs within each label.
func colorCounts(d *dataset.Dataset) *charts.Bar {
	colorSet := make(map[string]bool)
	for _, o := range d.Objects {
		colorSet[o.Color] = true
	}
	colors := make([]string, 0, len(colorSet))
	for c := range colorSet {
		colors = append(colors, c)
	}
	sort.Strings(colors)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "color"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(colors)

	for _, label := range sortedLabels(d) {
		counts := make(map[string]int)
		for _, o := range d.Filter(label).Objects {
			counts[o.Color]++
		}
		data := make([]opts.BarData, len(colors))
		for i, c := range colors {
			data[i] = opts.BarData{Value: counts[c]}
		}
		bar.AddSeries(label, data)
	}
	return bar
}

// featureScatter plots yColumn against xColumn with one series per label.
func featureScatter(d *dataset.Dataset, xColumn, yColumn string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s vs %s", yColumn, xColumn)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	for _, label := range sortedLabels(d) {
		sub := d.Filter(label)
		xs, ys := sub.Column(xColumn), sub.Column(yColumn)
		data := make([]opts.ScatterData, len(xs))
		for i := range xs {
			data[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i]}}
		}
		scatter.AddSeries(label, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	}
	return scatter
}
