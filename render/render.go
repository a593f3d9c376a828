// Package render draws comparison plots of original and transformed signals.
// PNG, SVG and PDF output goes through gonum/plot; an .html extension
// produces an interactive go-echarts line chart instead.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/signalkit/signalkit"
)

// Labeled pairs a series with its legend label.
type Labeled struct {
	Label  string
	Series signalkit.Series
}

// Figure dimensions match a 10 x 5.5 inch landscape layout.
const (
	figWidth  = 10 * vg.Inch
	figHeight = 5.5 * vg.Inch
)

var dashPatterns = [][]vg.Length{
	{vg.Points(6), vg.Points(4)}, // dashed
	{vg.Points(1), vg.Points(3)}, // dotted
	{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)}, // dash-dot
}

// Comparison plots the original series against any number of transformed
// series and writes the figure to path. The original is drawn solid, the
// transformed series dashed or dotted.
func Comparison(title, path string, original signalkit.Series, others []Labeled) error {
	if err := original.Validate(); err != nil {
		return fmt.Errorf("render %q: %w", path, err)
	}
	for _, o := range others {
		if err := o.Series.Validate(); err != nil {
			return fmt.Errorf("render %q (%s): %w", path, o.Label, err)
		}
	}

	if filepath.Ext(path) == ".html" {
		return renderHTML(title, path, original, others)
	}
	return renderImage(title, path, original, others)
}

func renderImage(title, path string, original signalkit.Series, others []Labeled) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time [s]"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	orig, err := plotter.NewLine(seriesXYs(original))
	if err != nil {
		return err
	}
	orig.LineStyle.Width = vg.Points(1.8)
	orig.LineStyle.Color = plotutil.Color(0)
	p.Add(orig)
	p.Legend.Add("Original", orig)

	for i, o := range others {
		l, err := plotter.NewLine(seriesXYs(o.Series))
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = plotutil.Color(i + 1)
		l.LineStyle.Dashes = dashPatterns[i%len(dashPatterns)]
		p.Add(l)
		p.Legend.Add(o.Label, l)
	}

	return p.Save(figWidth, figHeight, path)
}

func renderHTML(title, path string, original signalkit.Series, others []Labeled) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time [s]"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Amplitude"}),
	)

	line.SetXAxis(timeLabels(original)).
		AddSeries("Original", lineData(original))
	for _, o := range others {
		line.AddSeries(o.Label, lineData(o.Series))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}

func seriesXYs(s signalkit.Series) plotter.XYs {
	xys := make(plotter.XYs, s.Len())
	for i := range xys {
		xys[i].X = s.T[i]
		xys[i].Y = s.Y[i]
	}
	return xys
}

func timeLabels(s signalkit.Series) []string {
	labels := make([]string, s.Len())
	for i, t := range s.T {
		labels[i] = strconv.FormatFloat(t, 'g', 6, 64)
	}
	return labels
}

func lineData(s signalkit.Series) []opts.LineData {
	data := make([]opts.LineData, s.Len())
	for i, y := range s.Y {
		data[i] = opts.LineData{Value: y}
	}
	return data
}
