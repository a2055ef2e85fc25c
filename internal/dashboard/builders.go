package dashboard

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// SeriesData is a single numeric value in a chart series; int and float64
// both map onto the echarts data types.
type SeriesData any

// BarSeries defines one bar chart series.
type BarSeries struct {
	Name  string
	Data  []SeriesData
	Color string // Optional, palette order if empty.
	Stack string // Optional, stack grouping.
}

// LineSeries defines one line chart series.
type LineSeries struct {
	Name  string
	Data  []SeriesData
	Color string
}

// BuildBarChart constructs a themed bar chart with one x-axis label per data
// point and the given y-axis label.
func BuildBarChart(c *ChartOpts, labels []string, series []BarSeries, yAxisLabel string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(c.Init()),
		charts.WithTooltipOpts(c.Tooltip()),
		charts.WithXAxisOpts(c.XAxis("")),
		charts.WithYAxisOpts(c.YAxis(yAxisLabel)),
		charts.WithLegendOpts(c.Legend()),
	)

	bar.SetXAxis(labels)

	for _, s := range series {
		data := make([]opts.BarData, len(s.Data))
		for i, v := range s.Data {
			data[i] = opts.BarData{Value: v}
		}

		var seriesOpts []charts.SeriesOpts

		if s.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}

		if s.Stack != "" {
			seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{Stack: s.Stack}))
		}

		bar.AddSeries(s.Name, data, seriesOpts...)
	}

	return bar
}

// BuildLineChart constructs a themed line chart with a zoom slider, used for
// the activity timeline.
func BuildLineChart(c *ChartOpts, labels []string, series []LineSeries, yAxisLabel string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(c.Init()),
		charts.WithTooltipOpts(c.Tooltip()),
		charts.WithDataZoomOpts(c.DataZoom()...),
		charts.WithXAxisOpts(c.XAxis("")),
		charts.WithYAxisOpts(c.YAxis(yAxisLabel)),
		charts.WithLegendOpts(c.Legend()),
	)

	line.SetXAxis(labels)

	for _, s := range series {
		data := make([]opts.LineData, len(s.Data))
		for i, v := range s.Data {
			data[i] = opts.LineData{Value: v}
		}

		var seriesOpts []charts.SeriesOpts

		if s.Color != "" {
			seriesOpts = append(seriesOpts,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
			)
		}

		line.AddSeries(s.Name, data, seriesOpts...)
	}

	return line
}
