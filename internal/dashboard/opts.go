package dashboard

import "github.com/go-echarts/go-echarts/v2/opts"

// Chart geometry defaults.
const (
	chartWidth      = "100%"
	chartHeight     = "460px"
	dataZoomEndPct  = 100
	legendTopOffset = "4%"
)

// ChartOpts provides themed option blocks for chart construction.
type ChartOpts struct {
	theme ThemeConfig
}

// NewChartOpts creates chart options for the given theme.
func NewChartOpts(theme Theme) *ChartOpts {
	return &ChartOpts{theme: ConfigFor(theme)}
}

// Init returns initialization options with themed background.
func (c *ChartOpts) Init() opts.Initialization {
	return opts.Initialization{
		Width:           chartWidth,
		Height:          chartHeight,
		BackgroundColor: c.theme.ChartBackground,
		Theme:           c.theme.EChartsTheme,
	}
}

// Legend returns legend options with themed text color.
func (c *ChartOpts) Legend() opts.Legend {
	return opts.Legend{
		Show:      opts.Bool(true),
		Type:      "scroll",
		Top:       legendTopOffset,
		Left:      "center",
		TextStyle: &opts.TextStyle{Color: c.theme.ChartTextMuted},
	}
}

// XAxis returns x-axis options with themed colors.
func (c *ChartOpts) XAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.theme.ChartTextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
	}
}

// YAxis returns y-axis options with themed colors.
func (c *ChartOpts) YAxis(name string) opts.YAxis {
	return opts.YAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.theme.ChartTextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.theme.ChartGrid},
		},
	}
}

// Tooltip returns axis-triggered tooltip options.
func (c *ChartOpts) Tooltip() opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}
}

// DataZoom returns slider and inside zoom options. The slider doubles as the
// brush used to pick a date range off the activity timeline.
func (c *ChartOpts) DataZoom() []opts.DataZoom {
	return []opts.DataZoom{
		{Type: "slider", Start: 0, End: dataZoomEndPct},
		{Type: "inside"},
	}
}
