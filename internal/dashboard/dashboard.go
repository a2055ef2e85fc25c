package dashboard

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/prlens/prlens/internal/aggregate"
	"github.com/prlens/prlens/internal/eventlog"
)

// Visualization constants (rendering-specific, not metrics).
const (
	topCommentersForChart = 15
	topReposForChart      = 20
)

// Build assembles the dashboard page for a document and filter tuple. Every
// aggregation is recomputed from scratch; the page is plain data until
// rendered.
func Build(doc *eventlog.Document, f aggregate.Filters, theme Theme) *Page {
	title := doc.Organization
	if title == "" {
		title = "Pull Request Activity"
	}

	page := NewPage(title, pageDescription(doc), theme)
	page.Cards = summaryCards(doc, f)

	chartOpts := NewChartOpts(theme)
	palette := SeriesPalette(theme)

	page.Add(
		activitySection(doc, f, chartOpts, palette),
		repoStatusSection(doc, f, chartOpts),
		commentersSection(doc, f, chartOpts, palette),
		reviewSection(doc, f, chartOpts),
		timingSection(doc, f, chartOpts, palette),
	)

	return page
}

func pageDescription(doc *eventlog.Document) string {
	if doc.DateRange == nil || (doc.DateRange.Since == "" && doc.DateRange.Until == "") {
		return "Pull request lifecycle statistics"
	}

	return fmt.Sprintf("Pull request lifecycle statistics, %s to %s",
		orDash(doc.DateRange.Since), orDash(doc.DateRange.Until))
}

func orDash(s string) string {
	if s == "" {
		return "…"
	}

	return s
}

func summaryCards(doc *eventlog.Document, f aggregate.Filters) []Card {
	summary := aggregate.AverageStats(doc, f)

	return []Card{
		{Label: "Comments", Value: humanize.Comma(int64(summary.TotalComments))},
		{Label: "People commenting", Value: humanize.Comma(int64(summary.TotalPeople))},
		{Label: "Avg comments per person", Value: fmt.Sprintf("%.1f", summary.AveragePerPerson)},
		{Label: "Avg comments per PR", Value: fmt.Sprintf("%.1f", summary.AvgCommentsPerPR)},
	}
}

// activitySection plots the full sparse timeline; the zoom slider on this
// chart is where a date range gets picked, so the date filter is not applied
// here.
func activitySection(doc *eventlog.Document, f aggregate.Filters, c *ChartOpts, palette []string) Section {
	series := aggregate.ActivityOverTime(doc, f)

	labels := make([]string, len(series))
	perType := make([][]SeriesData, len(activitySeriesNames))

	for i := range perType {
		perType[i] = make([]SeriesData, len(series))
	}

	for i, point := range series {
		labels[i] = point.Date
		perType[0][i] = point.Created
		perType[1][i] = point.Comment
		perType[2][i] = point.Approved
		perType[3][i] = point.ChangesRequested
		perType[4][i] = point.Merged
		perType[5][i] = point.Closed
	}

	lines := make([]LineSeries, len(activitySeriesNames))
	for i, name := range activitySeriesNames {
		lines[i] = LineSeries{Name: name, Data: perType[i], Color: palette[i%len(palette)]}
	}

	return Section{
		Title:    "Activity Over Time",
		Subtitle: "Events per day; days without activity are omitted",
		Chart:    BuildLineChart(c, labels, lines, "Events"),
	}
}

var activitySeriesNames = []string{
	"Created", "Comments", "Approved", "Changes requested", "Merged", "Closed",
}

func repoStatusSection(doc *eventlog.Document, f aggregate.Filters, c *ChartOpts) Section {
	rows := aggregate.PRsByRepo(doc, f)
	if len(rows) > topReposForChart {
		rows = rows[:topReposForChart]
	}

	labels := make([]string, len(rows))
	open := make([]SeriesData, len(rows))
	merged := make([]SeriesData, len(rows))
	closed := make([]SeriesData, len(rows))

	for i, row := range rows {
		labels[i] = row.Repo
		open[i] = row.Open
		merged[i] = row.Merged
		closed[i] = row.Closed
	}

	series := []BarSeries{
		{Name: "Open", Data: open, Color: colorOpen, Stack: "status"},
		{Name: "Merged", Data: merged, Color: colorMerged, Stack: "status"},
		{Name: "Closed", Data: closed, Color: colorClosed, Stack: "status"},
	}

	return Section{
		Title:    "Pull Requests by Repository",
		Subtitle: "Each PR counts once: merged beats closed beats open",
		Chart:    BuildBarChart(c, labels, series, "PRs"),
	}
}

func commentersSection(doc *eventlog.Document, f aggregate.Filters, c *ChartOpts, palette []string) Section {
	capped := f
	if capped.Limit <= 0 || capped.Limit > topCommentersForChart {
		capped.Limit = topCommentersForChart
	}

	rows := aggregate.PersonTotals(doc, capped)

	labels := make([]string, len(rows))
	totals := make([]SeriesData, len(rows))

	for i, row := range rows {
		labels[i] = row.Name
		totals[i] = row.Total
	}

	series := []BarSeries{{Name: "Comments", Data: totals, Color: palette[0]}}

	return Section{
		Title:    "Top Commenters",
		Subtitle: "Total review comments per person",
		Chart:    BuildBarChart(c, labels, series, "Comments"),
	}
}

func reviewSection(doc *eventlog.Document, f aggregate.Filters, c *ChartOpts) Section {
	rows := aggregate.ReviewStatsByPerson(doc, f)
	if n := f.Limit; n > 0 && len(rows) > n {
		rows = rows[:n]
	}

	labels := make([]string, len(rows))
	approved := make([]SeriesData, len(rows))
	changes := make([]SeriesData, len(rows))

	for i, row := range rows {
		labels[i] = row.Name
		approved[i] = row.Approved
		changes[i] = row.ChangesRequested
	}

	series := []BarSeries{
		{Name: "Approved", Data: approved, Color: colorApproved, Stack: "stance"},
		{Name: "Changes requested", Data: changes, Color: colorChangesRequested, Stack: "stance"},
	}

	return Section{
		Title:    "Review Stances",
		Subtitle: "Distinct PRs approved or sent back per reviewer",
		Chart:    BuildBarChart(c, labels, series, "PRs"),
	}
}

func timingSection(doc *eventlog.Document, f aggregate.Filters, c *ChartOpts, palette []string) Section {
	rows := aggregate.RepoTimeStats(doc, f)
	if len(rows) > topReposForChart {
		rows = rows[:topReposForChart]
	}

	labels := make([]string, len(rows))
	toComment := make([]SeriesData, len(rows))
	toClose := make([]SeriesData, len(rows))

	for i, row := range rows {
		labels[i] = row.Repo
		toComment[i] = row.TimeToFirstComment.MeanOrZero()
		toClose[i] = row.TimeToClose.MeanOrZero()
	}

	series := []BarSeries{
		{Name: "Mean hours to first comment", Data: toComment, Color: palette[0]},
		{Name: "Mean hours to merge/close", Data: toClose, Color: palette[1]},
	}

	return Section{
		Title:    "Response Times by Repository",
		Subtitle: "Hours from PR creation to first outside comment and to resolution",
		Chart:    BuildBarChart(c, labels, series, "Hours"),
	}
}
