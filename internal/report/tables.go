package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/prlens/prlens/internal/aggregate"
	"github.com/prlens/prlens/internal/stats"
)

const msgNoData = "(no data)"

// WriteTables writes the report as a sequence of titled terminal tables.
func (r *Report) WriteTables(w io.Writer) error {
	heading := color.New(color.FgCyan, color.Bold)

	org := r.Organization
	if org == "" {
		org = "organization"
	}

	heading.Fprintf(w, "Pull request statistics for %s\n\n", org)

	writeSummary(w, r)

	sections := []struct {
		title  string
		render func() string
	}{
		{"Top commenters", r.commentersTable},
		{"PRs created", func() string { return countTable(r.Created, "PRs") }},
		{"PRs merged", func() string { return countTable(r.Merged, "PRs") }},
		{"Review stances", r.reviewsTable},
		{"PRs by repository", r.reposTable},
		{"Response times (hours)", r.timingTable},
	}

	for _, section := range sections {
		heading.Fprintf(w, "%s\n", section.title)
		fmt.Fprintf(w, "%s\n\n", section.render())
	}

	return nil
}

func writeSummary(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Comments: %s  People: %s  Avg/person: %.1f  Avg/PR: %.1f\n\n",
		humanize.Comma(int64(r.Summary.TotalComments)),
		humanize.Comma(int64(r.Summary.TotalPeople)),
		r.Summary.AveragePerPerson,
		r.Summary.AvgCommentsPerPR,
	)
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	return tbl
}

func (r *Report) commentersTable() string {
	if len(r.Commenters) == 0 {
		return msgNoData
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Person", "Comments", "PRs", "Avg/PR", "Median", "StdDev", "Min", "Max"})

	for _, row := range r.Commenters {
		tbl.AppendRow(table.Row{
			row.Name, row.Total, row.PRsCommented,
			row.AvgPerPR, row.MedianPerPR, row.StdDevPerPR, row.MinPerPR, row.MaxPerPR,
		})
	}

	return tbl.Render()
}

func countTable(rows []aggregate.PersonCount, unit string) string {
	if len(rows) == 0 {
		return msgNoData
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Person", unit})

	for _, row := range rows {
		tbl.AppendRow(table.Row{row.Name, row.Count})
	}

	return tbl.Render()
}

func (r *Report) reviewsTable() string {
	if len(r.Reviews) == 0 {
		return msgNoData
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Person", "Approved", "Changes requested", "Total"})

	for _, row := range r.Reviews {
		tbl.AppendRow(table.Row{row.Name, row.Approved, row.ChangesRequested, row.Total})
	}

	return tbl.Render()
}

func (r *Report) reposTable() string {
	if len(r.Repos) == 0 {
		return msgNoData
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Repository", "Open", "Merged", "Closed", "Total"})

	for _, row := range r.Repos {
		tbl.AppendRow(table.Row{row.Repo, row.Open, row.Merged, row.Closed, row.Total})
	}

	return tbl.Render()
}

func (r *Report) timingTable() string {
	if len(r.Timing) == 0 {
		return msgNoData
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Repository", "First comment (mean/median/σ)", "Close (mean/median/σ)"})

	for _, row := range r.Timing {
		tbl.AppendRow(table.Row{
			row.Repo,
			summaryCell(row.TimeToFirstComment),
			summaryCell(row.TimeToClose),
		})
	}

	return tbl.Render()
}

// summaryCell formats a five-number summary compactly, with a dash for empty
// sample sets.
func summaryCell(s stats.Summary) string {
	if s.Empty() {
		return "—"
	}

	parts := []string{
		fmt.Sprintf("%.1f", *s.Mean),
		fmt.Sprintf("%.1f", *s.Median),
		fmt.Sprintf("%.1f", *s.StdDev),
	}

	return strings.Join(parts, " / ")
}
