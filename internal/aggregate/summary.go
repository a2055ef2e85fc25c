package aggregate

import (
	"github.com/prlens/prlens/internal/eventlog"
	"github.com/prlens/prlens/internal/stats"
)

// OrgSummary holds org-wide comment totals and their mean ratios.
type OrgSummary struct {
	TotalComments    int     `json:"totalComments"`
	TotalPeople      int     `json:"totalPeople"`
	AveragePerPerson float64 `json:"averagePerPerson"`
	AvgCommentsPerPR float64 `json:"avgCommentsPerPR"`
}

// AverageStats derives org-wide totals from PersonTotals with an unbounded
// limit: total comments, distinct people, and the mean comments per person
// and per (person, PR) pair. Each ratio is independently guarded against a
// zero denominator and reported as 0.
func AverageStats(doc *eventlog.Document, f Filters) OrgSummary {
	unbounded := f
	unbounded.Limit = 0

	people := PersonTotals(doc, unbounded)

	totalComments := 0
	totalPairs := 0

	for _, p := range people {
		totalComments += p.Total
		totalPairs += p.PRsCommented
	}

	summary := OrgSummary{
		TotalComments: totalComments,
		TotalPeople:   len(people),
	}

	if len(people) > 0 {
		summary.AveragePerPerson = stats.Round1(float64(totalComments) / float64(len(people)))
	}

	if totalPairs > 0 {
		summary.AvgCommentsPerPR = stats.Round1(float64(totalComments) / float64(totalPairs))
	}

	return summary
}
