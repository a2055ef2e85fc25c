package aggregate

import (
	"sort"

	"github.com/prlens/prlens/internal/eventlog"
)

// ActivityPoint counts the qualifying events of each type on one date. Dates
// with zero qualifying events are absent from the series, never zero-filled:
// downstream consumers rely on the sparse representation to map brush indices
// back to dates.
type ActivityPoint struct {
	Date             string `json:"date"`
	Created          int    `json:"created"`
	Comment          int    `json:"comment"`
	Approved         int    `json:"approved"`
	ChangesRequested int    `json:"changes_requested"`
	Merged           int    `json:"merged"`
	Closed           int    `json:"closed"`
}

// ActivityOverTime buckets every qualifying event by its day, ascending. The
// date-range filter is deliberately ignored (this view is where the range is
// selected from, so it must show the full timeline), while bot exclusion,
// user selection, and repo selection still apply. Own-PR exclusion applies
// only to review activity, never to created/merged/closed.
func ActivityOverTime(doc *eventlog.Document, f Filters) []ActivityPoint {
	buckets := map[string]*ActivityPoint{}

	for repo, prs := range doc.Repositories {
		if !f.repoSelected(repo) {
			continue
		}

		for _, pr := range prs {
			author := pr.Author()

			for _, ev := range pr.Events {
				if !f.allowsPerson(ev.Person) || !f.matchesUser(ev.Person) {
					continue
				}

				if f.ExcludeOwnPR && isReviewActivity(ev.Type) && author != "" && ev.Person == author {
					continue
				}

				day := eventlog.Day(ev.Date)
				if day == "" {
					continue
				}

				point := buckets[day]
				if point == nil {
					point = &ActivityPoint{Date: day}
					buckets[day] = point
				}

				countEvent(point, ev.Type)
			}
		}
	}

	series := make([]ActivityPoint, 0, len(buckets))

	for _, point := range buckets {
		series = append(series, *point)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

// isReviewActivity reports whether the type counts as review activity for
// own-PR exclusion purposes.
func isReviewActivity(t eventlog.EventType) bool {
	return t == eventlog.EventComment || t == eventlog.EventApproved || t == eventlog.EventChangesRequested
}

// countEvent increments the counter matching the event type. Unknown types
// are ignored.
func countEvent(point *ActivityPoint, t eventlog.EventType) {
	switch t {
	case eventlog.EventCreated:
		point.Created++
	case eventlog.EventComment:
		point.Comment++
	case eventlog.EventApproved:
		point.Approved++
	case eventlog.EventChangesRequested:
		point.ChangesRequested++
	case eventlog.EventMerged:
		point.Merged++
	case eventlog.EventClosed:
		point.Closed++
	}
}
