package aggregate

import (
	"sort"
	"time"

	"github.com/prlens/prlens/internal/eventlog"
	"github.com/prlens/prlens/internal/stats"
)

// RepoStatus buckets one repository's PRs into exactly one of open, merged,
// or closed.
type RepoStatus struct {
	Repo   string `json:"repo"`
	Open   int    `json:"open"`
	Merged int    `json:"merged"`
	Closed int    `json:"closed"`
	Total  int    `json:"total"`
}

// RepoTiming holds a repository's response-time distributions in hours:
// creation to first non-author comment, and creation to first merge or close.
type RepoTiming struct {
	Repo               string        `json:"repo"`
	TimeToFirstComment stats.Summary `json:"timeToFirstComment"`
	TimeToClose        stats.Summary `json:"timeToClose"`
}

// PRsByRepo classifies every PR in scope as merged (any merged event), else
// closed (any closed event), else open. When a user or date filter is active
// a PR is included only if at least one of its events passes the date, user,
// and bot dimensions together, but the classification itself always looks at
// the unfiltered event sequence. Repositories with no qualifying PRs are
// omitted; results are sorted by total descending, ties by repo name.
func PRsByRepo(doc *eventlog.Document, f Filters) []RepoStatus {
	gated := f.SelectedUser != "" || f.DateRange != nil

	rows := make([]RepoStatus, 0, len(doc.Repositories))

	for repo, prs := range doc.Repositories {
		if !f.repoSelected(repo) {
			continue
		}

		row := RepoStatus{Repo: repo}

		for _, pr := range prs {
			if gated && !anyEventPasses(pr, f) {
				continue
			}

			switch {
			case hasEventOfType(pr, eventlog.EventMerged):
				row.Merged++
			case hasEventOfType(pr, eventlog.EventClosed):
				row.Closed++
			default:
				row.Open++
			}

			row.Total++
		}

		if row.Total > 0 {
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}

		return rows[i].Repo < rows[j].Repo
	})

	return rows
}

// RepoTimeStats computes, per repository, the distribution of two duration
// samples for each PR whose created event passes the filter dimensions: hours
// from creation to the first comment by someone other than the author, and
// hours from creation to the first merged or closed event in positional
// order. Negative or unparsable deltas are dropped per-sample. Repositories
// with no sample in either metric are omitted; results are sorted by mean
// close time descending, with an empty close-time summary sorting as 0.
func RepoTimeStats(doc *eventlog.Document, f Filters) []RepoTiming {
	rows := make([]RepoTiming, 0, len(doc.Repositories))

	for repo, prs := range doc.Repositories {
		if !f.repoSelected(repo) {
			continue
		}

		var commentHours, closeHours []float64

		for _, pr := range prs {
			created, ok := firstEventOfType(pr, eventlog.EventCreated)
			if !ok || !f.passesEvent(created) {
				continue
			}

			createdAt, err := parseEventTime(created.Date)
			if err != nil {
				continue
			}

			if h, found := hoursToFirstResponse(pr, created.Person, createdAt, f); found {
				commentHours = append(commentHours, h)
			}

			if h, found := hoursToResolution(pr, createdAt); found {
				closeHours = append(closeHours, h)
			}
		}

		if len(commentHours) == 0 && len(closeHours) == 0 {
			continue
		}

		rows = append(rows, RepoTiming{
			Repo:               repo,
			TimeToFirstComment: stats.Summarize(commentHours),
			TimeToClose:        stats.Summarize(closeHours),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		mi := rows[i].TimeToClose.MeanOrZero()
		mj := rows[j].TimeToClose.MeanOrZero()

		if mi != mj {
			return mi > mj
		}

		return rows[i].Repo < rows[j].Repo
	})

	return rows
}

// hoursToFirstResponse finds the first comment by someone other than the
// author (bots skipped when excluded) and returns the non-negative delta in
// hours from creation. The delta guard also covers unparsable dates.
func hoursToFirstResponse(pr eventlog.PullRequest, author string, createdAt time.Time, f Filters) (float64, bool) {
	for _, ev := range pr.Events {
		if ev.Type != eventlog.EventComment || ev.Person == author {
			continue
		}

		if !f.allowsPerson(ev.Person) {
			continue
		}

		at, err := parseEventTime(ev.Date)
		if err != nil {
			return 0, false
		}

		delta := at.Sub(createdAt).Hours()
		if delta < 0 {
			return 0, false
		}

		return delta, true
	}

	return 0, false
}

// hoursToResolution returns the non-negative delta in hours from creation to
// the first merged or closed event encountered in the event sequence. That
// positional "first encountered" semantics is deliberate, even when a later
// event carries an earlier timestamp.
func hoursToResolution(pr eventlog.PullRequest, createdAt time.Time) (float64, bool) {
	for _, ev := range pr.Events {
		if ev.Type != eventlog.EventMerged && ev.Type != eventlog.EventClosed {
			continue
		}

		at, err := parseEventTime(ev.Date)
		if err != nil {
			return 0, false
		}

		delta := at.Sub(createdAt).Hours()
		if delta < 0 {
			return 0, false
		}

		return delta, true
	}

	return 0, false
}

// anyEventPasses reports whether at least one event satisfies the date, user,
// and bot dimensions together.
func anyEventPasses(pr eventlog.PullRequest, f Filters) bool {
	for _, ev := range pr.Events {
		if f.passesEvent(ev) {
			return true
		}
	}

	return false
}

// hasEventOfType reports whether any event has the given type.
func hasEventOfType(pr eventlog.PullRequest, want eventlog.EventType) bool {
	_, ok := firstEventOfType(pr, want)

	return ok
}

// dayOnlyLayout parses bare dates emitted without a time-of-day component.
const dayOnlyLayout = "2006-01-02"

// parseEventTime parses an event timestamp, accepting both full RFC 3339
// timestamps and bare dates.
func parseEventTime(date string) (time.Time, error) {
	at, err := time.Parse(time.RFC3339, date)
	if err == nil {
		return at, nil
	}

	return time.Parse(dayOnlyLayout, date)
}
