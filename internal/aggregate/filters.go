// Package aggregate is the aggregation engine: pure functions that filter,
// group, and summarize one immutable event-log document into derived views
// (per-person totals, per-repository counts, response/close time statistics,
// activity time series). Every function takes the document plus a Filters
// value and freshly allocates its result; nothing is cached or mutated, so
// calls are independent and safe to run concurrently over the same document.
package aggregate

import "github.com/prlens/prlens/internal/eventlog"

// DefaultLimit is the leaderboard truncation applied by DefaultFilters.
const DefaultLimit = 15

// DateRange is an inclusive day-granularity range. An empty bound is
// unbounded on that side. Bounds are ISO date strings (YYYY-MM-DD), which
// sort lexicographically by calendar order.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Contains reports whether date (a full timestamp or a bare day) falls inside
// the range after truncation to day granularity.
func (r DateRange) Contains(date string) bool {
	day := eventlog.Day(date)

	if r.Start != "" && day < r.Start {
		return false
	}

	if r.End != "" && day > r.End {
		return false
	}

	return true
}

// Filters is the caller-supplied filter tuple applied uniformly across
// aggregations. The dimensions are orthogonal and all optional: the zero
// value filters nothing and never truncates.
type Filters struct {
	// ExcludeBots drops every event whose person is a bot identity.
	ExcludeBots bool

	// Limit truncates leaderboard-style results. Zero or negative means
	// unbounded.
	Limit int

	// SelectedRepo narrows every aggregation to one repository. Empty means
	// all repositories.
	SelectedRepo string

	// DateRange keeps only events inside the inclusive day range. Nil means
	// no date filtering. ActivityOverTime deliberately ignores it: that view
	// is the source of the date-range selection and must show the full
	// timeline.
	DateRange *DateRange

	// SelectedUser keeps only events by exactly this person. Empty means all.
	SelectedUser string

	// ExcludeOwnPR suppresses a person's review activity (comments, approvals,
	// change requests) on PRs they authored themselves. It never applies to
	// created, merged, or closed events.
	ExcludeOwnPR bool
}

// DefaultFilters returns the documented defaults: bots excluded, leaderboards
// truncated to 15, no repo/date/user narrowing, own-PR review activity kept.
func DefaultFilters() Filters {
	return Filters{ExcludeBots: true, Limit: DefaultLimit}
}

// repoSelected reports whether a repository is in scope.
func (f Filters) repoSelected(repo string) bool {
	return f.SelectedRepo == "" || f.SelectedRepo == repo
}

// matchesUser reports whether person passes the selected-user dimension.
func (f Filters) matchesUser(person string) bool {
	return f.SelectedUser == "" || f.SelectedUser == person
}

// allowsPerson reports whether person passes the bot-exclusion dimension.
func (f Filters) allowsPerson(person string) bool {
	return !f.ExcludeBots || !eventlog.IsBot(person)
}

// inRange reports whether an event date passes the date-range dimension.
func (f Filters) inRange(date string) bool {
	return f.DateRange == nil || f.DateRange.Contains(date)
}

// passesEvent applies the bot, date, and user dimensions to one event. Used
// for authorship events (created/merged), where own-PR exclusion never applies.
func (f Filters) passesEvent(ev eventlog.Event) bool {
	return f.allowsPerson(ev.Person) && f.inRange(ev.Date) && f.matchesUser(ev.Person)
}

// passesReviewEvent applies the full tuple to a review-activity event
// (comment, approved, changes_requested) on a PR opened by author.
func (f Filters) passesReviewEvent(ev eventlog.Event, author string) bool {
	if f.ExcludeOwnPR && author != "" && ev.Person == author {
		return false
	}

	return f.passesEvent(ev)
}

// limited truncates n to the configured limit.
func (f Filters) limited(n int) int {
	if f.Limit > 0 && n > f.Limit {
		return f.Limit
	}

	return n
}
