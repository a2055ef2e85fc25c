// Package eventlog defines the pull-request event-log document consumed by the
// aggregation engine: one immutable JSON document describing every PR lifecycle
// event collected for an organization.
package eventlog

import "strings"

// EventType enumerates the six kinds of PR lifecycle events.
type EventType string

// The closed set of event types emitted by the collector.
const (
	EventCreated          EventType = "created"
	EventComment          EventType = "comment"
	EventApproved         EventType = "approved"
	EventChangesRequested EventType = "changes_requested"
	EventMerged           EventType = "merged"
	EventClosed           EventType = "closed"
)

// botSuffix marks GitHub app identities (e.g. "dependabot[bot]").
const botSuffix = "[bot]"

// copilotIdentity is the one bot identity without the suffix.
const copilotIdentity = "Copilot"

// isoDayLen is the length of the date portion of an ISO-8601 timestamp.
const isoDayLen = len("2006-01-02")

// Event is a single PR lifecycle event. Date is an ISO-8601 timestamp which
// may or may not carry a time-of-day component.
type Event struct {
	Type   EventType `json:"type"`
	Date   string    `json:"date"`
	Person string    `json:"person"`
}

// PullRequest is one pull request with its events in emission order. The
// sequence is not guaranteed to be sorted chronologically; at most one event
// has type created.
type PullRequest struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Events []Event `json:"events"`
}

// DateRange describes how the log itself was collected. It is informational
// and never applied as a filter.
type DateRange struct {
	Since string `json:"since,omitempty"`
	Until string `json:"until,omitempty"`
}

// Document is the full event-log input: every PR event for an organization,
// keyed by repository name. Aggregations treat it as immutable and never
// modify it.
type Document struct {
	Organization string                   `json:"organization"`
	GeneratedAt  string                   `json:"generated_at,omitempty"`
	DateRange    *DateRange               `json:"date_range,omitempty"`
	Repositories map[string][]PullRequest `json:"repositories"`
}

// Author returns the person who opened the PR: the person of its created
// event, or "" when the record has none.
func (pr PullRequest) Author() string {
	for _, ev := range pr.Events {
		if ev.Type == EventCreated {
			return ev.Person
		}
	}

	return ""
}

// IsBot reports whether person is a bot identity: a name ending in "[bot]"
// or exactly "Copilot" (case-sensitive).
func IsBot(person string) bool {
	return strings.HasSuffix(person, botSuffix) || person == copilotIdentity
}

// Day truncates an ISO-8601 timestamp to its date portion (YYYY-MM-DD).
// Strings shorter than a full date are returned unchanged; day-granularity
// values compare correctly with ordinary string comparison.
func Day(date string) string {
	if len(date) <= isoDayLen {
		return date
	}

	return date[:isoDayLen]
}
