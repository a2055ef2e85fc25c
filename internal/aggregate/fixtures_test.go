package aggregate

import "github.com/prlens/prlens/internal/eventlog"

// Shared test identities.
const (
	alice    = "alice"
	bob      = "bob"
	carol    = "carol"
	botUser  = "dependabot[bot]"
	repoCore = "core"
	repoDocs = "docs"
)

func doc(repos map[string][]eventlog.PullRequest) *eventlog.Document {
	return &eventlog.Document{
		Organization: "acme",
		Repositories: repos,
	}
}

func pr(number int, events ...eventlog.Event) eventlog.PullRequest {
	return eventlog.PullRequest{Number: number, Title: "pr", Events: events}
}

func ev(t eventlog.EventType, date, person string) eventlog.Event {
	return eventlog.Event{Type: t, Date: date, Person: person}
}
