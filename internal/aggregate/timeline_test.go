package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prlens/prlens/internal/eventlog"
)

func activityDoc() *eventlog.Document {
	return doc(map[string][]eventlog.PullRequest{
		repoCore: {
			pr(1,
				ev(eventlog.EventCreated, "2024-03-01T09:00:00Z", alice),
				ev(eventlog.EventComment, "2024-03-01T10:00:00Z", bob),
				ev(eventlog.EventApproved, "2024-03-03T10:00:00Z", bob),
				ev(eventlog.EventMerged, "2024-03-03T11:00:00Z", alice),
			),
		},
	})
}

func TestActivityOverTime_SparseBuckets(t *testing.T) {
	t.Parallel()

	series := ActivityOverTime(activityDoc(), Filters{})

	// March 2nd saw no events and must be absent, not zero-filled.
	require.Len(t, series, 2)
	assert.Equal(t, "2024-03-01", series[0].Date)
	assert.Equal(t, "2024-03-03", series[1].Date)

	assert.Equal(t, ActivityPoint{Date: "2024-03-01", Created: 1, Comment: 1}, series[0])
	assert.Equal(t, ActivityPoint{Date: "2024-03-03", Approved: 1, Merged: 1}, series[1])
}

func TestActivityOverTime_IgnoresDateRange(t *testing.T) {
	t.Parallel()

	rng := &DateRange{Start: "2024-03-03", End: "2024-03-03"}

	unfiltered := ActivityOverTime(activityDoc(), Filters{})
	filtered := ActivityOverTime(activityDoc(), Filters{DateRange: rng})

	assert.Equal(t, unfiltered, filtered)
}

func TestActivityOverTime_HonorsUserAndBots(t *testing.T) {
	t.Parallel()

	withBot := doc(map[string][]eventlog.PullRequest{
		repoCore: {
			pr(1,
				ev(eventlog.EventCreated, "2024-03-01T09:00:00Z", alice),
				ev(eventlog.EventComment, "2024-03-01T10:00:00Z", botUser),
			),
		},
	})

	series := ActivityOverTime(withBot, Filters{ExcludeBots: true})

	require.Len(t, series, 1)
	assert.Equal(t, ActivityPoint{Date: "2024-03-01", Created: 1}, series[0])

	byUser := ActivityOverTime(withBot, Filters{SelectedUser: botUser})

	require.Len(t, byUser, 1)
	assert.Equal(t, ActivityPoint{Date: "2024-03-01", Comment: 1}, byUser[0])
}

func TestActivityOverTime_NarrowedOwnPRExclusion(t *testing.T) {
	t.Parallel()

	selfActivity := doc(map[string][]eventlog.PullRequest{
		repoCore: {
			pr(1,
				ev(eventlog.EventCreated, "2024-03-01T09:00:00Z", alice),
				ev(eventlog.EventComment, "2024-03-01T10:00:00Z", alice),
				ev(eventlog.EventApproved, "2024-03-01T11:00:00Z", alice),
				ev(eventlog.EventMerged, "2024-03-01T12:00:00Z", alice),
			),
		},
	})

	series := ActivityOverTime(selfActivity, Filters{ExcludeOwnPR: true})

	require.Len(t, series, 1)
	// Review activity on the author's own PR drops; created and merged stay,
	// since those are definitionally about the author.
	assert.Equal(t, ActivityPoint{Date: "2024-03-01", Created: 1, Merged: 1}, series[0])
}

func TestActivityOverTime_EmptyDocument(t *testing.T) {
	t.Parallel()

	series := ActivityOverTime(doc(map[string][]eventlog.PullRequest{}), Filters{})

	assert.Empty(t, series)
}
