package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prlens/prlens/internal/eventlog"
)

func commentHeavyDoc() *eventlog.Document {
	return doc(map[string][]eventlog.PullRequest{
		repoCore: {
			pr(1,
				ev(eventlog.EventCreated, "2024-03-01T09:00:00Z", alice),
				ev(eventlog.EventComment, "2024-03-01T10:00:00Z", bob),
				ev(eventlog.EventComment, "2024-03-01T11:00:00Z", bob),
				ev(eventlog.EventComment, "2024-03-01T12:00:00Z", alice),
				ev(eventlog.EventComment, "2024-03-02T12:00:00Z", botUser),
				ev(eventlog.EventMerged, "2024-03-03T09:00:00Z", alice),
			),
			pr(2,
				ev(eventlog.EventCreated, "2024-03-05T09:00:00Z", bob),
				ev(eventlog.EventComment, "2024-03-05T10:00:00Z", bob),
				ev(eventlog.EventComment, "2024-03-06T10:00:00Z", carol),
			),
		},
		repoDocs: {
			pr(3,
				ev(eventlog.EventCreated, "2024-03-10T09:00:00Z", carol),
				ev(eventlog.EventComment, "2024-03-10T10:00:00Z", bob),
			),
		},
	})
}

func TestPersonTotals_RoundTrip(t *testing.T) {
	t.Parallel()

	// Limit above the number of distinct people returns everyone exactly once,
	// and the sum of totals equals the post-filter comment event count.
	rows := PersonTotals(commentHeavyDoc(), Filters{Limit: 100})

	names := map[string]int{}
	sum := 0

	for _, row := range rows {
		names[row.Name]++
		sum += row.Total
	}

	assert.Len(t, names, 4)

	for name, n := range names {
		assert.Equal(t, 1, n, name)
	}

	assert.Equal(t, 7, sum)
}

func TestPersonTotals_PerPRStatistics(t *testing.T) {
	t.Parallel()

	rows := PersonTotals(commentHeavyDoc(), Filters{ExcludeBots: true})

	require.NotEmpty(t, rows)

	// bob: 2 comments on core#1, 1 on core#2, 1 on docs#3.
	top := rows[0]
	require.Equal(t, bob, top.Name)
	assert.Equal(t, 4, top.Total)
	assert.Equal(t, 3, top.PRsCommented)
	assert.InDelta(t, 1.3, top.AvgPerPR, 0)
	assert.InDelta(t, 1.0, top.MedianPerPR, 0)
	assert.InDelta(t, 0.5, top.StdDevPerPR, 0)
	assert.Equal(t, 1, top.MinPerPR)
	assert.Equal(t, 2, top.MaxPerPR)
}

func TestPersonTotals_BotExclusion(t *testing.T) {
	t.Parallel()

	withBots := PersonTotals(commentHeavyDoc(), Filters{})
	withoutBots := PersonTotals(commentHeavyDoc(), Filters{ExcludeBots: true})

	assert.Len(t, withBots, 4)
	assert.Len(t, withoutBots, 3)

	for _, row := range withoutBots {
		assert.False(t, eventlog.IsBot(row.Name))
	}
}

func TestPersonTotals_ExcludeOwnPR(t *testing.T) {
	t.Parallel()

	rows := PersonTotals(commentHeavyDoc(), Filters{ExcludeBots: true, ExcludeOwnPR: true})

	for _, row := range rows {
		if row.Name == alice {
			t.Fatal("alice only commented on her own PR and must be excluded")
		}

		if row.Name == bob {
			// bob loses the self-comment on core#2.
			assert.Equal(t, 3, row.Total)
			assert.Equal(t, 2, row.PRsCommented)
		}
	}
}

func TestPersonTotals_Limit(t *testing.T) {
	t.Parallel()

	rows := PersonTotals(commentHeavyDoc(), Filters{Limit: 1})

	require.Len(t, rows, 1)
	assert.Equal(t, bob, rows[0].Name)
}

func TestPersonTotals_TieBreakByName(t *testing.T) {
	t.Parallel()

	tied := doc(map[string][]eventlog.PullRequest{
		repoCore: {
			pr(1,
				ev(eventlog.EventCreated, "2024-03-01T09:00:00Z", carol),
				ev(eventlog.EventComment, "2024-03-01T10:00:00Z", "zoe"),
				ev(eventlog.EventComment, "2024-03-01T11:00:00Z", alice),
			),
		},
	})

	rows := PersonTotals(tied, Filters{})

	require.Len(t, rows, 2)
	assert.Equal(t, alice, rows[0].Name)
	assert.Equal(t, "zoe", rows[1].Name)
}

func TestPersonTotals_SelectedRepoEquivalence(t *testing.T) {
	t.Parallel()

	full := commentHeavyDoc()
	narrowed := doc(map[string][]eventlog.PullRequest{
		repoDocs: full.Repositories[repoDocs],
	})

	viaFilter := PersonTotals(full, Filters{SelectedRepo: repoDocs})
	viaPrefilter := PersonTotals(narrowed, Filters{})

	assert.Equal(t, viaPrefilter, viaFilter)
}

func TestPersonTotals_DateRange(t *testing.T) {
	t.Parallel()

	rng := &DateRange{Start: "2024-03-06", End: "2024-03-31"}
	rows := PersonTotals(commentHeavyDoc(), Filters{DateRange: rng})

	sum := 0
	for _, row := range rows {
		sum += row.Total
	}

	// Only carol's comment on core#2 and bob's on docs#3 fall in range.
	assert.Equal(t, 2, sum)
}

func TestPRsCreatedByPerson(t *testing.T) {
	t.Parallel()

	rows := PRsCreatedByPerson(commentHeavyDoc(), Filters{})

	require.Len(t, rows, 3)

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.Name] = row.Count
	}

	assert.Equal(t, map[string]int{alice: 1, bob: 1, carol: 1}, counts)
}

func TestPRsCreatedByPerson_SelectedUser(t *testing.T) {
	t.Parallel()

	rows := PRsCreatedByPerson(commentHeavyDoc(), Filters{SelectedUser: bob})

	require.Len(t, rows, 1)
	assert.Equal(t, PersonCount{Name: bob, Count: 1}, rows[0])
}

func TestPRsMergedByPerson(t *testing.T) {
	t.Parallel()

	rows := PRsMergedByPerson(commentHeavyDoc(), Filters{})

	require.Len(t, rows, 1)
	assert.Equal(t, PersonCount{Name: alice, Count: 1}, rows[0])
}

func TestReviewStatsByPerson_DeduplicatesPerPR(t *testing.T) {
	t.Parallel()

	reviewed := doc(map[string][]eventlog.PullRequest{
		repoCore: {
			pr(1,
				ev(eventlog.EventCreated, "2024-03-01T09:00:00Z", alice),
				ev(eventlog.EventChangesRequested, "2024-03-01T10:00:00Z", bob),
				ev(eventlog.EventApproved, "2024-03-02T10:00:00Z", bob),
				ev(eventlog.EventApproved, "2024-03-02T11:00:00Z", bob),
			),
			pr(2,
				ev(eventlog.EventCreated, "2024-03-03T09:00:00Z", alice),
				ev(eventlog.EventApproved, "2024-03-03T10:00:00Z", bob),
			),
		},
	})

	rows := ReviewStatsByPerson(reviewed, Filters{})

	require.Len(t, rows, 1)
	// Repeated approvals on core#1 count once; both stances on one PR may coexist.
	assert.Equal(t, ReviewStats{Name: bob, Approved: 2, ChangesRequested: 1, Total: 3}, rows[0])
}

func TestReviewStatsByPerson_ExcludeOwnPR(t *testing.T) {
	t.Parallel()

	reviewed := doc(map[string][]eventlog.PullRequest{
		repoCore: {
			pr(1,
				ev(eventlog.EventCreated, "2024-03-01T09:00:00Z", alice),
				ev(eventlog.EventApproved, "2024-03-01T10:00:00Z", alice),
				ev(eventlog.EventApproved, "2024-03-01T11:00:00Z", bob),
			),
		},
	})

	rows := ReviewStatsByPerson(reviewed, Filters{ExcludeOwnPR: true})

	require.Len(t, rows, 1)
	assert.Equal(t, bob, rows[0].Name)
}

func TestReviewStatsByPerson_SortsByTotalDescending(t *testing.T) {
	t.Parallel()

	reviewed := doc(map[string][]eventlog.PullRequest{
		repoCore: {
			pr(1,
				ev(eventlog.EventCreated, "2024-03-01T09:00:00Z", alice),
				ev(eventlog.EventApproved, "2024-03-01T10:00:00Z", bob),
			),
			pr(2,
				ev(eventlog.EventCreated, "2024-03-02T09:00:00Z", alice),
				ev(eventlog.EventApproved, "2024-03-02T10:00:00Z", bob),
				ev(eventlog.EventApproved, "2024-03-02T11:00:00Z", carol),
			),
		},
	})

	rows := ReviewStatsByPerson(reviewed, Filters{})

	require.Len(t, rows, 2)
	assert.Equal(t, bob, rows[0].Name)
	assert.Equal(t, 2, rows[0].Total)
	assert.Equal(t, carol, rows[1].Name)
}
