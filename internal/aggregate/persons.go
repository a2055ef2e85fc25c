package aggregate

import (
	"sort"
	"strconv"

	"github.com/prlens/prlens/internal/eventlog"
	"github.com/prlens/prlens/internal/stats"
)

// PersonTotal summarizes one person's commenting activity: total comments,
// the number of distinct PRs touched, and per-PR comment statistics computed
// over the multiset of "comments by this person on this PR" values.
type PersonTotal struct {
	Name         string  `json:"name"`
	Total        int     `json:"total"`
	PRsCommented int     `json:"prsCommented"`
	AvgPerPR     float64 `json:"avgPerPR"`
	MedianPerPR  float64 `json:"medianPerPR"`
	StdDevPerPR  float64 `json:"stdDevPerPR"`
	MinPerPR     int     `json:"minPerPR"`
	MaxPerPR     int     `json:"maxPerPR"`
}

// PersonCount is one leaderboard row: a person and how many PRs they created
// or merged.
type PersonCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ReviewStats counts the distinct PRs a person approved and the distinct PRs
// they requested changes on. Repeated stances on the same PR count once; a
// person can appear in both columns for the same PR.
type ReviewStats struct {
	Name             string `json:"name"`
	Approved         int    `json:"approved"`
	ChangesRequested int    `json:"changesRequested"`
	Total            int    `json:"total"`
}

// prKey uniquely identifies a PR across repositories.
func prKey(repo string, number int) string {
	return repo + "#" + strconv.Itoa(number)
}

// PersonTotals accumulates every comment event passing the filter tuple into
// per-author totals and per-PR statistics. Results are sorted by total
// descending (ties by name ascending) and truncated to the filter limit.
func PersonTotals(doc *eventlog.Document, f Filters) []PersonTotal {
	type accum struct {
		total int
		perPR map[string]int
	}

	byPerson := map[string]*accum{}

	for repo, prs := range doc.Repositories {
		if !f.repoSelected(repo) {
			continue
		}

		for _, pr := range prs {
			author := pr.Author()
			key := prKey(repo, pr.Number)

			for _, ev := range pr.Events {
				if ev.Type != eventlog.EventComment {
					continue
				}

				if !f.passesReviewEvent(ev, author) {
					continue
				}

				acc := byPerson[ev.Person]
				if acc == nil {
					acc = &accum{perPR: map[string]int{}}
					byPerson[ev.Person] = acc
				}

				acc.total++
				acc.perPR[key]++
			}
		}
	}

	rows := make([]PersonTotal, 0, len(byPerson))

	for name, acc := range byPerson {
		counts := make([]float64, 0, len(acc.perPR))

		minPerPR := 0
		maxPerPR := 0

		for _, n := range acc.perPR {
			counts = append(counts, float64(n))

			if minPerPR == 0 || n < minPerPR {
				minPerPR = n
			}

			if n > maxPerPR {
				maxPerPR = n
			}
		}

		mean := stats.Mean(counts)

		rows = append(rows, PersonTotal{
			Name:         name,
			Total:        acc.total,
			PRsCommented: len(acc.perPR),
			AvgPerPR:     stats.Round1(mean),
			MedianPerPR:  stats.Round1(stats.Median(counts)),
			StdDevPerPR:  stats.Round1(stats.StdDev(counts, mean)),
			MinPerPR:     minPerPR,
			MaxPerPR:     maxPerPR,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}

		return rows[i].Name < rows[j].Name
	})

	return rows[:f.limited(len(rows))]
}

// PRsCreatedByPerson counts, per person, the PRs whose created event passes
// the filter tuple. Sorted by count descending, ties by name, truncated to
// the filter limit.
func PRsCreatedByPerson(doc *eventlog.Document, f Filters) []PersonCount {
	return countAuthorshipEvents(doc, f, eventlog.EventCreated)
}

// PRsMergedByPerson counts, per person, the PRs whose first merged event
// passes the filter tuple. Sorted by count descending, ties by name,
// truncated to the filter limit.
func PRsMergedByPerson(doc *eventlog.Document, f Filters) []PersonCount {
	return countAuthorshipEvents(doc, f, eventlog.EventMerged)
}

// countAuthorshipEvents locates the first event of the wanted type on each PR
// in scope and credits its person when the event passes the bot/date/user
// dimensions. Own-PR exclusion does not apply: these events are definitionally
// about the author.
func countAuthorshipEvents(doc *eventlog.Document, f Filters, want eventlog.EventType) []PersonCount {
	counts := map[string]int{}

	for repo, prs := range doc.Repositories {
		if !f.repoSelected(repo) {
			continue
		}

		for _, pr := range prs {
			ev, ok := firstEventOfType(pr, want)
			if !ok {
				continue
			}

			if !f.passesEvent(ev) {
				continue
			}

			counts[ev.Person]++
		}
	}

	return sortedCounts(counts, f)
}

// ReviewStatsByPerson tracks the distinct set of PRs each person approved and
// the distinct set they requested changes on, for events passing the full
// filter tuple (including own-PR exclusion). Sorted by total descending,
// ties by name ascending.
func ReviewStatsByPerson(doc *eventlog.Document, f Filters) []ReviewStats {
	type stances struct {
		approved map[string]struct{}
		changes  map[string]struct{}
	}

	byPerson := map[string]*stances{}

	for repo, prs := range doc.Repositories {
		if !f.repoSelected(repo) {
			continue
		}

		for _, pr := range prs {
			author := pr.Author()
			key := prKey(repo, pr.Number)

			for _, ev := range pr.Events {
				if ev.Type != eventlog.EventApproved && ev.Type != eventlog.EventChangesRequested {
					continue
				}

				if !f.passesReviewEvent(ev, author) {
					continue
				}

				st := byPerson[ev.Person]
				if st == nil {
					st = &stances{
						approved: map[string]struct{}{},
						changes:  map[string]struct{}{},
					}
					byPerson[ev.Person] = st
				}

				if ev.Type == eventlog.EventApproved {
					st.approved[key] = struct{}{}
				} else {
					st.changes[key] = struct{}{}
				}
			}
		}
	}

	rows := make([]ReviewStats, 0, len(byPerson))

	for name, st := range byPerson {
		rows = append(rows, ReviewStats{
			Name:             name,
			Approved:         len(st.approved),
			ChangesRequested: len(st.changes),
			Total:            len(st.approved) + len(st.changes),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}

		return rows[i].Name < rows[j].Name
	})

	return rows
}

// firstEventOfType returns the first positional event of the wanted type.
func firstEventOfType(pr eventlog.PullRequest, want eventlog.EventType) (eventlog.Event, bool) {
	for _, ev := range pr.Events {
		if ev.Type == want {
			return ev, true
		}
	}

	return eventlog.Event{}, false
}

// sortedCounts turns an accumulator map into a leaderboard: count descending,
// ties by name ascending, truncated to the filter limit.
func sortedCounts(counts map[string]int, f Filters) []PersonCount {
	rows := make([]PersonCount, 0, len(counts))

	for name, n := range counts {
		rows = append(rows, PersonCount{Name: name, Count: n})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}

		return rows[i].Name < rows[j].Name
	})

	return rows[:f.limited(len(rows))]
}
