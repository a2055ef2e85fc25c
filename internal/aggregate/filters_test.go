package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilters(t *testing.T) {
	t.Parallel()

	f := DefaultFilters()

	assert.True(t, f.ExcludeBots)
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Empty(t, f.SelectedRepo)
	assert.Nil(t, f.DateRange)
	assert.Empty(t, f.SelectedUser)
	assert.False(t, f.ExcludeOwnPR)
}

func TestDateRangeContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rng   DateRange
		date  string
		want  bool
	}{
		{name: "both bounds inside", rng: DateRange{Start: "2024-01-01", End: "2024-01-31"}, date: "2024-01-15T10:00:00Z", want: true},
		{name: "inclusive start", rng: DateRange{Start: "2024-01-01", End: "2024-01-31"}, date: "2024-01-01T00:00:00Z", want: true},
		{name: "inclusive end", rng: DateRange{Start: "2024-01-01", End: "2024-01-31"}, date: "2024-01-31T23:59:59Z", want: true},
		{name: "before start", rng: DateRange{Start: "2024-01-01", End: "2024-01-31"}, date: "2023-12-31T23:59:59Z", want: false},
		{name: "after end", rng: DateRange{Start: "2024-01-01", End: "2024-01-31"}, date: "2024-02-01T00:00:00Z", want: false},
		{name: "open start", rng: DateRange{End: "2024-01-31"}, date: "1999-01-01", want: true},
		{name: "open end", rng: DateRange{Start: "2024-01-01"}, date: "2199-01-01", want: true},
		{name: "no bounds", rng: DateRange{}, date: "2024-06-01", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.rng.Contains(tc.date))
		})
	}
}

func TestFiltersLimited(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Filters{Limit: 3}.limited(10))
	assert.Equal(t, 2, Filters{Limit: 3}.limited(2))
	assert.Equal(t, 10, Filters{}.limited(10), "zero limit means unbounded")
	assert.Equal(t, 10, Filters{Limit: -1}.limited(10))
}
