package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prlens/prlens/internal/aggregate"
)

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))

	require.Error(t, err)
}

func TestLoad_DefaultsFromEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.True(t, cfg.Filters.ExcludeBots)
	assert.Equal(t, DefaultLimit, cfg.Filters.Limit)
	assert.Equal(t, DefaultTheme, cfg.Dashboard.Theme)
	assert.Equal(t, DefaultServeAddr, cfg.Serve.Addr)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prlens.yaml")
	content := `
filters:
  exclude_bots: false
  limit: 5
  user: alice
  since: "2024-01-01"
dashboard:
  theme: light
serve:
  addr: "127.0.0.1:9000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.False(t, cfg.Filters.ExcludeBots)
	assert.Equal(t, 5, cfg.Filters.Limit)
	assert.Equal(t, "alice", cfg.Filters.User)
	assert.Equal(t, "light", cfg.Dashboard.Theme)
	assert.Equal(t, "127.0.0.1:9000", cfg.Serve.Addr)
	assert.Equal(t, "", cfg.Filters.Repo)
}

func TestLoad_InvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  theme: sepia\n"), 0o600))

	_, err := Load(path)

	require.ErrorIs(t, err, ErrUnknownTheme)
}

func TestLoad_InvalidDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filters:\n  since: 'March 1'\n"), 0o600))

	_, err := Load(path)

	require.ErrorIs(t, err, ErrBadDate)
}

func TestValidate_NegativeLimit(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Filters:   FiltersConfig{Limit: -1},
		Dashboard: DashboardConfig{Theme: DefaultTheme},
	}

	require.ErrorIs(t, cfg.Validate(), ErrNegativeLimit)
}

func TestAggregateFilters(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Filters: FiltersConfig{
			ExcludeBots: true,
			Limit:       7,
			Repo:        "widgets",
			User:        "alice",
			Since:       "2024-01-01",
		},
	}

	f := cfg.AggregateFilters()

	assert.True(t, f.ExcludeBots)
	assert.Equal(t, 7, f.Limit)
	assert.Equal(t, "widgets", f.SelectedRepo)
	assert.Equal(t, "alice", f.SelectedUser)
	require.NotNil(t, f.DateRange)
	assert.Equal(t, aggregate.DateRange{Start: "2024-01-01"}, *f.DateRange)
}

func TestAggregateFilters_NoDateRange(t *testing.T) {
	t.Parallel()

	cfg := &Config{}

	assert.Nil(t, cfg.AggregateFilters().DateRange)
}
