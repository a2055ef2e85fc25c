// Package config loads prlens settings from a config file, environment
// variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/prlens/prlens/internal/aggregate"
)

// Config is the top-level configuration struct for prlens.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Filters   FiltersConfig   `mapstructure:"filters"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Serve     ServeConfig     `mapstructure:"serve"`
}

// FiltersConfig holds the default filter tuple applied when flags don't
// override it.
type FiltersConfig struct {
	ExcludeBots  bool   `mapstructure:"exclude_bots"`
	Limit        int    `mapstructure:"limit"`
	Repo         string `mapstructure:"repo"`
	User         string `mapstructure:"user"`
	Since        string `mapstructure:"since"`
	Until        string `mapstructure:"until"`
	ExcludeOwnPR bool   `mapstructure:"exclude_own_pr"`
}

// DashboardConfig holds dashboard rendering settings.
type DashboardConfig struct {
	Theme string `mapstructure:"theme"`
}

// ServeConfig holds serve command settings.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// Default values applied by the loader.
const (
	DefaultExcludeBots = true
	DefaultLimit       = aggregate.DefaultLimit
	DefaultTheme       = "dark"
	DefaultServeAddr   = "127.0.0.1:8487"
)

// dayLayout is the accepted format for since/until bounds.
const dayLayout = "2006-01-02"

// Sentinel errors for configuration validation.
var (
	// ErrNegativeLimit indicates the leaderboard limit is negative.
	ErrNegativeLimit = errors.New("filters.limit must not be negative")
	// ErrUnknownTheme indicates an unsupported dashboard theme.
	ErrUnknownTheme = errors.New("dashboard.theme must be \"light\" or \"dark\"")
	// ErrBadDate indicates a date bound that is not YYYY-MM-DD.
	ErrBadDate = errors.New("date bounds must use YYYY-MM-DD")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Filters.Limit < 0 {
		return ErrNegativeLimit
	}

	if c.Dashboard.Theme != "light" && c.Dashboard.Theme != "dark" {
		return ErrUnknownTheme
	}

	for _, bound := range []string{c.Filters.Since, c.Filters.Until} {
		if bound == "" {
			continue
		}

		_, err := time.Parse(dayLayout, bound)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadDate, bound)
		}
	}

	return nil
}

// AggregateFilters converts the configured defaults into an engine filter
// tuple.
func (c *Config) AggregateFilters() aggregate.Filters {
	f := aggregate.Filters{
		ExcludeBots:  c.Filters.ExcludeBots,
		Limit:        c.Filters.Limit,
		SelectedRepo: c.Filters.Repo,
		SelectedUser: c.Filters.User,
		ExcludeOwnPR: c.Filters.ExcludeOwnPR,
	}

	if c.Filters.Since != "" || c.Filters.Until != "" {
		f.DateRange = &aggregate.DateRange{Start: c.Filters.Since, End: c.Filters.Until}
	}

	return f
}
