package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/prlens/prlens/internal/aggregate"
	"github.com/prlens/prlens/internal/config"
)

// Flag name constants shared across commands.
const (
	flagConfig       = "config"
	flagRepo         = "repo"
	flagUser         = "user"
	flagSince        = "since"
	flagUntil        = "until"
	flagLimit        = "limit"
	flagIncludeBots  = "include-bots"
	flagExcludeOwnPR = "exclude-own-pr"
	flagFormat       = "format"
	flagOutput       = "output"
	flagTheme        = "theme"
	flagAddr         = "addr"
)

// filterFlags collects the event filter options common to the stats,
// render, and serve commands. Values only override the loaded config
// when the corresponding flag was set on the command line.
type filterFlags struct {
	repo         string
	user         string
	since        string
	until        string
	limit        int
	includeBots  bool
	excludeOwnPR bool
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.repo, flagRepo, "", "restrict to a single repository")
	cmd.Flags().StringVar(&ff.user, flagUser, "", "restrict to a single person")
	cmd.Flags().StringVar(&ff.since, flagSince, "", "start of the date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ff.until, flagUntil, "", "end of the date range (YYYY-MM-DD)")
	cmd.Flags().IntVar(&ff.limit, flagLimit, config.DefaultLimit, "maximum ranking rows (0 for unlimited)")
	cmd.Flags().BoolVar(&ff.includeBots, flagIncludeBots, false, "count bot accounts")
	cmd.Flags().BoolVar(&ff.excludeOwnPR, flagExcludeOwnPR, false, "ignore review activity on a person's own pull requests")
}

// apply layers the command line flags over the config-derived filters.
func (ff *filterFlags) apply(flags *pflag.FlagSet, f aggregate.Filters) aggregate.Filters {
	if flags.Changed(flagRepo) {
		f.SelectedRepo = ff.repo
	}

	if flags.Changed(flagUser) {
		f.SelectedUser = ff.user
	}

	if flags.Changed(flagSince) || flags.Changed(flagUntil) {
		dr := aggregate.DateRange{}
		if f.DateRange != nil {
			dr = *f.DateRange
		}

		if flags.Changed(flagSince) {
			dr.Start = ff.since
		}

		if flags.Changed(flagUntil) {
			dr.End = ff.until
		}

		f.DateRange = &dr
	}

	if flags.Changed(flagLimit) {
		f.Limit = ff.limit
	}

	if flags.Changed(flagIncludeBots) {
		f.ExcludeBots = !ff.includeBots
	}

	if flags.Changed(flagExcludeOwnPR) {
		f.ExcludeOwnPR = ff.excludeOwnPR
	}

	return f
}
