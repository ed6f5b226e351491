package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/termstat/internal/config"
	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/spf13/cobra"
)

// DisplayFlags holds the flags shared by commands that print a live table.
// They override the matching config keys when set.
type DisplayFlags struct {
	Interval    string
	Count       int
	HeaderEvery int
	Style       string
	TUI         bool
}

// AddDisplayFlags registers --interval, --count, --header-every, --style
// and --tui on a command.
func AddDisplayFlags(cmd *cobra.Command, flags *DisplayFlags) {
	cmd.Flags().StringVarP(&flags.Interval, "interval", "i", "", "time between rows (e.g., 1s, 500ms)")
	cmd.Flags().IntVarP(&flags.Count, "count", "n", 0, "stop after this many rows (0 = until interrupted)")
	cmd.Flags().IntVar(&flags.HeaderEvery, "header-every", 0, "reprint the header every N rows")
	cmd.Flags().StringVar(&flags.Style, "style", "", "header style: auto, plain or color")
	cmd.Flags().BoolVar(&flags.TUI, "tui", false, "full-screen view with a pinned header")
}

// ApplyDisplayFlags copies the flags the user set onto cfg and validates
// the result.
func ApplyDisplayFlags(cmd *cobra.Command, flags *DisplayFlags, cfg *config.Config) error {
	if cmd.Flags().Changed("interval") {
		if _, err := ParseInterval(flags.Interval); err != nil {
			return err
		}
		cfg.Interval = flags.Interval
	}
	if cmd.Flags().Changed("count") {
		cfg.MaxRows = flags.Count
	}
	if cmd.Flags().Changed("header-every") {
		cfg.HeaderEvery = flags.HeaderEvery
	}
	if cmd.Flags().Changed("style") {
		cfg.Output.Style = flags.Style
	}
	return config.Validate(cfg)
}

// ParseInterval parses an interval flag into a duration.
func ParseInterval(flag string) (time.Duration, error) {
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 1s, 2m, or 500ms.")
	}
	return d, nil
}

// loadConfig loads the config named by --config, or the one found by the
// usual search, or defaults.
func loadConfig() (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		getLogger().Debug("loaded config from %s", path)
	}
	return cfg, nil
}
