package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/rileyhilliard/termstat/internal/table"
	"github.com/rileyhilliard/termstat/internal/ui"
)

// MinInterval is the shortest accepted row interval.
const MinInterval = 10 * time.Millisecond

// MaxSparklineSamples bounds the history kept per sparkline column.
const MaxSparklineSamples = 1024

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but termstat only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade termstat or lower the version in .termstat.yaml.")
	}

	if err := validateInterval(cfg.Interval); err != nil {
		return err
	}

	counts := []struct {
		key   string
		value int
	}{
		{"header_every", cfg.HeaderEvery},
		{"max_rows", cfg.MaxRows},
		{"max_bar", cfg.MaxBar},
		{"sparkline_samples", cfg.SparklineSamples},
	}
	for _, c := range counts {
		if c.value < 0 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' can't be negative (got %d)", c.key, c.value),
				"Use 0 to turn the setting off.")
		}
	}

	if cfg.SparklineSamples > MaxSparklineSamples {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'sparkline_samples' is too large (%d, max %d)", cfg.SparklineSamples, MaxSparklineSamples),
			"A sparkline only shows as many samples as its column is wide.")
	}

	if _, err := table.ParseSegmentPolicy(cfg.EmptySegments); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid 'empty_segments' value: %q", cfg.EmptySegments),
			"Use 'keep' or 'reject'.")
	}

	if _, err := ui.ParseStyle(cfg.Output.Style); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .termstat.yaml.")
	}

	return nil
}

func validateInterval(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid 'interval': %q", s),
			"Use a duration like '1s' or '500ms'.")
	}
	if d < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'interval' is too short (%s, min %s)", d, MinInterval),
			"Use at least "+MinInterval.String()+".")
	}
	return nil
}
