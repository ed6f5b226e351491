package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .termstat.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval between printed rows, as a Go duration string ("1s", "500ms").
	Interval string `yaml:"interval" mapstructure:"interval"`

	// HeaderEvery reprints the header after this many rows. 0 disables it.
	HeaderEvery int `yaml:"header_every" mapstructure:"header_every"`

	// MaxRows stops after this many rows. 0 runs until interrupted.
	MaxRows int `yaml:"max_rows" mapstructure:"max_rows"`

	// ReprintOnResize reprints the header after a column grew.
	ReprintOnResize bool `yaml:"reprint_on_resize" mapstructure:"reprint_on_resize"`

	// PreserveState carries column widths and last values across rebuilds.
	PreserveState bool `yaml:"preserve_state" mapstructure:"preserve_state"`

	// EmptySegments is "keep" or "reject" for names like "a..b".
	EmptySegments string `yaml:"empty_segments" mapstructure:"empty_segments"`

	// MaxBar caps histogram bars. 0 leaves the built-in ceiling.
	MaxBar int `yaml:"max_bar" mapstructure:"max_bar"`

	// SparklineSamples is the history length of sparkline columns.
	SparklineSamples int `yaml:"sparkline_samples" mapstructure:"sparkline_samples"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Style is "auto", "plain" or "color".
	// "auto" colors the header only when stdout is a terminal.
	Style string `yaml:"style" mapstructure:"style"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:          CurrentConfigVersion,
		Interval:         "1s",
		HeaderEvery:      0,
		MaxRows:          0,
		ReprintOnResize:  true,
		PreserveState:    true,
		EmptySegments:    "keep",
		MaxBar:           0,
		SparklineSamples: 16,
		Output: OutputConfig{
			Style: "auto",
		},
	}
}

// IntervalDuration parses Interval, falling back to one second when it is
// empty or invalid. Validate reports invalid values.
func (c *Config) IntervalDuration() time.Duration {
	return parseDuration(c.Interval, time.Second)
}
