package config

import (
	"os"

	"github.com/rileyhilliard/termstat/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# termstat configuration
# See 'termstat init --help' for the meaning of each key.

`

// Marshal renders cfg as the YAML written by Save.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is unexpected - please report it.")
	}
	return append([]byte(fileHeader), data...), nil
}

// Save validates cfg and writes it to path, replacing any existing file.
func Save(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check that the directory exists and is writable.")
	}
	return nil
}
