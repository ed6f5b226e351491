package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/termstat/internal/config"
	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NonInteractive(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := Init(&out, InitOptions{
		Dir:            dir,
		Interval:       "2s",
		Style:          "plain",
		HeaderEvery:    25,
		NonInteractive: true,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Created")

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "2s", cfg.Interval)
	assert.Equal(t, "plain", cfg.Output.Style)
	assert.Equal(t, 25, cfg.HeaderEvery)
	assert.True(t, cfg.PreserveState)
}

func TestInit_Defaults(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Init(&bytes.Buffer{}, InitOptions{Dir: dir, NonInteractive: true}))

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInit_ExistingConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("interval: 5s\n"), 0644))

	t.Run("refuses without force", func(t *testing.T) {
		err := Init(&bytes.Buffer{}, InitOptions{Dir: dir, NonInteractive: true})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.Contains(t, err.Error(), "--force")

		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "interval: 5s\n", string(data))
	})

	t.Run("overwrites with force", func(t *testing.T) {
		err := Init(&bytes.Buffer{}, InitOptions{Dir: dir, NonInteractive: true, Overwrite: true, Interval: "750ms"})
		require.NoError(t, err)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "750ms", cfg.Interval)
	})
}

func TestInit_InvalidValues(t *testing.T) {
	dir := t.TempDir()

	err := Init(&bytes.Buffer{}, InitOptions{Dir: dir, NonInteractive: true, Style: "glitter"})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, config.ConfigFileName))
}

func TestMergeInitOptions(t *testing.T) {
	t.Run("CI env sets non-interactive", func(t *testing.T) {
		t.Setenv("CI", "true")
		t.Setenv("TERMSTAT_NON_INTERACTIVE", "")

		merged := mergeInitOptions(InitOptions{})
		assert.True(t, merged.NonInteractive)
	})

	t.Run("TERMSTAT_NON_INTERACTIVE sets non-interactive", func(t *testing.T) {
		t.Setenv("CI", "")
		t.Setenv("TERMSTAT_NON_INTERACTIVE", "1")

		merged := mergeInitOptions(InitOptions{})
		assert.True(t, merged.NonInteractive)
	})

	t.Run("flags are kept", func(t *testing.T) {
		t.Setenv("CI", "true")

		merged := mergeInitOptions(InitOptions{Interval: "3s", Style: "color", Overwrite: true})
		assert.Equal(t, "3s", merged.Interval)
		assert.Equal(t, "color", merged.Style)
		assert.True(t, merged.Overwrite)
	})
}

func TestInitCommand(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CI", "true")

	out, err := execute(t, newInitCmd(), "--interval", "500ms", "--style", "color")
	require.NoError(t, err)
	assert.Contains(t, out, config.ConfigFileName)

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "500ms", cfg.Interval)
	assert.Equal(t, "color", cfg.Output.Style)
}
