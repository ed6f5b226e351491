package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "1s", cfg.Interval)
	assert.Equal(t, time.Second, cfg.IntervalDuration())
	assert.Zero(t, cfg.HeaderEvery)
	assert.Zero(t, cfg.MaxRows)
	assert.True(t, cfg.ReprintOnResize)
	assert.True(t, cfg.PreserveState)
	assert.Equal(t, "keep", cfg.EmptySegments)
	assert.Zero(t, cfg.MaxBar)
	assert.Equal(t, 16, cfg.SparklineSamples)
	assert.Equal(t, "auto", cfg.Output.Style)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
interval: 250ms
header_every: 20
reprint_on_resize: false
empty_segments: reject
max_bar: 40
output:
  style: plain
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.IntervalDuration())
	assert.Equal(t, 20, cfg.HeaderEvery)
	assert.False(t, cfg.ReprintOnResize)
	assert.Equal(t, "reject", cfg.EmptySegments)
	assert.Equal(t, 40, cfg.MaxBar)
	assert.Equal(t, "plain", cfg.Output.Style)

	// Unset keys keep their defaults
	assert.True(t, cfg.PreserveState)
	assert.Equal(t, 16, cfg.SparklineSamples)
	assert.Zero(t, cfg.MaxRows)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("interval: 2s\n"), 0644))

	t.Setenv("TERMSTAT_INTERVAL", "5s")
	t.Setenv("TERMSTAT_OUTPUT_STYLE", "color")

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "5s", cfg.Interval)
	assert.Equal(t, "color", cfg.Output.Style)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("interval: [1s\n"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_Explicit(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0644))

	path, err := Find(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, path)

	_, err = Find(configPath + ".missing")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_WalksUpToGitRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	configPath := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0644))

	t.Chdir(nested)
	path, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, evalSymlinks(t, configPath), evalSymlinks(t, path))
}

func TestFind_StopsAtGitRoot(t *testing.T) {
	outer := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outer, ConfigFileName), []byte("version: 1\n"), 0644))

	t.Chdir(repo)
	path, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestFind_Global(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	globalDir := filepath.Join(home, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	globalPath := filepath.Join(globalDir, GlobalConfigFile)
	require.NoError(t, os.WriteFile(globalPath, []byte("version: 1\n"), 0644))

	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))
	t.Chdir(repo)

	path, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, globalPath, path)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))
	t.Chdir(repo)
	t.Setenv("TERMSTAT_MAX_ROWS", "3")

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, 3, cfg.MaxRows)
	assert.Equal(t, "1s", cfg.Interval)
}

func TestSaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := DefaultConfig()
	cfg.Interval = "3s"
	cfg.HeaderEvery = 10
	cfg.Output.Style = "color"
	require.NoError(t, Save(configPath, cfg))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# termstat configuration")
	assert.Contains(t, string(data), "header_every: 10")

	loaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := DefaultConfig()
	cfg.Interval = "soon"
	err := Save(configPath, cfg)
	require.Error(t, err)
	assert.NoFileExists(t, configPath)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseDuration("2s", time.Second))
	assert.Equal(t, time.Second, parseDuration("", time.Second))
	assert.Equal(t, time.Second, parseDuration("bogus", time.Second))
}

func evalSymlinks(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
