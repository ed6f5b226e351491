package cli

import (
	"testing"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCommand_Simple(t *testing.T) {
	isolate(t)

	out, err := execute(t, newDemoCmd(), "simple", "--count", "1", "--interval", "1h", "--style", "plain")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 3)
	assert.Equal(t, "  group1    |", got[0])
	assert.Equal(t, "val_a val_b | group2", got[1])
	assert.Equal(t, "    0     0       42", got[2])
}

func TestDemoCommand_DefaultsToSimple(t *testing.T) {
	isolate(t)

	out, err := execute(t, newDemoCmd(), "-n", "1", "--style", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "group1")
}

func TestDemoCommand_List(t *testing.T) {
	out, err := execute(t, newDemoCmd(), "--list")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "description")
	assert.Contains(t, got[1], "nested")
	assert.Contains(t, got[2], "simple")
}

func TestDemoCommand_Unknown(t *testing.T) {
	isolate(t)

	_, err := execute(t, newDemoCmd(), "fireworks")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestDemoCommand_TooManyArgs(t *testing.T) {
	_, err := execute(t, newDemoCmd(), "simple", "nested")
	assert.Error(t, err)
}
