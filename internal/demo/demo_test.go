package demo

import (
	"context"
	"testing"
	"time"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/rileyhilliard/termstat/internal/exporter"
	"github.com/rileyhilliard/termstat/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"description", "nested", "simple"}, Names())
}

func TestLookup(t *testing.T) {
	p, err := Lookup("simple")
	require.NoError(t, err)
	assert.Equal(t, "simple", p.Name)
	assert.NotEmpty(t, p.Description)

	_, err = Lookup("missing")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "description, nested, simple")
}

func run(t *testing.T, name string, steps int) *metrics.Registry {
	t.Helper()
	p, err := Lookup(name)
	require.NoError(t, err)
	reg := metrics.NewRegistry(nil)
	p.Setup(reg)
	for i := 0; i < steps; i++ {
		p.Step(reg, i)
	}
	return reg
}

func TestSimple_MatchesExampleTable(t *testing.T) {
	reg := run(t, "simple", 1)
	r := exporter.New(reg, exporter.DefaultOptions())

	header, err := r.Header()
	require.NoError(t, err)
	assert.Equal(t, "  group1    |\nval_a val_b | group2", header)

	row, err := r.Status()
	require.NoError(t, err)
	assert.Equal(t, "    0     0       42", row)
}

func TestSimple_Accumulates(t *testing.T) {
	reg := run(t, "simple", 4)
	snap := reg.Snapshot()

	rec, ok := snap.Lookup("group1.val_a")
	require.True(t, ok)
	assert.Equal(t, metrics.Int(60), rec.Value)

	rec, ok = snap.Lookup("group1.val_b")
	require.True(t, ok)
	assert.Equal(t, metrics.Int(42), rec.Value)
}

func TestDescription_Columns(t *testing.T) {
	p, err := Lookup("description")
	require.NoError(t, err)
	reg := metrics.NewRegistry(nil)
	p.Setup(reg)
	r := exporter.New(reg, exporter.DefaultOptions())

	header, err := r.Header()
	require.NoError(t, err)
	assert.Equal(t, "absolute difference histogram", header)

	var rows []string
	for i := 0; i < 3; i++ {
		p.Step(reg, i)
		row, err := r.Status()
		require.NoError(t, err)
		rows = append(rows, row)
	}
	assert.Equal(t, []string{
		"       1          1 #        ",
		"       2          1 ##       ",
		"       3          1 ###      ",
	}, rows)
}

func TestNested_Layout(t *testing.T) {
	reg := run(t, "nested", 2)
	r := exporter.New(reg, exporter.DefaultOptions())

	header, err := r.Header()
	require.NoError(t, err)
	lines := r.Table().HeaderLines()
	assert.Len(t, lines, 3)
	assert.Contains(t, header, "cpu")
	assert.Contains(t, header, "net")
	assert.Equal(t, 8, r.Table().Index().Len())

	_, err = r.Status()
	require.NoError(t, err)
}

func TestStart_StepsUntilCancelled(t *testing.T) {
	p, err := Lookup("description")
	require.NoError(t, err)
	reg := metrics.NewRegistry(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := Start(ctx, p, reg, time.Millisecond)

	rec, ok := reg.Snapshot().Lookup("absolute")
	require.True(t, ok)
	assert.GreaterOrEqual(t, rec.Value.Int(), int64(1))

	require.Eventually(t, func() bool {
		rec, _ := reg.Snapshot().Lookup("absolute")
		return rec.Value.Int() >= 3
	}, 5*time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("producer did not stop")
	}
}
