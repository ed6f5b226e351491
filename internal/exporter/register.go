// Package exporter connects a snapshot source to a table and drives the
// periodic print loop.
//
// A Register owns one table generation at a time. Each tick it takes a
// snapshot, rebuilds the table when the set of measurements changed shape,
// reorders the snapshot's values by field position and renders a row. The
// header is emitted whenever it would otherwise be stale: after a rebuild,
// after a column grew, and optionally every N rows.
//
// A Register is not safe for concurrent use; Run and Watch drive it from a
// single goroutine while producers update the source from any goroutine.
package exporter

import (
	"time"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/rileyhilliard/termstat/internal/logger"
	"github.com/rileyhilliard/termstat/internal/metrics"
	"github.com/rileyhilliard/termstat/internal/table"
)

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = time.Second

// Source returns the current set of measurements on demand.
type Source interface {
	Snapshot() metrics.Snapshot
}

// Styler decorates header text before it is printed. Rows are never styled.
type Styler func(header string) string

// Options configures a Register.
type Options struct {
	Interval         time.Duration       // time between rows
	HeaderEvery      int                 // reprint the header every N rows (0 = never)
	MaxRows          int                 // stop Run after N rows (0 = run until cancelled)
	ReprintOnResize  bool                // reprint the header after a column grew
	PreserveState    bool                // carry widths and last values across rebuilds
	Segments         table.SegmentPolicy // handling of empty name segments
	MaxBar           int                 // cap for histogram bars (0 = none)
	SparklineSamples int                 // history length of sparkline columns
	Styler           Styler
	Logger           logger.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Interval:         DefaultInterval,
		ReprintOnResize:  true,
		PreserveState:    true,
		SparklineSamples: table.DefaultSparklineSamples,
	}
}

// Register renders a snapshot source as a table.
type Register struct {
	source Source
	opts   Options
	log    logger.Logger
	table  *table.Table
	rows   int
}

// New creates a Register reading from source.
func New(source Source, opts Options) *Register {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Styler == nil {
		opts.Styler = func(s string) string { return s }
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	return &Register{source: source, opts: opts, log: log}
}

// Header takes a snapshot, rebuilds the table from it and renders the header.
func (r *Register) Header() (string, error) {
	if err := r.rebuild(r.source.Snapshot()); err != nil {
		return "", err
	}
	return r.table.Header(), nil
}

// Status takes a snapshot and renders it as one row. The table is rebuilt
// first if the snapshot's shape differs from the current table.
func (r *Register) Status() (string, error) {
	row, _, err := r.status()
	return row, err
}

// Tick takes one snapshot and returns the lines due for printing: the
// (styled) header when it is due, then the row. A source without any
// measurements yields no lines.
func (r *Register) Tick() ([]string, error) {
	row, rebuilt, err := r.status()
	if err != nil {
		return nil, err
	}
	if r.table.Index().Len() == 0 {
		return nil, nil
	}

	headerDue := rebuilt
	if r.table.Resized() && r.opts.ReprintOnResize {
		r.log.Debug("column grew, reprinting header")
		headerDue = true
	}
	if r.opts.HeaderEvery > 0 && r.rows >= r.opts.HeaderEvery {
		headerDue = true
	}

	var lines []string
	if headerDue {
		lines = append(lines, r.opts.Styler(r.table.Header()))
		r.rows = 0
	}
	r.rows++
	return append(lines, row), nil
}

// CurrentHeader renders the header of the current table without taking a
// snapshot. It is empty before the first Header, Status or Tick.
func (r *Register) CurrentHeader() string {
	if r.table == nil {
		return ""
	}
	return r.table.Header()
}

// Reset drops the current table so the next tick rebuilds from scratch,
// discarding per-field state even when PreserveState is set.
func (r *Register) Reset() {
	r.table = nil
	r.rows = 0
}

// Table returns the current table generation, or nil.
func (r *Register) Table() *table.Table {
	return r.table
}

func (r *Register) status() (string, bool, error) {
	snap := r.source.Snapshot()

	var values []metrics.Value
	ok := false
	if r.table != nil {
		values, ok = r.table.Values(snap, r.opts.Segments)
	}

	rebuilt := false
	if !ok {
		if err := r.rebuild(snap); err != nil {
			return "", false, err
		}
		rebuilt = true
		values, ok = r.table.Values(snap, r.opts.Segments)
		if !ok {
			return "", false, errors.New(errors.ErrTable,
				"Snapshot does not match the table built from it",
				"Make sure no two measurements share a name")
		}
	}

	row, err := r.table.RenderRow(values)
	if err != nil {
		return "", false, err
	}
	return row, rebuilt, nil
}

func (r *Register) rebuild(snap metrics.Snapshot) error {
	cols, err := table.ParseColumns(snap, r.opts.Segments)
	if err != nil {
		return err
	}

	opts := []table.Option{
		table.WithMaxBar(r.opts.MaxBar),
		table.WithSparklineSamples(r.opts.SparklineSamples),
	}
	if r.opts.PreserveState && r.table != nil {
		opts = append(opts, table.WithPrevious(r.table))
	}

	next := table.Build(cols, opts...)
	if r.table != nil && !next.SameShape(r.table) {
		r.log.Info("measurement set changed: %d -> %d fields", r.table.Index().Len(), next.Index().Len())
	}
	r.log.Debug("built table with %d fields, %d header lines", next.Index().Len(), next.Depth())
	r.table = next
	return nil
}
