package exporter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/termstat/internal/errors"
)

// Run prints a row every interval to w until ctx is cancelled or MaxRows
// rows were printed. The first row is printed immediately. Cancellation is
// a normal stop and returns nil.
func (r *Register) Run(ctx context.Context, w io.Writer) error {
	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	printed := 0
	for {
		n, err := r.emit(w)
		if err != nil {
			return err
		}
		printed += n
		if r.opts.MaxRows > 0 && printed >= r.opts.MaxRows {
			r.log.Debug("printed %d rows, stopping", printed)
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Flush prints one more row, preceded by the header when it is due. It is
// used to show the final state of a source that stopped changing.
func (r *Register) Flush(w io.Writer) error {
	_, err := r.emit(w)
	return err
}

// emit runs one tick and writes its lines. It returns the number of rows
// written.
func (r *Register) emit(w io.Writer) (int, error) {
	lines, err := r.Tick()
	if err != nil {
		return 0, err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return 0, errors.WrapWithCode(err, errors.ErrOutput,
				"Failed to write table output",
				"Check that the output stream is still open")
		}
	}
	if len(lines) == 0 {
		return 0, nil
	}
	return 1, nil
}
