package table

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/rileyhilliard/termstat/internal/metrics"
)

const histogramMark = "#"

// MaxHistogramBar bounds every histogram bar, capped or not.
const MaxHistogramBar = 4096

// RenderRow formats one value per field, in Index order, into a single line.
// Columns are joined by one space and a field that starts a new group is
// preceded by its margin. A value wider than its column grows the column to
// the value's width plus one for the rest of this Table's life.
//
// The values must match the Index field for field; a count mismatch is
// reported as an ErrTable error and nothing is rendered or updated.
func (t *Table) RenderRow(values []metrics.Value) (string, error) {
	fields := t.index.fields
	if len(values) != len(fields) {
		return "", errors.New(errors.ErrTable,
			fmt.Sprintf("Row has %d values but the table has %d fields", len(values), len(fields)),
			"Rebuild the header after the measurement set changes and pass values in field order")
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(fieldSeparator)
		}
		b.WriteString(strings.Repeat(" ", f.Margin))

		text := t.format(f, values[i])
		if w := textWidth(text); w > f.Width {
			f.Width = w + 1
			t.resized = true
		}
		b.WriteString(pad(text, f.Width, f.Align))
	}
	return b.String(), nil
}

// format turns a value into the text for its field and records it as the
// field's last value.
func (t *Table) format(f *Field, v metrics.Value) string {
	defer func() { f.last = v }()

	switch f.Display {
	case Difference:
		if d, ok := v.Sub(f.last); ok {
			return d.String()
		}
		return v.String()
	case Histogram:
		n := v.Int()
		if n <= 0 {
			return ""
		}
		limit := int64(MaxHistogramBar)
		if t.opts.MaxBar > 0 && int64(t.opts.MaxBar) < limit {
			limit = int64(t.opts.MaxBar)
		}
		n = min(n, limit)
		return strings.Repeat(histogramMark, int(n))
	case Sparkline:
		if v.Kind() != metrics.KindNone {
			f.history.push(v.Float())
		}
		return renderSparkline(f.history.getAll())
	default:
		return v.String()
	}
}
