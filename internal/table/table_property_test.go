//go:build property
// +build property

package table

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rileyhilliard/termstat/internal/metrics"
)

func uniqueColumns(names []string) []Column {
	seen := make(map[string]bool)
	var cols []Column
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		cols = append(cols, Column{Path: ParsePath(n)})
	}
	return cols
}

func widths(tbl *Table) []int {
	out := make([]int, tbl.Index().Len())
	for i, f := range tbl.Index().Fields() {
		out[i] = f.Width
	}
	return out
}

// TestLayoutProperties checks the layout invariants over random name sets.
func TestLayoutProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	names := gen.SliceOf(gen.RegexMatch(`^[a-c]{1,6}(\.[a-c]{1,4}){0,2}$`))

	properties.Property("rebuilding an unchanged set gives an identical header", prop.ForAll(
		func(ns []string) bool {
			cols := uniqueColumns(ns)
			return Build(cols).Header() == Build(cols).Header()
		},
		names,
	))

	properties.Property("rows span exactly the header width", prop.ForAll(
		func(ns []string) bool {
			tbl := Build(uniqueColumns(ns))
			if tbl.Index().Len() == 0 {
				return true
			}
			lines := make([]strings.Builder, tbl.Depth())
			span := writeRun(tbl.Roots(), 0, lines)

			values := make([]metrics.Value, tbl.Index().Len())
			for i := range values {
				values[i] = metrics.Int(0)
			}
			row, err := tbl.RenderRow(values)
			return err == nil && textWidth(row) == span
		},
		names,
	))

	properties.Property("every group label fits over its span", prop.ForAll(
		func(ns []string) bool {
			tbl := Build(uniqueColumns(ns))
			var check func(nodes []*Node) bool
			check = func(nodes []*Node) bool {
				for _, n := range nodes {
					if n.Kind() != GroupNode {
						continue
					}
					lines := make([]strings.Builder, tbl.Depth())
					if writeRun(n.Children(), 0, lines) < textWidth(n.Name()) || !check(n.Children()) {
						return false
					}
				}
				return true
			}
			return check(tbl.Roots())
		},
		names,
	))

	properties.Property("reconcile is idempotent", prop.ForAll(
		func(ns []string) bool {
			tbl := Build(uniqueColumns(ns))
			before := widths(tbl)
			tbl.reconcile()
			after := widths(tbl)
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		names,
	))

	properties.Property("column widths never shrink", prop.ForAll(
		func(ns []string, vs []int64) bool {
			tbl := Build(uniqueColumns(ns))
			n := tbl.Index().Len()
			if n == 0 {
				return true
			}
			prev := widths(tbl)
			for start := 0; start+n <= len(vs); start += n {
				values := make([]metrics.Value, n)
				for i := range values {
					values[i] = metrics.Int(vs[start+i])
				}
				if _, err := tbl.RenderRow(values); err != nil {
					return false
				}
				cur := widths(tbl)
				for i := range cur {
					if cur[i] < prev[i] {
						return false
					}
				}
				prev = cur
			}
			return true
		},
		names,
		gen.SliceOf(gen.Int64()),
	))

	properties.Property("every field is found at its own position", prop.ForAll(
		func(ns []string) bool {
			tbl := Build(uniqueColumns(ns))
			for i, f := range tbl.Index().Fields() {
				pos, ok := tbl.Index().PositionOf(f.Path)
				if !ok || pos != i {
					return false
				}
			}
			return true
		},
		names,
	))

	properties.TestingRun(t)
}
