// Package table lays out and renders a live, plain-text table of hierarchical
// measurements.
//
// Measurement names are dotted paths. Paths that share a prefix are grouped
// under a common header label, and every data row is aligned under the
// header's leaf names:
//
//	 g1   |  g2
//	c1 c2 | c3 c4
//	 1  2    3  4
//
// # Building
//
// Build takes a flat set of Columns (path, unit, labels), sorts them by path
// segment and partitions them into a tree of group and field Nodes. Callers
// that know their layout up front can compose the tree directly with Group
// and Leaf and pass it to New.
//
// Every leaf ends up at the same depth: leaves with shorter paths are wrapped
// in synthetic groups with empty names, so each header line corresponds to
// one tree level and the renderer has no special cases for missing levels.
//
// # Widths
//
// A field's column starts as wide as its name. A group whose label is wider
// than the columns below it stretches them (reconcile), and a value wider
// than its column grows the column to the value's width plus one. Widths only
// ever grow within one Table.
//
// # Rendering
//
// Header renders one line per tree level with group labels centered over
// their span and " | " between sibling groups on every level they share.
// RenderRow takes one value per field, in Index order, and formats each
// according to the field's DisplayKind:
//
//	Number      the value, right-aligned
//	Difference  the change since the previous row, right-aligned
//	Histogram   a bar of '#' characters, left-aligned
//	Sparkline   the recent values as block glyphs, left-aligned
//
// A Table is not safe for concurrent use. Header and RenderRow for one Table
// must not interleave across goroutines; rebuilding produces a new Table.
package table
