package table

import "strings"

// Header renders the multi-line header: one line per tree level, top-level
// groups first and field names last. Trailing spaces are trimmed from each
// line. A table without fields renders as "".
func (t *Table) Header() string {
	if t.depth == 0 {
		return ""
	}
	t.reconcile()

	lines := make([]strings.Builder, t.depth)
	writeRun(t.roots, 0, lines)

	out := make([]string, t.depth)
	for i := range lines {
		out[i] = strings.TrimRight(lines[i].String(), " ")
	}
	return strings.Join(out, "\n")
}

// HeaderLines is Header split into its lines.
func (t *Table) HeaderLines() []string {
	if t.depth == 0 {
		return nil
	}
	return strings.Split(t.Header(), "\n")
}

// writeRun writes a run of siblings starting at level and returns the
// number of cells they span. Group siblings are separated on their own line
// and every line below it; field siblings only occur on the last line.
func writeRun(nodes []*Node, level int, lines []strings.Builder) int {
	width := 0
	for i, n := range nodes {
		if n.kind == FieldNode {
			if i > 0 {
				lines[level].WriteString(fieldSeparator)
				width += len(fieldSeparator)
			}
			lines[level].WriteString(pad(n.field.Name, n.field.Width, n.field.Align))
			width += n.field.Width
			continue
		}

		if i > 0 {
			for l := level; l < len(lines); l++ {
				lines[l].WriteString(groupSeparator)
			}
			width += len(groupSeparator)
		}
		span := writeRun(n.children, level+1, lines)
		lines[level].WriteString(center(n.name, span))
		width += span
	}
	return width
}
