package table

import "github.com/rileyhilliard/termstat/internal/metrics"

const (
	fieldSeparator = " "
	groupSeparator = " | "

	// groupMargin pads a field that starts a new group so data rows keep
	// the header's " | " rhythm without drawing the bar.
	groupMargin = len(groupSeparator) - len(fieldSeparator)
)

// Field is one rendered data column and its mutable display state.
type Field struct {
	Name    string
	Path    Path
	Display DisplayKind
	Align   Alignment

	// Width is the column width excluding Margin. It never shrinks.
	Width int
	// Margin is the number of spaces printed before the column.
	Margin int

	last    metrics.Value
	history *ringBuffer
	parent  *Node
}

// Last returns the value rendered most recently for this field.
func (f *Field) Last() metrics.Value {
	return f.last
}

// Index lists the fields of a table in render order and finds them by path.
// Lookups use the measurement's own path; synthetic padding groups never
// appear in it.
type Index struct {
	fields    []*Field
	positions map[string]int
}

func newIndex(roots []*Node) *Index {
	ix := &Index{positions: make(map[string]int)}
	collectFields(roots, nil, Path{}, &ix.fields)

	for i, f := range ix.fields {
		if i > 0 && f.parent != ix.fields[i-1].parent {
			f.Margin = groupMargin
		}
		if _, dup := ix.positions[f.Path.key()]; !dup {
			ix.positions[f.Path.key()] = i
		}
	}
	return ix
}

func collectFields(nodes []*Node, parent *Node, prefix Path, out *[]*Field) {
	for _, n := range nodes {
		if n.kind == FieldNode {
			f := n.field
			f.parent = parent
			f.Margin = 0
			if f.Path == nil {
				f.Path = append(append(Path(nil), prefix...), f.Name)
			}
			*out = append(*out, f)
			continue
		}
		childPrefix := prefix
		if !n.synthetic {
			childPrefix = append(append(Path(nil), prefix...), n.name)
		}
		collectFields(n.children, n, childPrefix, out)
	}
}

// Len returns the number of fields.
func (ix *Index) Len() int {
	return len(ix.fields)
}

// At returns the field at position i.
func (ix *Index) At(i int) *Field {
	return ix.fields[i]
}

// Fields returns the fields in render order. The slice is shared; the
// fields' display state may be mutated by the caller.
func (ix *Index) Fields() []*Field {
	return ix.fields
}

// PositionOf returns the render position of the field with the given path.
func (ix *Index) PositionOf(path Path) (int, bool) {
	i, ok := ix.positions[path.key()]
	return i, ok
}
