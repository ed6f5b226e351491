package table

import "github.com/rileyhilliard/termstat/internal/metrics"

// NodeKind tags a layout node as a group or a field.
type NodeKind int

const (
	GroupNode NodeKind = iota
	FieldNode
)

// Node is one element of the layout tree: either a group with ordered
// children or a field leaf.
type Node struct {
	kind      NodeKind
	name      string
	synthetic bool
	children  []*Node
	field     *Field
}

// Group creates a group node labelled name over the given children.
func Group(name string, children ...*Node) *Node {
	return &Node{kind: GroupNode, name: name, children: children}
}

// LeafOption customizes a field created with Leaf.
type LeafOption func(*Field)

// WithDisplay sets the field's display kind and the matching alignment.
func WithDisplay(kind DisplayKind) LeafOption {
	return func(f *Field) {
		f.Display = kind
		f.Align = kind.Alignment()
	}
}

// WithPath sets the field's full path explicitly. Without it the path is
// derived from the names of the enclosing groups.
func WithPath(path Path) LeafOption {
	return func(f *Field) {
		f.Path = append(Path(nil), path...)
	}
}

// Leaf creates a field node. Fields display as Number unless told otherwise.
func Leaf(name string, opts ...LeafOption) *Node {
	f := &Field{
		Name:    name,
		Display: Number,
		Align:   AlignRight,
		Width:   textWidth(name),
	}
	for _, opt := range opts {
		opt(f)
	}
	return &Node{kind: FieldNode, name: name, field: f}
}

func leafFor(col Column) *Node {
	name := col.Path[len(col.Path)-1]
	return Leaf(name, WithPath(col.Path), WithDisplay(DisplayFor(col.Unit, col.Labels)))
}

func wrapSynthetic(n *Node) *Node {
	return &Node{kind: GroupNode, synthetic: true, children: []*Node{n}}
}

// Kind reports whether the node is a group or a field.
func (n *Node) Kind() NodeKind { return n.kind }

// Name is the group label or field name.
func (n *Node) Name() string { return n.name }

// Synthetic reports whether the node is an unnamed group added to pad a
// short leaf to the tree depth.
func (n *Node) Synthetic() bool { return n.synthetic }

// Children returns the ordered children of a group.
func (n *Node) Children() []*Node { return n.children }

// Field returns the field of a leaf node, or nil for groups.
func (n *Node) Field() *Field { return n.field }

func (n *Node) lastLeaf() *Field {
	for n.kind == GroupNode {
		n = n.children[len(n.children)-1]
	}
	return n.field
}

// Column describes one measurement for Build.
type Column struct {
	Path   Path
	Unit   metrics.Unit
	Labels metrics.Labels
}

// ParseColumns converts snapshot records into columns, splitting names
// according to policy.
func ParseColumns(snap metrics.Snapshot, policy SegmentPolicy) ([]Column, error) {
	cols := make([]Column, 0, len(snap))
	for _, rec := range snap {
		path, err := policy.Parse(rec.Name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, Column{Path: path, Unit: rec.Unit, Labels: rec.Labels})
	}
	return cols, nil
}
