package table

import (
	"sort"

	"github.com/rileyhilliard/termstat/internal/metrics"
)

// DefaultSparklineSamples is the number of values a sparkline column keeps.
const DefaultSparklineSamples = 16

// Options configures a Table.
type Options struct {
	// MaxBar caps the length of histogram bars. Zero leaves only the
	// MaxHistogramBar ceiling.
	MaxBar int
	// SparklineSamples is the history length of sparkline columns.
	SparklineSamples int
	// Previous, when set, seeds each field's width, last value and history
	// from the field with the same path and display kind in Previous.
	Previous *Table
}

// Option mutates Options.
type Option func(*Options)

// WithMaxBar caps histogram bars at n characters.
func WithMaxBar(n int) Option {
	return func(o *Options) { o.MaxBar = n }
}

// WithSparklineSamples sets how many values sparkline columns keep.
func WithSparklineSamples(n int) Option {
	return func(o *Options) { o.SparklineSamples = n }
}

// WithPrevious carries per-field state over from the previous generation.
func WithPrevious(prev *Table) Option {
	return func(o *Options) { o.Previous = prev }
}

// Table is one generation of the layout: the tree, its Index and the
// per-field display state. It is valid until the measurement set changes
// shape and a new Table is built.
type Table struct {
	roots   []*Node
	depth   int
	index   *Index
	opts    Options
	resized bool
}

// Build sorts columns by path and groups those sharing a prefix.
// Within a run of columns sharing the same segment, columns whose path ends
// at that segment become fields placed before the group formed by the rest.
func Build(columns []Column, opts ...Option) *Table {
	sorted := make([]Column, len(columns))
	copy(sorted, columns)
	for i := range sorted {
		if len(sorted[i].Path) == 0 {
			sorted[i].Path = Path{""}
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path.Compare(sorted[j].Path) < 0
	})

	return New(partition(sorted, 0), opts...)
}

func partition(cols []Column, depth int) []*Node {
	var nodes []*Node
	for i := 0; i < len(cols); {
		seg := cols[i].Path[depth]
		j := i + 1
		for j < len(cols) && cols[j].Path[depth] == seg {
			j++
		}

		run := cols[i:j]
		k := 0
		for ; k < len(run) && len(run[k].Path) == depth+1; k++ {
			nodes = append(nodes, leafFor(run[k]))
		}
		if k < len(run) {
			nodes = append(nodes, Group(seg, partition(run[k:], depth+1)...))
		}
		i = j
	}
	return nodes
}

// New lays out an explicitly composed tree. Groups without any fields are
// dropped. The nodes are owned by the returned Table.
func New(nodes []*Node, opts ...Option) *Table {
	o := Options{SparklineSamples: DefaultSparklineSamples}
	for _, opt := range opts {
		opt(&o)
	}
	if o.SparklineSamples <= 0 {
		o.SparklineSamples = DefaultSparklineSamples
	}

	roots := prune(nodes)
	depth := treeDepth(roots)
	roots = padDepth(roots, 0, depth)

	t := &Table{
		roots: roots,
		depth: depth,
		index: newIndex(roots),
		opts:  o,
	}
	t.initState()
	t.reconcile()
	return t
}

func prune(nodes []*Node) []*Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n.kind == GroupNode {
			n.children = prune(n.children)
			if len(n.children) == 0 {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func treeDepth(nodes []*Node) int {
	depth := 0
	for _, n := range nodes {
		d := 1
		if n.kind == GroupNode {
			d += treeDepth(n.children)
		}
		if d > depth {
			depth = d
		}
	}
	return depth
}

// padDepth wraps every leaf that sits above the last level in synthetic
// groups so all fields end up depth-1 levels below the roots.
func padDepth(nodes []*Node, level, depth int) []*Node {
	for i, n := range nodes {
		if n.kind == GroupNode {
			n.children = padDepth(n.children, level+1, depth)
			continue
		}
		for l := level; l < depth-1; l++ {
			n = wrapSynthetic(n)
		}
		nodes[i] = n
	}
	return nodes
}

func (t *Table) initState() {
	var prev *Index
	if t.opts.Previous != nil {
		prev = t.opts.Previous.index
	}

	for _, f := range t.index.fields {
		if f.Display == Sparkline {
			f.history = newRingBuffer(t.opts.SparklineSamples)
		}
		if prev == nil {
			continue
		}
		i, ok := prev.PositionOf(f.Path)
		if !ok {
			continue
		}
		old := prev.fields[i]
		if old.Display != f.Display {
			continue
		}
		if old.Width > f.Width {
			f.Width = old.Width
		}
		f.last = old.last
		if f.history != nil && old.history != nil {
			for _, v := range old.history.getAll() {
				f.history.push(v)
			}
		}
	}
}

// Depth is the number of header lines.
func (t *Table) Depth() int {
	return t.depth
}

// Roots returns the top-level nodes of the padded layout tree.
func (t *Table) Roots() []*Node {
	return t.roots
}

// Index returns the field index of this generation.
func (t *Table) Index() *Index {
	return t.index
}

// Resized reports whether any column grew since the last call, and resets
// the flag. A caller that already printed the header can use it to decide
// whether the header needs printing again.
func (t *Table) Resized() bool {
	r := t.resized
	t.resized = false
	return r
}

// Columns reports the measurement paths in render order.
func (t *Table) Columns() []Path {
	out := make([]Path, len(t.index.fields))
	for i, f := range t.index.fields {
		out[i] = f.Path
	}
	return out
}

// SameShape reports whether both tables have the same fields, in the same
// order, with the same display kinds.
func (t *Table) SameShape(other *Table) bool {
	if other == nil || len(t.index.fields) != len(other.index.fields) {
		return false
	}
	for i, f := range t.index.fields {
		o := other.index.fields[i]
		if !f.Path.Equal(o.Path) || f.Display != o.Display {
			return false
		}
	}
	return true
}

// Values orders snapshot values by field position. ok is false when the
// snapshot names a measurement the table has no field for, misses one it
// does, or gives a field a unit or view label that changes its display
// kind; the table should then be rebuilt. Display kinds are checked with
// DisplayFor, so the table is expected to come from ParseColumns.
func (t *Table) Values(snap metrics.Snapshot, policy SegmentPolicy) (values []metrics.Value, ok bool) {
	if len(snap) != t.index.Len() {
		return nil, false
	}
	values = make([]metrics.Value, t.index.Len())
	seen := make([]bool, t.index.Len())
	for _, rec := range snap {
		path, err := policy.Parse(rec.Name)
		if err != nil {
			return nil, false
		}
		i, found := t.index.PositionOf(path)
		if !found || seen[i] {
			return nil, false
		}
		if DisplayFor(rec.Unit, rec.Labels) != t.index.fields[i].Display {
			return nil, false
		}
		seen[i] = true
		values[i] = rec.Value
	}
	return values, true
}
