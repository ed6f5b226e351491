package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// textWidth is the number of terminal cells s occupies.
func textWidth(s string) int {
	return lipgloss.Width(s)
}

// pad places s in a column of the given width.
func pad(s string, width int, align Alignment) string {
	gap := width - textWidth(s)
	if gap <= 0 {
		return s
	}
	if align == AlignLeft {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}

// center places s in the middle of width cells, with the odd cell on the right.
func center(s string, width int) string {
	extra := width - textWidth(s)
	if extra <= 0 {
		return s
	}
	left := extra / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", extra-left)
}

// reconcile widens fields until every group label fits over its span.
// Children are settled before their parent, so growth pushed into a child
// subtree never invalidates a label below it. Running it again is a no-op.
func (t *Table) reconcile() {
	reconcileRun(t.roots)
}

func reconcileRun(nodes []*Node) int {
	width := 0
	for i, n := range nodes {
		if i > 0 {
			width += separatorWidth(n)
		}
		width += reconcileNode(n)
	}
	return width
}

func reconcileNode(n *Node) int {
	if n.kind == FieldNode {
		return n.field.Width
	}
	width := reconcileRun(n.children)
	if need := textWidth(n.name); need > width {
		distribute(n.children, need-width)
		width = need
	}
	return width
}

// distribute hands extra cells round-robin to the children, first child
// first; each child's share goes to the last field of its subtree.
func distribute(children []*Node, extra int) {
	share, rem := extra/len(children), extra%len(children)
	for i, c := range children {
		k := share
		if i < rem {
			k++
		}
		if k > 0 {
			c.lastLeaf().Width += k
		}
	}
}

func separatorWidth(n *Node) int {
	if n.kind == FieldNode {
		return len(fieldSeparator)
	}
	return len(groupSeparator)
}
