package table

import "github.com/rileyhilliard/termstat/internal/metrics"

// ViewLabel is the label key that selects a bar or sparkline display.
const ViewLabel = "view"

// DisplayKind selects how successive values of a field are shown.
type DisplayKind int

const (
	// Number shows the value itself.
	Number DisplayKind = iota
	// Difference shows the change since the previous row.
	Difference
	// Histogram shows a bar of '#' characters as long as the value.
	Histogram
	// Sparkline shows the recent values as block glyphs.
	Sparkline
)

// String returns a human-readable name for the display kind.
func (k DisplayKind) String() string {
	switch k {
	case Difference:
		return "difference"
	case Histogram:
		return "histogram"
	case Sparkline:
		return "sparkline"
	default:
		return "number"
	}
}

// Alignment is the horizontal placement of text inside a column.
type Alignment int

const (
	AlignRight Alignment = iota
	AlignLeft
)

// Alignment returns the natural alignment for values of this kind.
func (k DisplayKind) Alignment() Alignment {
	if k == Histogram || k == Sparkline {
		return AlignLeft
	}
	return AlignRight
}

// DisplayFor picks the display kind of a measurement. An explicit view label
// wins; otherwise rate units are shown as differences.
func DisplayFor(unit metrics.Unit, labels metrics.Labels) DisplayKind {
	switch labels.Get(ViewLabel) {
	case "histogram":
		return Histogram
	case "sparkline":
		return Sparkline
	}
	if unit.IsRate() {
		return Difference
	}
	return Number
}
