package table

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rileyhilliard/termstat/internal/errors"
)

// PathSeparator splits measurement names into path segments.
const PathSeparator = "."

// Path is the ordered list of segments naming a measurement. The last
// segment is the field name; the ones before it are nested group names.
type Path []string

// String joins the path back into a dotted name.
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Compare orders paths segment by segment. A path sorts before any longer
// path it is a prefix of.
func (p Path) Compare(other Path) int {
	return slices.Compare(p, other)
}

// Equal reports whether both paths have identical segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

func (p Path) key() string {
	return strings.Join(p, "\x00")
}

// ParsePath splits a dotted name into its segments. Empty segments (from a
// leading, trailing or doubled dot) are kept as empty strings.
func ParsePath(name string) Path {
	return Path(strings.Split(name, PathSeparator))
}

// SegmentPolicy decides what happens to names containing empty segments.
type SegmentPolicy int

const (
	// KeepEmptySegments keeps empty segments as literal empty names.
	KeepEmptySegments SegmentPolicy = iota
	// RejectEmptySegments refuses names with empty segments.
	RejectEmptySegments
)

// String returns the config spelling of the policy.
func (p SegmentPolicy) String() string {
	if p == RejectEmptySegments {
		return "reject"
	}
	return "keep"
}

// ParseSegmentPolicy maps a config value ("keep" or "reject") to a policy.
func ParseSegmentPolicy(s string) (SegmentPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return KeepEmptySegments, nil
	case "reject":
		return RejectEmptySegments, nil
	default:
		return KeepEmptySegments, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown empty segment policy: %q", s),
			"Use 'keep' or 'reject'")
	}
}

// Parse splits name according to the policy.
func (p SegmentPolicy) Parse(name string) (Path, error) {
	path := ParsePath(name)
	if p == RejectEmptySegments && slices.Contains(path, "") {
		return nil, errors.New(errors.ErrPath,
			fmt.Sprintf("Measurement name %q has an empty path segment", name),
			"Remove leading, trailing or doubled dots, or set empty_segments: keep")
	}
	return path, nil
}
