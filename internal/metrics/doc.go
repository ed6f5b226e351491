// Package metrics is the producer-facing facade of termstat.
//
// Producers register named counters and gauges on a Registry, optionally
// tagging them with a Unit (via Describe) and key/value Labels, and update
// them from any goroutine. The Registry doubles as the snapshot source: on
// each tick the exporter calls Snapshot to get the full, name-sorted set of
// records with their current values.
//
// Names are dot-separated paths ("input.bytes") that the table package turns
// into grouped header columns. Two conventions are read downstream:
//
//	unit *_per_second      the column shows the change since the last row
//	label view=histogram   the column shows a bar of '#' characters
//	label view=sparkline   the column shows a sparkline of recent values
//
// A package-level default registry is available through Default for
// programs that, like a global recorder, want to record without threading a
// *Registry through their code.
package metrics
