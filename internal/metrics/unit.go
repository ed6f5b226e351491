package metrics

import "strings"

// Unit classifies what a measurement counts. Only rate-ness is used by the
// table; the rest is carried for display and documentation.
type Unit string

// Known units.
const (
	UnitNone               Unit = ""
	UnitCount              Unit = "count"
	UnitPercent            Unit = "percent"
	UnitSeconds            Unit = "seconds"
	UnitMilliseconds       Unit = "milliseconds"
	UnitMicroseconds       Unit = "microseconds"
	UnitNanoseconds        Unit = "nanoseconds"
	UnitBytes              Unit = "bytes"
	UnitKibibytes          Unit = "kibibytes"
	UnitMebibytes          Unit = "mebibytes"
	UnitGibibytes          Unit = "gibibytes"
	UnitTebibytes          Unit = "tebibytes"
	UnitBits               Unit = "bits"
	UnitKilobits           Unit = "kilobits"
	UnitMegabits           Unit = "megabits"
	UnitGigabits           Unit = "gigabits"
	UnitTerabits           Unit = "terabits"
	UnitCountPerSecond     Unit = "count_per_second"
	UnitBytesPerSecond     Unit = "bytes_per_second"
	UnitKibibytesPerSecond Unit = "kibibytes_per_second"
	UnitMebibytesPerSecond Unit = "mebibytes_per_second"
	UnitGibibytesPerSecond Unit = "gibibytes_per_second"
	UnitTebibytesPerSecond Unit = "tebibytes_per_second"
	UnitBitsPerSecond      Unit = "bits_per_second"
	UnitKilobitsPerSecond  Unit = "kilobits_per_second"
	UnitMegabitsPerSecond  Unit = "megabits_per_second"
	UnitGigabitsPerSecond  Unit = "gigabits_per_second"
	UnitTerabitsPerSecond  Unit = "terabits_per_second"
)

var knownUnits = map[Unit]bool{
	UnitCount:              true,
	UnitPercent:            true,
	UnitSeconds:            true,
	UnitMilliseconds:       true,
	UnitMicroseconds:       true,
	UnitNanoseconds:        true,
	UnitBytes:              true,
	UnitKibibytes:          true,
	UnitMebibytes:          true,
	UnitGibibytes:          true,
	UnitTebibytes:          true,
	UnitBits:               true,
	UnitKilobits:           true,
	UnitMegabits:           true,
	UnitGigabits:           true,
	UnitTerabits:           true,
	UnitCountPerSecond:     true,
	UnitBytesPerSecond:     true,
	UnitKibibytesPerSecond: true,
	UnitMebibytesPerSecond: true,
	UnitGibibytesPerSecond: true,
	UnitTebibytesPerSecond: true,
	UnitBitsPerSecond:      true,
	UnitKilobitsPerSecond:  true,
	UnitMegabitsPerSecond:  true,
	UnitGigabitsPerSecond:  true,
	UnitTerabitsPerSecond:  true,
}

// IsRate reports whether the unit measures a change per unit of time.
func (u Unit) IsRate() bool {
	return strings.HasSuffix(string(u), "_per_second")
}

// ParseUnit maps a unit name to a Unit. Matching ignores case and accepts
// '-' in place of '_'. ok is false for unknown names.
func ParseUnit(s string) (Unit, bool) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if norm == "" {
		return UnitNone, true
	}
	u := Unit(norm)
	return u, knownUnits[u]
}
