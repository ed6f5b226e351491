package metrics

import (
	"math"
	"strconv"
)

// ValueKind tags the numeric representation held by a Value.
type ValueKind int

const (
	// KindNone is the zero Value: no observation yet.
	KindNone ValueKind = iota
	// KindInt is an integer counter reading.
	KindInt
	// KindFloat is a floating gauge reading.
	KindFloat
)

// String returns a human-readable name for the kind.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "none"
	}
}

// Value is a numeric observation tagged as integer or float.
// The zero Value has KindNone.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a floating point Value.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Kind reports which representation v holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Int returns the integer reading. Float values are truncated toward zero.
func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return truncate(v.f)
	default:
		return 0
	}
}

// Float returns the reading as a float64.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	default:
		return 0
	}
}

// Sub returns v - prev. ok is false when the two values do not share a kind
// (including when prev is the zero Value).
func (v Value) Sub(prev Value) (diff Value, ok bool) {
	if v.kind != prev.kind {
		return Value{}, false
	}
	switch v.kind {
	case KindInt:
		return Int(v.i - prev.i), true
	case KindFloat:
		return Float(v.f - prev.f), true
	default:
		return Value{}, false
	}
}

// String formats the value as a decimal string. Floats use the shortest
// representation that round-trips. The zero Value formats as "".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return ""
	}
}

func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(math.Trunc(f))
	}
}
