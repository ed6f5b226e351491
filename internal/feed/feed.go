// Package feed reads measurements from a line-oriented text stream and
// applies them to a metrics registry. It backs `termstat pipe`, which turns
// any program's output into a live table.
//
// Each line has the form
//
//	<name> <value> [unit=<unit>] [<key>=<value> ...]
//
// Blank lines and lines starting with '#' are ignored. An unsigned integer
// sets a counter and "+N" increments it; any other number (decimal point,
// exponent or a minus sign) sets a gauge. Extra key=value pairs become
// labels, so "view=histogram" or "view=sparkline" select the display.
package feed

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/rileyhilliard/termstat/internal/logger"
	"github.com/rileyhilliard/termstat/internal/metrics"
)

// MaxLineSize bounds a single input line.
const MaxLineSize = 64 * 1024

// Op says how a sample updates its instrument.
type Op int

const (
	// OpSetCounter sets a counter to an absolute value.
	OpSetCounter Op = iota
	// OpIncCounter adds to a counter.
	OpIncCounter
	// OpSetGauge sets a gauge.
	OpSetGauge
)

func (o Op) String() string {
	switch o {
	case OpSetCounter:
		return "set-counter"
	case OpIncCounter:
		return "inc-counter"
	case OpSetGauge:
		return "set-gauge"
	default:
		return "unknown"
	}
}

// Sample is one parsed input line.
type Sample struct {
	Name    string
	Op      Op
	Counter uint64
	Gauge   float64
	Unit    metrics.Unit
	HasUnit bool
	Labels  []metrics.Label
}

// ParseLine parses one line. ok is false for blank lines and comments.
func ParseLine(line string) (s Sample, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Sample{}, false, nil
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Sample{}, false, errors.Newf(errors.ErrFeed, "missing value in line %q", line)
	}

	s.Name = fields[0]
	if err := parseValue(fields[1], &s); err != nil {
		return Sample{}, false, err
	}

	for _, kv := range fields[2:] {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return Sample{}, false, errors.Newf(errors.ErrFeed, "expected key=value, got %q", kv)
		}
		if key == "unit" {
			u, known := metrics.ParseUnit(value)
			if !known {
				return Sample{}, false, errors.Newf(errors.ErrFeed, "unknown unit %q for %s", value, s.Name)
			}
			s.Unit, s.HasUnit = u, true
			continue
		}
		s.Labels = append(s.Labels, metrics.L(key, value))
	}
	return s, true, nil
}

func parseValue(text string, s *Sample) error {
	if rest, inc := strings.CutPrefix(text, "+"); inc {
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return errors.Newf(errors.ErrFeed, "invalid increment %q for %s", text, s.Name)
		}
		s.Op, s.Counter = OpIncCounter, n
		return nil
	}
	if n, err := strconv.ParseUint(text, 10, 64); err == nil {
		s.Op, s.Counter = OpSetCounter, n
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errors.Newf(errors.ErrFeed, "invalid value %q for %s", text, s.Name)
	}
	s.Op, s.Gauge = OpSetGauge, f
	return nil
}

// Reader applies parsed lines to a registry.
type Reader struct {
	reg     *metrics.Registry
	log     logger.Logger
	applied int
	skipped int
}

// NewReader creates a Reader that updates reg. A nil logger discards
// messages about skipped lines.
func NewReader(reg *metrics.Registry, log logger.Logger) *Reader {
	if log == nil {
		log = logger.Noop()
	}
	return &Reader{reg: reg, log: log}
}

// Apply updates the registry with one sample.
func (r *Reader) Apply(s Sample) {
	if s.HasUnit {
		r.reg.Describe(s.Name, s.Unit, "")
	}
	switch s.Op {
	case OpSetCounter:
		r.reg.Counter(s.Name, s.Labels...).Absolute(s.Counter)
	case OpIncCounter:
		r.reg.Counter(s.Name, s.Labels...).Increment(s.Counter)
	case OpSetGauge:
		r.reg.Gauge(s.Name, s.Labels...).Set(s.Gauge)
	}
	r.applied++
}

// Read consumes in line by line until EOF or ctx is cancelled. Malformed
// lines are logged and skipped. EOF and cancellation return nil; a failing
// stream returns an ErrFeed error.
func (r *Reader) Read(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	lineNo := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, open := <-lines:
			if !open {
				return r.finish(<-scanErr)
			}
			lineNo++
			s, ok, err := ParseLine(line)
			if err != nil {
				r.skipped++
				r.log.Warn("line %d skipped: %s", lineNo, message(err))
				continue
			}
			if ok {
				r.Apply(s)
			}
		}
	}
}

func (r *Reader) finish(err error) error {
	r.log.Debug("feed closed after %d samples (%d skipped)", r.applied, r.skipped)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFeed,
			"Failed to read measurements",
			"Check that the producing command is still writing lines")
	}
	return nil
}

// Stats returns the number of applied samples and skipped lines so far.
func (r *Reader) Stats() (applied, skipped int) {
	return r.applied, r.skipped
}

func message(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return fmt.Sprint(err)
}
