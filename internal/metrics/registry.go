package metrics

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rileyhilliard/termstat/internal/logger"
)

// Instrument identifies the kind of instrument behind a record.
type Instrument int

const (
	InstrumentCounter Instrument = iota
	InstrumentGauge
)

// String returns a human-readable instrument name.
func (i Instrument) String() string {
	if i == InstrumentGauge {
		return "gauge"
	}
	return "counter"
}

// Labels are key/value pairs attached to a measurement.
type Labels map[string]string

// Label is a single key/value pair passed at registration time.
type Label struct {
	Key   string
	Value string
}

// L is shorthand for constructing a Label.
func L(key, value string) Label {
	return Label{Key: key, Value: value}
}

// Get returns the value for key, or "" when absent.
func (l Labels) Get(key string) string {
	if l == nil {
		return ""
	}
	return l[key]
}

func (l Labels) clone() Labels {
	if len(l) == 0 {
		return nil
	}
	out := make(Labels, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Counter is a monotonically increasing integer measurement.
// Safe for concurrent use.
type Counter struct {
	v atomic.Uint64
}

// Increment adds n to the counter.
func (c *Counter) Increment(n uint64) {
	c.v.Add(n)
}

// Absolute sets the counter to n.
func (c *Counter) Absolute(n uint64) {
	c.v.Store(n)
}

// Value returns the current count.
func (c *Counter) Value() uint64 {
	return c.v.Load()
}

// Gauge is a floating point measurement that can go up and down.
// Safe for concurrent use.
type Gauge struct {
	bits atomic.Uint64
}

// Set replaces the gauge value.
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Increment adds delta to the gauge.
func (g *Gauge) Increment(delta float64) {
	for {
		old := g.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if g.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

// Decrement subtracts delta from the gauge.
func (g *Gauge) Decrement(delta float64) {
	g.Increment(-delta)
}

// Value returns the current gauge value.
func (g *Gauge) Value() float64 {
	return math.Float64frombits(g.bits.Load())
}

type entry struct {
	name       string
	instrument Instrument
	labels     Labels
	counter    *Counter
	gauge      *Gauge
}

func (e *entry) value() Value {
	if e.instrument == InstrumentGauge {
		return Float(e.gauge.Value())
	}
	v := e.counter.Value()
	if v > math.MaxInt64 {
		return Int(math.MaxInt64)
	}
	return Int(int64(v))
}

type description struct {
	unit Unit
	help string
}

// Registry holds the named instruments of a process and produces snapshots
// of their current values. All methods are safe for concurrent use.
//
// Instruments are keyed by name alone, so every name maps to exactly one
// record in a snapshot. Labels are fixed by the first registration of a name.
type Registry struct {
	mu           sync.RWMutex
	entries      map[string]*entry
	descriptions map[string]description
	log          logger.Logger
}

// NewRegistry creates an empty registry. A nil logger discards messages.
func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.Noop()
	}
	return &Registry{
		entries:      make(map[string]*entry),
		descriptions: make(map[string]description),
		log:          log,
	}
}

// Counter returns the counter registered under name, creating it on first use.
// If name is already registered as a gauge, a detached counter that never
// appears in snapshots is returned and a warning is logged.
func (r *Registry) Counter(name string, labels ...Label) *Counter {
	e := r.getOrCreate(name, InstrumentCounter, labels)
	if e == nil {
		return &Counter{}
	}
	return e.counter
}

// Gauge returns the gauge registered under name, creating it on first use.
// If name is already registered as a counter, a detached gauge that never
// appears in snapshots is returned and a warning is logged.
func (r *Registry) Gauge(name string, labels ...Label) *Gauge {
	e := r.getOrCreate(name, InstrumentGauge, labels)
	if e == nil {
		return &Gauge{}
	}
	return e.gauge
}

func (r *Registry) getOrCreate(name string, kind Instrument, labels []Label) *entry {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		r.mu.Lock()
		// re-check: another goroutine may have registered it
		e, ok = r.entries[name]
		if !ok {
			e = newEntry(name, kind, labels)
			r.entries[name] = e
			r.mu.Unlock()
			r.log.Debug("registered %s %q", kind, name)
			return e
		}
		r.mu.Unlock()
	}

	if e.instrument != kind {
		r.log.Warn("%q is already registered as a %s; %s updates are dropped", name, e.instrument, kind)
		return nil
	}
	return e
}

func newEntry(name string, kind Instrument, labels []Label) *entry {
	e := &entry{name: name, instrument: kind}
	if len(labels) > 0 {
		e.labels = make(Labels, len(labels))
		for _, l := range labels {
			e.labels[l.Key] = l.Value
		}
	}
	if kind == InstrumentGauge {
		e.gauge = &Gauge{}
	} else {
		e.counter = &Counter{}
	}
	return e
}

// Describe attaches a unit and help text to name. It may be called before
// or after the instrument is registered; the latest call wins.
func (r *Registry) Describe(name string, unit Unit, help string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptions[name] = description{unit: unit, help: help}
}

// Len returns the number of registered instruments.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Reset removes all instruments and descriptions. Instruments handed out
// before Reset keep working but are no longer exported.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*entry)
	r.descriptions = make(map[string]description)
}

// Snapshot returns the current value of every registered instrument,
// sorted by name. The returned records are owned by the caller.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	snap := make(Snapshot, 0, len(r.entries))
	for name, e := range r.entries {
		d := r.descriptions[name]
		snap = append(snap, Record{
			Name:       name,
			Instrument: e.instrument,
			Unit:       d.unit,
			Help:       d.help,
			Labels:     e.labels.clone(),
			Value:      e.value(),
		})
	}
	r.mu.RUnlock()

	sort.Slice(snap, func(i, j int) bool { return snap[i].Name < snap[j].Name })
	return snap
}

// Record is one measurement as seen at snapshot time.
type Record struct {
	Name       string
	Instrument Instrument
	Unit       Unit
	Labels     Labels
	Help       string
	Value      Value
}

// Snapshot is a name-sorted set of records taken at one instant.
type Snapshot []Record

// Lookup returns the record with the given name.
func (s Snapshot) Lookup(name string) (Record, bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i].Name >= name })
	if i < len(s) && s[i].Name == name {
		return s[i], true
	}
	return Record{}, false
}

var (
	defaultMu       sync.RWMutex
	defaultRegistry = NewRegistry(nil)
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide registry.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}
