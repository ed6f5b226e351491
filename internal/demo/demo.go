// Package demo provides built-in measurement producers for `termstat demo`.
// Each producer updates a registry once per step from a background
// goroutine, the way an instrumented program would.
package demo

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/rileyhilliard/termstat/internal/metrics"
)

// Producer updates a registry once per step. Step is called with an
// increasing iteration number starting at 0.
type Producer struct {
	Name        string
	Description string
	Setup       func(reg *metrics.Registry)
	Step        func(reg *metrics.Registry, i int)
}

var producers = map[string]Producer{
	"simple": {
		Name:        "simple",
		Description: "two grouped counters and an ungrouped constant",
		Setup: func(reg *metrics.Registry) {
			reg.Counter("group2").Increment(42)
		},
		Step: func(reg *metrics.Registry, i int) {
			reg.Counter("group1.val_a").Increment(uint64(i) * 10)
			reg.Counter("group1.val_b").Increment(uint64(i) * 7)
		},
	},
	"description": {
		Name:        "description",
		Description: "absolute, per-second difference and histogram columns",
		Setup: func(reg *metrics.Registry) {
			reg.Describe("difference", metrics.UnitCountPerSecond, "")
			reg.Counter("absolute")
			reg.Counter("difference")
			reg.Counter("histogram", metrics.L("view", "histogram"))
		},
		Step: func(reg *metrics.Registry, _ int) {
			reg.Counter("absolute").Increment(1)
			reg.Counter("difference").Increment(1)
			reg.Counter("histogram").Increment(1)
		},
	},
	"nested": {
		Name:        "nested",
		Description: "a host-style tree with rates, gauges and a sparkline",
		Setup: func(reg *metrics.Registry) {
			reg.Describe("net.rx.bytes", metrics.UnitBytesPerSecond, "received")
			reg.Describe("net.tx.bytes", metrics.UnitBytesPerSecond, "sent")
			reg.Describe("mem.used", metrics.UnitMebibytes, "")
			reg.Gauge("cpu.load", metrics.L("view", "sparkline"))
		},
		Step: nestedStep,
	},
}

func nestedStep(reg *metrics.Registry, i int) {
	x := float64(i)
	reg.Gauge("cpu.user").Set(round(40 + 25*math.Sin(x/3)))
	reg.Gauge("cpu.system").Set(round(10 + 5*math.Cos(x/5)))
	reg.Gauge("cpu.load").Set(2 + math.Sin(x/2))
	reg.Counter("mem.used").Absolute(uint64(2048 + 64*(i%16)))
	reg.Counter("net.rx.bytes").Increment(uint64(1500 * (1 + i%7)))
	reg.Counter("net.tx.bytes").Increment(uint64(900 * (1 + i%3)))
	reg.Counter("net.errors")
	reg.Counter("uptime").Increment(1)
}

func round(f float64) float64 {
	return math.Round(f*10) / 10
}

// Names returns the names of all producers, sorted.
func Names() []string {
	names := make([]string, 0, len(producers))
	for name := range producers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the producer with the given name.
func Lookup(name string) (Producer, error) {
	p, ok := producers[name]
	if !ok {
		return Producer{}, errors.New(errors.ErrConfig,
			"Unknown demo: "+name,
			"Available demos: "+strings.Join(Names(), ", "))
	}
	return p, nil
}

// Start runs Setup and the first Step synchronously, then steps every
// interval until ctx is cancelled. The returned channel is closed when the
// producer goroutine exits.
func Start(ctx context.Context, p Producer, reg *metrics.Registry, interval time.Duration) <-chan struct{} {
	if p.Setup != nil {
		p.Setup(reg)
	}
	p.Step(reg, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for i := 1; ; i++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Step(reg, i)
			}
		}
	}()
	return done
}
