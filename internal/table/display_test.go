package table

import (
	"testing"

	"github.com/rileyhilliard/termstat/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestDisplayFor(t *testing.T) {
	tests := []struct {
		name   string
		unit   metrics.Unit
		labels metrics.Labels
		want   DisplayKind
	}{
		{name: "plain counter", want: Number},
		{name: "non-rate unit", unit: metrics.UnitBytes, want: Number},
		{name: "rate unit", unit: metrics.UnitCountPerSecond, want: Difference},
		{name: "histogram label", labels: metrics.Labels{"view": "histogram"}, want: Histogram},
		{name: "sparkline label", labels: metrics.Labels{"view": "sparkline"}, want: Sparkline},
		{name: "label wins over unit", unit: metrics.UnitCountPerSecond, labels: metrics.Labels{"view": "histogram"}, want: Histogram},
		{name: "unknown view falls through", labels: metrics.Labels{"view": "pie"}, want: Number},
		{name: "other labels ignored", labels: metrics.Labels{"host": "a"}, want: Number},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayFor(tt.unit, tt.labels))
		})
	}
}

func TestDisplayKind_Alignment(t *testing.T) {
	assert.Equal(t, AlignRight, Number.Alignment())
	assert.Equal(t, AlignRight, Difference.Alignment())
	assert.Equal(t, AlignLeft, Histogram.Alignment())
	assert.Equal(t, AlignLeft, Sparkline.Alignment())
	assert.Equal(t, "histogram", Histogram.String())
}
