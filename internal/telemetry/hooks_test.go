package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestHooksNilSafe(t *testing.T) {
	var h *Hooks
	assert.NotPanics(t, func() {
		h.FrameEntered()
		h.PatternEmitted()
		h.Depth(3)
		h.PoolResult(true)
		h.PoolResult(false)
	})
}

func TestHooksCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewHooks(reg)

	h.FrameEntered()
	h.FrameEntered()
	h.PatternEmitted()
	h.PoolResult(true)
	h.PoolResult(false)
	h.PoolResult(false)

	assert.Equal(t, float64(2), counterValue(t, h.Frames))
	assert.Equal(t, float64(1), counterValue(t, h.Emitted))
	assert.Equal(t, float64(1), counterValue(t, h.PoolHits))
	assert.Equal(t, float64(2), counterValue(t, h.PoolMiss))
}

// TestHooksDepthTracksMaximum: the gauge must hold the deepest value seen,
// not the most recent one, since recursion revisits shallow depths after
// a deep branch backtracks.
func TestHooksDepthTracksMaximum(t *testing.T) {
	h := NewHooks(nil)
	h.Depth(0)
	h.Depth(1)
	h.Depth(4)
	h.Depth(2)
	h.Depth(0)

	assert.Equal(t, float64(4), gaugeValue(t, h.MaxDepth))
}
