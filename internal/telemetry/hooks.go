// Package telemetry provides optional, nil-safe Prometheus instrumentation
// for the mining engine. Every method tolerates a nil *Hooks receiver so
// callers that don't care about metrics never have to guard a call site.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Hooks bundles the counters/gauges the engine reports into, if present.
type Hooks struct {
	Frames   prometheus.Counter
	Emitted  prometheus.Counter
	MaxDepth prometheus.Gauge
	PoolHits prometheus.Counter
	PoolMiss prometheus.Counter

	maxDepthSeen int
}

// NewHooks registers a standard set of mining metrics against reg and
// returns the Hooks wired to them. reg may be nil, in which case the
// metrics are created unregistered (useful for tests).
func NewHooks(reg prometheus.Registerer) *Hooks {
	h := &Hooks{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sequoia_recursion_frames_total",
			Help: "Projection-engine recursion frames entered.",
		}),
		Emitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sequoia_patterns_emitted_total",
			Help: "Patterns reported to the Reporter.",
		}),
		MaxDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sequoia_max_prefix_depth",
			Help: "Deepest prefix length reached during the current run.",
		}),
		PoolHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sequoia_arena_pool_hits_total",
			Help: "Conditional extension arenas served from the pool.",
		}),
		PoolMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sequoia_arena_pool_misses_total",
			Help: "Conditional extension arenas allocated fresh.",
		}),
	}
	if reg != nil {
		reg.MustRegister(h.Frames, h.Emitted, h.MaxDepth, h.PoolHits, h.PoolMiss)
	}
	return h
}

// FrameEntered records one recursion frame.
func (h *Hooks) FrameEntered() {
	if h == nil || h.Frames == nil {
		return
	}
	h.Frames.Inc()
}

// PatternEmitted records one reported pattern.
func (h *Hooks) PatternEmitted() {
	if h == nil || h.Emitted == nil {
		return
	}
	h.Emitted.Inc()
}

// Depth records the deepest prefix length reached so far this run. The
// engine calls it on every frame entry, including shallower ones visited
// after a deep branch backtracks, so only increases move the gauge.
func (h *Hooks) Depth(l int) {
	if h == nil || h.MaxDepth == nil {
		return
	}
	if l <= h.maxDepthSeen {
		return
	}
	h.maxDepthSeen = l
	h.MaxDepth.Set(float64(l))
}

// PoolResult records a single arena pool lookup.
func (h *Hooks) PoolResult(hit bool) {
	if h == nil {
		return
	}
	if hit {
		if h.PoolHits != nil {
			h.PoolHits.Inc()
		}
		return
	}
	if h.PoolMiss != nil {
		h.PoolMiss.Inc()
	}
}
