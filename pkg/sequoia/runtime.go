package sequoia

import (
	"github.com/gitrdm/sequoia/internal/arena"
	"github.com/gitrdm/sequoia/internal/closed"
	"github.com/gitrdm/sequoia/internal/telemetry"
)

// runtimeState carries the scratch buffers and collaborators a recursion
// needs, threaded through every recurse call by pointer.
type runtimeState struct {
	cfg       Config
	db        Database
	prefix    []Item
	wgts      []float64
	counts    []int
	seen      *arena.SeenSet
	reporter  Reporter
	pool      *arena.Pool
	oracle    *closed.Scratch
	telemetry *telemetry.Hooks
}

// Option configures a Mine call with optional collaborators.
type Option func(*runtimeState)

// WithTelemetry wires Prometheus instrumentation into the run.
func WithTelemetry(h *telemetry.Hooks) Option {
	return func(rd *runtimeState) { rd.telemetry = h }
}

// WithPool reuses an arena.Pool across Mine calls instead of allocating a
// fresh one per call.
func WithPool(p *arena.Pool) Option {
	return func(rd *runtimeState) { rd.pool = p }
}

func newRuntimeState(db Database, cfg Config, reporter Reporter, opts ...Option) *runtimeState {
	m := db.M()
	rd := &runtimeState{
		cfg:      cfg,
		db:       db,
		prefix:   make([]Item, cfg.Zmax+1),
		counts:   make([]int, m),
		seen:     arena.NewSeenSet(m),
		reporter: reporter,
		oracle:   closed.NewScratch(m),
	}
	if cfg.Weighted {
		rd.wgts = make([]float64, cfg.Zmax+1)
	}
	for _, opt := range opts {
		opt(rd)
	}
	if rd.pool == nil {
		hooks := rd.telemetry
		rd.pool = arena.NewPool(func(hit bool) { hooks.PoolResult(hit) })
	}
	return rd
}
