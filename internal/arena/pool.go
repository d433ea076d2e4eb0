package arena

import "sync"

// Pool recycles conditional ExtArena allocations across recursion frames.
// A mining run can enter tens of thousands of frames; without pooling each
// one would allocate a fresh Buckets/Flat pair only to discard it a few
// instructions later on return. This adapts the sync.Pool-backed reuse
// idiom the teacher uses for ConstraintStorePool to the arena's frame
// lifecycle: Get at frame entry, Put at frame exit (every return path,
// including error).
type Pool struct {
	mu    sync.Mutex
	free  []*ExtArena
	stats Stats
	onHit func(hit bool)
}

// Stats tracks pool effectiveness, mirroring the teacher's PoolStats.
type Stats struct {
	Hits    int64
	Misses  int64
	Returns int64
}

// NewPool creates an empty arena pool. onHit, if non-nil, is called once
// per Get with whether the lookup was satisfied from the pool — wired to
// internal/telemetry by callers that want pool-effectiveness metrics.
func NewPool(onHit func(hit bool)) *Pool {
	return &Pool{onHit: onHit}
}

// Get returns an ExtArena whose Buckets has length m and whose Flat has
// capacity at least z, reusing a pooled allocation when one is large
// enough, or allocating fresh otherwise.
func (p *Pool) Get(m, z int) *ExtArena {
	p.mu.Lock()
	for i := len(p.free) - 1; i >= 0; i-- {
		cand := p.free[i]
		if len(cand.Buckets) == m && cap(cand.Flat) >= z {
			p.free = append(p.free[:i], p.free[i+1:]...)
			p.stats.Hits++
			p.mu.Unlock()
			if p.onHit != nil {
				p.onHit(true)
			}
			cand.Flat = cand.Flat[:z]
			return cand
		}
	}
	p.stats.Misses++
	p.mu.Unlock()
	if p.onHit != nil {
		p.onHit(false)
	}

	return &ExtArena{
		Buckets: make([]Bucket, m),
		Flat:    make([]OccurrenceExtension, z),
	}
}

// Put returns an ExtArena to the pool for reuse by a later frame.
func (p *Pool) Put(a *ExtArena) {
	if a == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, a)
	p.stats.Returns++
}

// Snapshot returns the pool's current effectiveness counters.
func (p *Pool) Snapshot() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
