package sequoia

import (
	"github.com/gitrdm/sequoia/internal/arena"
	"github.com/gitrdm/sequoia/internal/closed"
)

// recurse is the projection engine's recursive driver (spec.md §4.4). It
// grows the current prefix by one item per iteration of the i-loop, and
// returns the maximum support observed among extensions that cleared
// Smin — the caller uses that maximum to decide whether its own,
// one-item-shorter prefix is closed.
func recurse(exts *arena.ExtArena, z, l int, rd *runtimeState) (Support, error) {
	rd.telemetry.FrameEntered()
	rd.telemetry.Depth(l)

	// zmax bounds the length of any reported (or even visited) prefix:
	// a frame whose own prefix length l+1 would already exceed it
	// contributes nothing, matching the zmax=0 boundary of only ever
	// emitting the empty sequence.
	if l+1 > rd.cfg.Zmax {
		return 0, nil
	}

	var cond *arena.ExtArena
	descend := l+2 <= rd.cfg.Zmax
	if descend {
		cond = rd.pool.Get(rd.db.M(), z)
		defer rd.pool.Put(cond)
	}

	var max Support
	m := rd.db.M()
	for i := 0; i < m; i++ {
		e := &exts.Buckets[i]
		if e.Supp < rd.cfg.Smin {
			continue
		}
		if e.Supp > max {
			max = e.Supp
		}

		// Commit: append item i to every matched occurrence before the
		// closedness oracle (which reads Pos[l]) is consulted.
		for _, x := range e.Oxs {
			x.Occ.Pos[l] = x.Ref
		}
		rd.prefix[l] = Item(i)

		if rd.cfg.Mode == Closed && closed.NotClosed(rd.oracle, e.Oxs, l+1) {
			continue
		}

		var s Support
		if descend {
			z2 := arena.FillConditional(cond, e.Oxs, rd.counts, rd.seen)
			if z2 > 0 {
				var err error
				s, err = recurse(cond, z2, l+1, rd)
				if err != nil {
					return 0, err
				}
			}
		}

		if rd.cfg.Mode != Closed || s < e.Supp {
			if err := rd.report(e, l); err != nil {
				return 0, err
			}
			rd.telemetry.PatternEmitted()
		}
	}
	return max, nil
}

// report emits the prefix of length l+1 with bucket e's support via
// EmitItemset (spec.md §4.8 — "both operations sufficient for a faithful
// implementation"). The engine picks EmitItemset uniformly: in Closed
// mode an ancestor can be committed and descended into without itself
// being reported (its own max extension support ties its support), so
// an Add/Remove reporter could not reconstruct the held prefix from
// report events alone. EmitItemset always carries the full prefix, so
// it has no such dependency on which ancestors were reported.
func (rd *runtimeState) report(e *arena.Bucket, l int) error {
	var weights []float64
	if rd.cfg.Weighted {
		sumWeights(e.Oxs, l, rd.wgts)
		weights = rd.wgts[:l+1]
	}
	if err := rd.reporter.EmitItemset(rd.prefix[:l+1], weights, e.Supp); err != nil {
		return wrapReporterErr(err)
	}
	return nil
}
