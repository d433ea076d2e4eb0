package sequoia

import "github.com/gitrdm/sequoia/internal/arena"

// Mine bootstraps the empty-prefix extensions from db and drives the
// projection engine, reporting every pattern that clears cfg.Smin (and,
// in Closed mode, has no same-support superset) to reporter. It
// implements the driver described in spec.md §4.7.
func Mine(db Database, cfg Config, reporter Reporter, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	w := db.W()
	if w < cfg.Smin {
		return nil
	}

	if db.M() == 0 {
		return wrapReporterErr(reporter.EmitItemset(nil, nil, w))
	}

	rd := newRuntimeState(db, cfg, reporter, opts...)

	occs, err := arena.BuildInitial(db, cfg.MaxArenaBytes)
	if err != nil {
		return err
	}
	exts, err := arena.BuildInitialExtensions(db, occs.Occs, cfg.MaxArenaBytes)
	if err != nil {
		return err
	}

	max, err := recurse(exts, db.Extent(), 0, rd)
	if err != nil {
		return err
	}

	if cfg.Mode != Closed || max < w {
		return wrapReporterErr(reporter.EmitItemset(nil, nil, w))
	}
	return nil
}
