package sequoia

// Mode selects the reporting target.
type Mode uint8

const (
	// All reports every frequent pattern.
	All Mode = iota
	// Closed engages the closedness oracle and gates reporting to
	// patterns with no same-support superset.
	Closed
)

// Config carries the options the core recognizes. It is the caller's
// responsibility to reject an InvalidConfig before calling Mine —
// Validate performs that check.
type Config struct {
	Mode Mode
	// Smin is the minimum support; clamped to >= 1 by Validate.
	Smin Support
	// Zmax bounds the length of a reported prefix; recursion never
	// descends past it.
	Zmax int
	// Zmin is the minimum reported prefix length. The core does not
	// enforce it — it is passed through for the reporter's use.
	Zmin int
	// Weighted selects the item-weighted flavor: Mine requires an
	// item-weighted Database and reports per-position mean weights.
	Weighted bool
	// MaxArenaBytes caps the size of any single arena allocation. Zero
	// means unbounded.
	MaxArenaBytes int64
}

// Validate rejects structurally invalid configuration and clamps Smin
// into its valid range.
func (c *Config) Validate() error {
	if c.Zmax < 0 {
		return errInvalidConfigf("zmax must be >= 0, got %d", c.Zmax)
	}
	if c.Zmin < 0 {
		return errInvalidConfigf("zmin must be >= 0, got %d", c.Zmin)
	}
	if c.Smin < 1 {
		c.Smin = 1
	}
	return nil
}
