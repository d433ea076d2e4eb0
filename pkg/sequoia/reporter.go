package sequoia

// Reporter is the engine's output sink. Both operation styles are
// sufficient for a faithful implementation (see engine.go's report
// method), but the engine itself only ever drives EmitItemset: in
// Closed mode an ancestor item can be committed and recursed into
// without passing the report gate itself, so an Add-driven reporter
// could not reliably reconstruct the held prefix from report events
// alone. Add/Remove remain available for a collaborator that prefers
// the incremental style against its own buffer.
type Reporter interface {
	// Add appends item to the reporter's currently held prefix and
	// reports it with the given support.
	Add(item Item, supp Support) error
	// Remove truncates the reporter's held prefix back to length k.
	Remove(k int) error
	// EmitItemset reports prefix[0:len(prefix)] with the given support
	// in one shot. weights, when non-nil, holds one mean-weight
	// accumulator per prefix position (see Config.Weighted).
	EmitItemset(prefix []Item, weights []float64, supp Support) error
}
