// Package arena implements the dense, arena-style memory layout used to
// represent pattern occurrences and per-item extension buckets. Every
// allocation here is sized from a pre-scan so that the hot recursion path
// in pkg/sequoia never grows a slice.
package arena

// Item is a dense item identifier in [0, M). Sentinel marks end-of-sequence
// inside a transaction.
type Item int32

// Sentinel terminates every transaction's item sequence.
const Sentinel Item = -1

// Cell is one slot of a transaction: an item and, for the item-weighted
// flavor, its per-occurrence weight. Wgt is unused (left at zero) by the
// unweighted flavor.
type Cell struct {
	Item Item
	Wgt  float64
}

// End reports whether c is the sentinel cell.
func (c Cell) End() bool { return c.Item < 0 }
