package sequoia

import "github.com/pkg/errors"

// Database is the read-only, prepared transaction database the engine
// consumes. Implementations are assumed — and may be relied upon — to
// already be lexicographically sorted and deduplicated by the caller.
type Database interface {
	// M is the number of distinct items; every item identifier lies in
	// [0, M).
	M() int
	// N is the number of transactions.
	N() int
	// W is the database weight: the sum of every transaction's weight.
	W() int64
	// Extent is the total number of non-sentinel item instances across
	// every transaction.
	Extent() int
	// Weight returns transaction j's integer weight (>= 1).
	Weight(j int) int64
	// Items returns a borrow of transaction j's sentinel-terminated item
	// array.
	Items(j int) []Cell
	// Size returns the number of non-sentinel items in transaction j.
	Size(j int) int
}

// MemDatabase is a minimal in-memory Database, suitable for tests and the
// demo CLI. It owns a flat transactions/weights pair built by
// NewDatabase or NewWeightedDatabase.
type MemDatabase struct {
	m         int
	w         int64
	extent    int
	txns      [][]Cell
	weights   []int64
}

var _ Database = (*MemDatabase)(nil)

// NewDatabase builds an unweighted MemDatabase from plain item
// transactions. Items must already be dense, non-negative identifiers;
// M is derived as one more than the largest item seen.
func NewDatabase(transactions [][]Item, weights []int64) (*MemDatabase, error) {
	if len(transactions) != len(weights) {
		return nil, errors.New("sequoia: transactions and weights length mismatch")
	}
	wrapped := make([][]Cell, len(transactions))
	for i, tx := range transactions {
		wrapped[i] = make([]Cell, len(tx)+1)
		for j, it := range tx {
			wrapped[i][j] = Cell{Item: it}
		}
		wrapped[i][len(tx)] = Cell{Item: Sentinel}
	}
	return newMemDatabase(wrapped, weights)
}

// NewWeightedDatabase builds a MemDatabase from item-weighted
// transactions (each cell carries its own weight). The sentinel is
// appended automatically; callers should not include it.
func NewWeightedDatabase(transactions [][]Cell, weights []int64) (*MemDatabase, error) {
	if len(transactions) != len(weights) {
		return nil, errors.New("sequoia: transactions and weights length mismatch")
	}
	wrapped := make([][]Cell, len(transactions))
	for i, tx := range transactions {
		wrapped[i] = make([]Cell, len(tx)+1)
		copy(wrapped[i], tx)
		wrapped[i][len(tx)] = Cell{Item: Sentinel}
	}
	return newMemDatabase(wrapped, weights)
}

func newMemDatabase(wrapped [][]Cell, weights []int64) (*MemDatabase, error) {
	db := &MemDatabase{txns: wrapped, weights: append([]int64(nil), weights...)}
	for j, tx := range wrapped {
		if weights[j] < 1 {
			return nil, errors.Errorf("sequoia: transaction %d has weight < 1", j)
		}
		db.w += weights[j]
		size := len(tx) - 1
		db.extent += size
		for _, c := range tx[:size] {
			if int(c.Item) >= db.m {
				db.m = int(c.Item) + 1
			}
		}
	}
	return db, nil
}

func (d *MemDatabase) M() int             { return d.m }
func (d *MemDatabase) N() int             { return len(d.txns) }
func (d *MemDatabase) W() int64           { return d.w }
func (d *MemDatabase) Extent() int        { return d.extent }
func (d *MemDatabase) Weight(j int) int64 { return d.weights[j] }
func (d *MemDatabase) Items(j int) []Cell { return d.txns[j] }
func (d *MemDatabase) Size(j int) int     { return len(d.txns[j]) - 1 }
