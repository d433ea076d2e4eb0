package arena

import "github.com/pkg/errors"

// ErrOutOfMemory is returned when an arena allocation would exceed the
// configured byte budget.
var ErrOutOfMemory = errors.New("arena: out of memory")

// Occurrence represents one way the current prefix matches one
// transaction: a borrowed handle to the transaction's items plus the
// positions, into that array, that the prefix's items were matched at.
//
// Pos is preallocated to the transaction's size and reused across
// recursion depths: depth L writes Pos[L] on the way down and the write
// is simply abandoned (never read) once the frame that made it returns.
type Occurrence struct {
	Wgt   int64
	Items []Cell
	Pos   []int
}

// OccArena holds every Occurrence and the flat position-cursor storage
// they borrow from: two allocations in all, independent of N.
type OccArena struct {
	Occs []Occurrence
	flat []int
}

// BuildInitial constructs the occurrence arena for the empty prefix: one
// Occurrence per transaction, each owning a non-overlapping slice of the
// flat cursor array sized to that transaction's item count.
func BuildInitial(db Source, maxBytes int64) (*OccArena, error) {
	n := db.N()
	extent := db.Extent()
	if maxBytes > 0 {
		const occSize, intSize = 40, 8 // approximate, for the budget check only
		if int64(n)*occSize+int64(extent)*intSize > maxBytes {
			return nil, errors.Wrap(ErrOutOfMemory, "occurrence arena")
		}
	}

	a := &OccArena{
		Occs: make([]Occurrence, n),
		flat: make([]int, extent),
	}
	offset := 0
	for j := 0; j < n; j++ {
		size := db.Size(j)
		a.Occs[j] = Occurrence{
			Wgt:   db.Weight(j),
			Items: db.Items(j),
			Pos:   a.flat[offset : offset+size : offset+size],
		}
		offset += size
	}
	return a, nil
}
