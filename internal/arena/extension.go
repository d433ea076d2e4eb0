package arena

import "github.com/pkg/errors"

// OccurrenceExtension is a candidate one-step extension of a specific
// occurrence by a specific item: Ref names the extension position inside
// Occ.Items (strictly after the occurrence's current cursor).
type OccurrenceExtension struct {
	Ref int
	Occ *Occurrence
}

// Bucket groups every OccurrenceExtension whose referenced cell names the
// same item. Oxs is a subslice of the owning ExtArena's flat array.
type Bucket struct {
	Supp  int64
	Count int
	Oxs   []OccurrenceExtension
}

// ExtArena is the per-recursion allocation: one Bucket per item and the
// flat OccurrenceExtension array they partition.
type ExtArena struct {
	Buckets []Bucket
	Flat    []OccurrenceExtension
}

func checkBudget(m, z int, maxBytes int64) error {
	if maxBytes <= 0 {
		return nil
	}
	const bucketSize, extSize = 40, 24
	if int64(m)*bucketSize+int64(z)*extSize > maxBytes {
		return errors.Wrap(ErrOutOfMemory, "extension arena")
	}
	return nil
}

// SeenSet dedupes items within one occurrence's scan so that an item
// repeated inside a single occurrence (sequences, unlike itemsets, allow
// this) contributes at most once to the occurrence's extension bucket.
// Support must count occurrences, never positions.
type SeenSet struct {
	seen    []bool
	touched []int
}

// NewSeenSet allocates a SeenSet sized for m items.
func NewSeenSet(m int) *SeenSet {
	return &SeenSet{seen: make([]bool, m)}
}

// MarkIfNew reports whether item is new since the last Reset, marking it
// seen as a side effect.
func (s *SeenSet) MarkIfNew(item int) bool {
	if s.seen[item] {
		return false
	}
	s.seen[item] = true
	s.touched = append(s.touched, item)
	return true
}

// Reset clears every item marked since the previous Reset, in
// O(len(touched)) rather than O(m).
func (s *SeenSet) Reset() {
	for _, v := range s.touched {
		s.seen[v] = false
	}
	s.touched = s.touched[:0]
}

// BuildInitialExtensions performs the three-pass layout of §4.3 over the
// full (un-projected) occurrence set.
func BuildInitialExtensions(db Source, occs []Occurrence, maxBytes int64) (*ExtArena, error) {
	m := db.M()
	extent := db.Extent()
	if err := checkBudget(m, extent, maxBytes); err != nil {
		return nil, err
	}

	a := &ExtArena{
		Buckets: make([]Bucket, m),
		Flat:    make([]OccurrenceExtension, extent),
	}

	seen := NewSeenSet(m)

	// counting pass
	counts := make([]int, m)
	for j := range occs {
		items := occs[j].Items
		seen.Reset()
		for s := 0; !items[s].End(); s++ {
			if seen.MarkIfNew(int(items[s].Item)) {
				counts[items[s].Item]++
			}
		}
	}

	// layout pass
	offset := 0
	for i := 0; i < m; i++ {
		c := counts[i]
		a.Buckets[i].Oxs = a.Flat[offset:offset:offset+c]
		offset += c
	}

	// fill pass: first occurrence of each item per transaction only.
	for j := range occs {
		items := occs[j].Items
		seen.Reset()
		for s := 0; !items[s].End(); s++ {
			it := items[s].Item
			if !seen.MarkIfNew(int(it)) {
				continue
			}
			b := &a.Buckets[it]
			b.Oxs = append(b.Oxs, OccurrenceExtension{Ref: s, Occ: &occs[j]})
			b.Supp += occs[j].Wgt
			b.Count++
		}
	}
	return a, nil
}

// FillConditional repartitions the strict right-tails of parentOxs (the
// occurrence extensions that produced the prefix about to be extended)
// into dst, reusing dst's backing buckets/flat storage and the caller's
// scratch counts slice (len == len(dst.Buckets)) and seen set. It returns
// z', the total number of tail positions visited after dedup.
//
// Each parent occurrence extension contributes at most one entry per
// item bucket — the leftmost tail occurrence of that item — so a
// repeated item within one occurrence's tail never inflates its support.
//
// dst must have been sized with capacity >= the worst-case tail count
// for the frame (the frame's own z), which the projection engine
// guarantees never grows across a descent.
func FillConditional(dst *ExtArena, parentOxs []OccurrenceExtension, counts []int, seen *SeenSet) int {
	m := len(dst.Buckets)
	for i := 0; i < m; i++ {
		counts[i] = 0
		dst.Buckets[i].Supp = 0
		dst.Buckets[i].Count = 0
	}

	for _, x := range parentOxs {
		items := x.Occ.Items
		seen.Reset()
		for p := x.Ref + 1; !items[p].End(); p++ {
			if seen.MarkIfNew(int(items[p].Item)) {
				counts[items[p].Item]++
			}
		}
	}

	offset := 0
	for i := 0; i < m; i++ {
		c := counts[i]
		dst.Buckets[i].Oxs = dst.Flat[offset:offset:offset+c]
		offset += c
	}

	total := 0
	for _, x := range parentOxs {
		items := x.Occ.Items
		seen.Reset()
		for p := x.Ref + 1; !items[p].End(); p++ {
			it := items[p].Item
			if !seen.MarkIfNew(int(it)) {
				continue
			}
			b := &dst.Buckets[it]
			b.Oxs = append(b.Oxs, OccurrenceExtension{Ref: p, Occ: x.Occ})
			b.Supp += x.Occ.Wgt
			b.Count++
			total++
		}
	}
	return total
}
