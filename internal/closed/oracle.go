// Package closed implements the closedness oracle: given the occurrences
// that produced a just-extended prefix, decide whether some item appears
// inside the same one of the prefix's gaps in every occurrence.
package closed

import "github.com/gitrdm/sequoia/internal/arena"

// Scratch holds the reusable freq/touched buffers the oracle needs. Freq
// must be sized to the database's item count M and start (and return to)
// all zero; Touched is a stack of item ids whose Freq entry was bumped,
// letting the oracle reset in O(touched) rather than O(M).
type Scratch struct {
	Freq    []int
	Touched []int

	seen        []bool
	seenTouched []int
}

// NewScratch allocates a Scratch sized for m items.
func NewScratch(m int) *Scratch {
	return &Scratch{Freq: make([]int, m), seen: make([]bool, m)}
}

// NotClosed reports whether the prefix that produced oxs (occurrences of
// length n, with oxs[i].Occ.Pos[0..n-1] already committed) has some item
// that occurs inside the same one of its n gaps in every occurrence — i.e.
// the prefix is NOT closed.
//
// An item repeated inside a single occurrence's gap counts once: Freq[v]
// tracks the number of distinct occurrences that contain v, not the
// number of positions.
func NotClosed(sc *Scratch, oxs []arena.OccurrenceExtension, n int) bool {
	for k := n - 1; k >= 0; k-- {
		var reached int
		for i, x := range oxs {
			reached = 0
			occ := x.Occ
			lo := 0
			if k > 0 {
				lo = occ.Pos[k-1] + 1
			}
			hi := occ.Pos[k]

			sc.seenTouched = sc.seenTouched[:0]
			for p := lo; p < hi; p++ {
				v := int(occ.Items[p].Item)
				if sc.seen[v] {
					continue
				}
				sc.seen[v] = true
				sc.seenTouched = append(sc.seenTouched, v)
			}
			for _, v := range sc.seenTouched {
				sc.seen[v] = false
				sc.Freq[v]++
				if sc.Freq[v] == 1 {
					sc.Touched = append(sc.Touched, v)
				}
				if sc.Freq[v] > i {
					reached++
				}
			}
			if reached == 0 {
				break
			}
		}

		for _, v := range sc.Touched {
			sc.Freq[v] = 0
		}
		sc.Touched = sc.Touched[:0]

		if reached > 0 {
			return true
		}
	}
	return false
}
