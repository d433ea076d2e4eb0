package sequoia

import "github.com/gitrdm/sequoia/internal/arena"

// sumWeights fills wgts[0..L] with Σ occ.wgt·occ.pos[k]->wgt over the
// occurrences in oxs, the weighted-flavor accumulator described in
// spec.md §4.6. The reporter divides by the pattern's support to obtain
// the mean.
func sumWeights(oxs []arena.OccurrenceExtension, l int, wgts []float64) {
	for k := 0; k <= l; k++ {
		wgts[k] = 0
	}
	for _, x := range oxs {
		occ := x.Occ
		w := float64(occ.Wgt)
		for k := 0; k <= l; k++ {
			wgts[k] += w * occ.Items[occ.Pos[k]].Wgt
		}
	}
}
