package arena

import "testing"

type fakeSource struct {
	m    int
	txns [][]Cell
	wgts []int64
}

func (f *fakeSource) M() int      { return f.m }
func (f *fakeSource) N() int      { return len(f.txns) }
func (f *fakeSource) Extent() int {
	n := 0
	for _, t := range f.txns {
		n += len(t) - 1
	}
	return n
}
func (f *fakeSource) Weight(j int) int64 { return f.wgts[j] }
func (f *fakeSource) Items(j int) []Cell { return f.txns[j] }
func (f *fakeSource) Size(j int) int     { return len(f.txns[j]) - 1 }

func abc() *fakeSource {
	// A=0 B=1 C=2 X=3 Y=4, DB = {ABC:1, AXBC:1, AYBC:1}
	mk := func(items ...int) []Cell {
		cs := make([]Cell, len(items)+1)
		for i, v := range items {
			cs[i] = Cell{Item: Item(v)}
		}
		cs[len(items)] = Cell{Item: Sentinel}
		return cs
	}
	return &fakeSource{
		m: 5,
		txns: [][]Cell{
			mk(0, 1, 2),
			mk(0, 3, 1, 2),
			mk(0, 4, 1, 2),
		},
		wgts: []int64{1, 1, 1},
	}
}

func TestBuildInitial(t *testing.T) {
	db := abc()
	a, err := BuildInitial(db, 0)
	if err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}
	if len(a.Occs) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(a.Occs))
	}
	for j, occ := range a.Occs {
		if len(occ.Pos) != db.Size(j) {
			t.Errorf("occ %d: Pos capacity = %d, want %d", j, len(occ.Pos), db.Size(j))
		}
		if occ.Wgt != 1 {
			t.Errorf("occ %d: Wgt = %d, want 1", j, occ.Wgt)
		}
	}
}

func TestBuildInitialOutOfMemory(t *testing.T) {
	db := abc()
	if _, err := BuildInitial(db, 1); err == nil {
		t.Fatal("expected an out-of-memory error for a 1-byte budget")
	}
}
