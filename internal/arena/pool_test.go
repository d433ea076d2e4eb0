package arena

import "testing"

func TestPoolReusesMatchingShape(t *testing.T) {
	var hits, misses int
	p := NewPool(func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	})

	a := p.Get(5, 10)
	p.Put(a)
	b := p.Get(5, 8)

	if misses != 1 {
		t.Errorf("misses = %d, want 1", misses)
	}
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if b != a {
		t.Error("expected the second Get to reuse the returned arena")
	}
	if len(b.Flat) != 8 {
		t.Errorf("Flat len = %d, want 8", len(b.Flat))
	}
}

func TestPoolMissesOnShapeMismatch(t *testing.T) {
	p := NewPool(nil)
	a := p.Get(5, 10)
	p.Put(a)

	stats := p.Snapshot()
	if stats.Misses != 1 || stats.Returns != 1 {
		t.Fatalf("stats = %+v", stats)
	}

	b := p.Get(6, 10) // different bucket count: no match
	if b == a {
		t.Error("expected a fresh allocation for a mismatched bucket count")
	}
	stats = p.Snapshot()
	if stats.Misses != 2 {
		t.Errorf("Misses = %d, want 2", stats.Misses)
	}
}
