package forest

import "testing"

func TestLazySetLifecycle(t *testing.T) {
	s := newLazySet[uint32](SPOG, false)
	if s.exists() {
		t.Fatal("lazy set should start unmaterialized")
	}
	if _, ok := s.insert(Quad[uint32]{1, 2, 3, 4}); ok {
		t.Error("insert on an unmaterialized set should not be applicable")
	}
	if _, ok := s.delete(Quad[uint32]{1, 2, 3, 4}); ok {
		t.Error("delete on an unmaterialized set should not be applicable")
	}

	src := newLazySet[uint32](OGPS, true)
	src.insert(Quad[uint32]{1, 2, 3, 4})
	src.insert(Quad[uint32]{5, 6, 7, 8})

	s.materializeFrom(src.scan(All[uint32]()))
	if !s.exists() {
		t.Fatal("materializeFrom should materialize the set")
	}
	if s.size() != 2 {
		t.Fatalf("expected 2 keys after materialization, got %d", s.size())
	}

	// A second materialization attempt must not overwrite the contents.
	empty := newLazySet[uint32](OGPS, true)
	s.materializeFrom(empty.scan(All[uint32]()))
	if s.size() != 2 {
		t.Errorf("re-materialization overwrote the set, size now %d", s.size())
	}

	if wasNew, ok := s.insert(Quad[uint32]{1, 2, 3, 4}); !ok || wasNew {
		t.Error("duplicate insert should report not-new")
	}
	if !s.contains(Quad[uint32]{5, 6, 7, 8}) {
		t.Error("expected materialized content to be queryable")
	}
	if wasPresent, ok := s.delete(Quad[uint32]{5, 6, 7, 8}); !ok || !wasPresent {
		t.Error("delete of present quad should report present")
	}
	if s.size() != 1 {
		t.Errorf("expected size 1 after delete, got %d", s.size())
	}
}

func TestScanEmitsInIndexOrder(t *testing.T) {
	s := newLazySet[uint32](GSPO, true)
	quads := []Quad[uint32]{
		{9, 1, 1, 2}, {1, 1, 1, 2}, {5, 1, 1, 1}, {3, 1, 1, 3},
	}
	for _, q := range quads {
		s.insert(q)
	}

	var prev Quad[uint32]
	first := true
	for it := s.scan(All[uint32]()); it.Next(); {
		q := it.Quad()
		if !first && Compare(GSPO, prev, q) >= 0 {
			t.Errorf("quads out of GSPO order: %v before %v", prev, q)
		}
		prev, first = q, false
	}
}
