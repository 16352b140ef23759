package forest

import "github.com/tidwall/btree"

// lazySet pairs an order with an optional sorted container of keys. It is
// created either materialized (with an empty container) or unmaterialized
// (container absent); an unmaterialized set transitions to materialized
// exactly once, via materializeFrom, and never reverts.
//
// Mutating operations report a second boolean that is false while the set
// is unmaterialized, mirroring the forest contract that lazy sets are not
// applicable until first use.
type lazySet[I Identifier] struct {
	order Order
	tree  *btree.BTreeG[Key[I]]
}

func newLazySet[I Identifier](o Order, materialized bool) *lazySet[I] {
	s := &lazySet[I]{order: o}
	if materialized {
		s.tree = newKeyTree[I]()
	}
	return s
}

// The model is single-threaded and cooperative, so the container never
// needs internal locking.
func newKeyTree[I Identifier]() *btree.BTreeG[Key[I]] {
	return btree.NewBTreeGOptions(Key[I].Less, btree.Options{NoLocks: true})
}

func (s *lazySet[I]) exists() bool {
	return s.tree != nil
}

// materializeFrom fills the set once from an iterator of SPOG quads.
// The first call wins; on an already materialized set it is a no-op and
// the iterator is left untouched.
func (s *lazySet[I]) materializeFrom(src *Iter[I]) {
	if s.tree != nil {
		return
	}
	tree := newKeyTree[I]()
	for src.Next() {
		tree.Set(ToKey(s.order, src.Quad()))
	}
	src.Close()
	s.tree = tree
}

// insert adds the quad's key. It reports whether the key was new, and
// false applicability on an unmaterialized set.
func (s *lazySet[I]) insert(q Quad[I]) (wasNew, ok bool) {
	if s.tree == nil {
		return false, false
	}
	_, replaced := s.tree.Set(ToKey(s.order, q))
	return !replaced, true
}

// delete removes the quad's key. It reports whether the key was present,
// and false applicability on an unmaterialized set.
func (s *lazySet[I]) delete(q Quad[I]) (wasPresent, ok bool) {
	if s.tree == nil {
		return false, false
	}
	_, deleted := s.tree.Delete(ToKey(s.order, q))
	return deleted, true
}

func (s *lazySet[I]) contains(q Quad[I]) bool {
	if s.tree == nil {
		return false
	}
	_, found := s.tree.Get(ToKey(s.order, q))
	return found
}

func (s *lazySet[I]) size() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// scan returns an iterator over the quads matching the pattern, emitted
// in this set's key order. The caller must not mutate the forest while
// the iterator is live. The set must be materialized.
func (s *lazySet[I]) scan(p Pattern[I]) *Iter[I] {
	low, high, residual, residualBound := Range(s.order, p)
	it := s.tree.Iter()
	return &Iter[I]{
		it:            it,
		order:         s.order,
		low:           low,
		high:          high,
		residual:      residual,
		residualBound: residualBound,
	}
}
