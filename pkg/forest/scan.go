package forest

import "github.com/tidwall/btree"

// Iter yields the SPOG quads matching a pattern, in the key order of the
// index the scan was dispatched to. It is finite and not restartable;
// issue a fresh scan to iterate again.
type Iter[I Identifier] struct {
	it            btree.IterG[Key[I]]
	order         Order
	low, high     Key[I]
	residual      Key[I]
	residualBound [4]bool

	cur      Quad[I]
	started  bool
	done     bool
	released bool
}

// Next advances to the next matching quad. It returns false once the
// range is exhausted, after which Quad must not be called.
func (s *Iter[I]) Next() bool {
	if s.done {
		return false
	}
	for {
		var valid bool
		if !s.started {
			s.started = true
			valid = s.it.Seek(s.low)
		} else {
			valid = s.it.Next()
		}
		if !valid {
			s.finish()
			return false
		}

		k := s.it.Item()
		if s.high.Less(k) {
			s.finish()
			return false
		}
		if k.matches(s.residual, s.residualBound) {
			s.cur = FromKey(s.order, k)
			return true
		}
	}
}

// Quad returns the quad at the current position. Valid only after a Next
// call that returned true.
func (s *Iter[I]) Quad() Quad[I] {
	return s.cur
}

// Close releases the underlying range iterator. It is safe to call more
// than once; an exhausted iterator releases itself.
func (s *Iter[I]) Close() {
	s.finish()
}

func (s *Iter[I]) finish() {
	s.done = true
	if !s.released {
		s.released = true
		s.it.Release()
	}
}

// Collect drains the iterator into a slice, closing it.
func (s *Iter[I]) Collect() []Quad[I] {
	var quads []Quad[I]
	for s.Next() {
		quads = append(quads, s.Quad())
	}
	return quads
}
