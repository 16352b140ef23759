package forest

// Binary operations between two forests. Each first looks for a pair of
// materialized sets sharing an order; two same-order scans then walk the
// operation as a linear merge. Without a shared order, intersection,
// difference and containment fall back to iterating one primary and
// probing the other; union drains both primaries into the result.
//
// Result forests duplicate the receiver's structural shape (same order
// lists, lazy sets unmaterialized); the operation feeds their primary.

// Union returns a forest holding every quad of f or other.
func (f *Forest[I]) Union(other *Forest[I]) *Forest[I] {
	res := f.shape()

	a, b, order, ok := sharedOrder(f, other)
	if !ok {
		drainInto(f.sets[0].scan(All[I]()), res)
		drainInto(other.sets[0].scan(All[I]()), res)
		return res
	}

	ca := newCursor(a.scan(All[I]()))
	cb := newCursor(b.scan(All[I]()))
	for ca.ok && cb.ok {
		switch Compare(order, ca.cur, cb.cur) {
		case -1:
			res.Insert(ca.cur)
			ca.advance()
		case 1:
			res.Insert(cb.cur)
			cb.advance()
		default:
			res.Insert(ca.cur)
			ca.advance()
			cb.advance()
		}
	}
	for ; ca.ok; ca.advance() {
		res.Insert(ca.cur)
	}
	for ; cb.ok; cb.advance() {
		res.Insert(cb.cur)
	}
	return res
}

// Intersection returns a forest holding the quads present in both f and
// other.
func (f *Forest[I]) Intersection(other *Forest[I]) *Forest[I] {
	res := f.shape()

	a, b, order, ok := sharedOrder(f, other)
	if !ok {
		for it := f.sets[0].scan(All[I]()); it.Next(); {
			if other.Contains(it.Quad()) {
				res.Insert(it.Quad())
			}
		}
		return res
	}

	ca := newCursor(a.scan(All[I]()))
	cb := newCursor(b.scan(All[I]()))
	for ca.ok && cb.ok {
		switch Compare(order, ca.cur, cb.cur) {
		case -1:
			ca.advance()
		case 1:
			cb.advance()
		default:
			res.Insert(ca.cur)
			ca.advance()
			cb.advance()
		}
	}
	ca.close()
	cb.close()
	return res
}

// Difference returns a forest holding the quads of f that are not in
// other.
func (f *Forest[I]) Difference(other *Forest[I]) *Forest[I] {
	res := f.shape()

	a, b, order, ok := sharedOrder(f, other)
	if !ok {
		for it := f.sets[0].scan(All[I]()); it.Next(); {
			if !other.Contains(it.Quad()) {
				res.Insert(it.Quad())
			}
		}
		return res
	}

	ca := newCursor(a.scan(All[I]()))
	cb := newCursor(b.scan(All[I]()))
	for ca.ok && cb.ok {
		switch Compare(order, ca.cur, cb.cur) {
		case -1:
			res.Insert(ca.cur)
			ca.advance()
		case 1:
			cb.advance()
		default:
			ca.advance()
			cb.advance()
		}
	}
	for ; ca.ok; ca.advance() {
		res.Insert(ca.cur)
	}
	cb.close()
	return res
}

// ContainsSet reports whether every quad of other is in f.
func (f *Forest[I]) ContainsSet(other *Forest[I]) bool {
	a, b, order, ok := sharedOrder(f, other)
	if !ok {
		for it := other.sets[0].scan(All[I]()); it.Next(); {
			if !f.Contains(it.Quad()) {
				it.Close()
				return false
			}
		}
		return true
	}

	ca := newCursor(a.scan(All[I]()))
	cb := newCursor(b.scan(All[I]()))
	for cb.ok {
		for ca.ok && Compare(order, ca.cur, cb.cur) < 0 {
			ca.advance()
		}
		if !ca.ok || Compare(order, ca.cur, cb.cur) != 0 {
			ca.close()
			cb.close()
			return false
		}
		cb.advance()
	}
	ca.close()
	return true
}

// shape returns an empty forest with the same order lists as f, all
// non-default sets unmaterialized.
func (f *Forest[I]) shape() *Forest[I] {
	defaults, lazies := f.Orders()
	res, err := New[I](defaults, lazies)
	if err != nil {
		// The receiver's orders were validated at its own construction.
		panic(err)
	}
	return res
}

// sharedOrder finds a pair of materialized sets with the same order, one
// from each forest.
func sharedOrder[I Identifier](f, g *Forest[I]) (a, b *lazySet[I], o Order, ok bool) {
	for _, sa := range f.sets {
		if !sa.exists() {
			continue
		}
		for _, sb := range g.sets {
			if sb.exists() && sb.order == sa.order {
				return sa, sb, sa.order, true
			}
		}
	}
	return nil, nil, Order{}, false
}

func drainInto[I Identifier](it *Iter[I], dst *Forest[I]) {
	for it.Next() {
		dst.Insert(it.Quad())
	}
}

// cursor is a one-item lookahead over a scan, for merge walks.
type cursor[I Identifier] struct {
	it  *Iter[I]
	cur Quad[I]
	ok  bool
}

func newCursor[I Identifier](it *Iter[I]) *cursor[I] {
	c := &cursor[I]{it: it}
	c.advance()
	return c
}

func (c *cursor[I]) advance() {
	c.ok = c.it.Next()
	if c.ok {
		c.cur = c.it.Quad()
	}
}

func (c *cursor[I]) close() {
	c.it.Close()
}
