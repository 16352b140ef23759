// Package forest implements an in-memory store for quads of identifiers
// kept in several sort orders at once, so that any pattern of concrete
// components and wildcards can be answered by a contiguous range scan
// over the best-fitting index. Indexes beyond the always-materialized
// ones are built lazily, on first need, from the primary.
//
// The package is single-threaded: interleaving mutation with a live scan
// on the same forest is not allowed.
package forest

// Forest is a collection of lazy ordered sets, one per order given to New
// (six in the default shape), over one logical set of quads. The first default-materialized set is the primary: it is
// authoritative for membership and size, and it is the source every lazy
// set is filled from on first use. All materialized sets hold the same
// quads at all times.
type Forest[I Identifier] struct {
	// sets[:defaults] are always materialized; sets[0] is the primary.
	sets     []*lazySet[I]
	defaults int
}

// New builds a forest from two order lists: defaults are materialized
// (empty) at construction, lazies on first need. The first default is the
// primary. It returns a construction error if defaults is empty, any
// order is invalid, or an order appears twice across the combined list.
func New[I Identifier](defaults, lazies []Order) (*Forest[I], error) {
	if len(defaults) == 0 {
		return nil, ErrNoDefaults
	}

	f := &Forest[I]{
		sets:     make([]*lazySet[I], 0, len(defaults)+len(lazies)),
		defaults: len(defaults),
	}
	seen := make(map[Order]bool, len(defaults)+len(lazies))
	for _, o := range defaults {
		if err := checkOrder(o, seen); err != nil {
			return nil, err
		}
		f.sets = append(f.sets, newLazySet[I](o, true))
	}
	for _, o := range lazies {
		if err := checkOrder(o, seen); err != nil {
			return nil, err
		}
		f.sets = append(f.sets, newLazySet[I](o, false))
	}
	return f, nil
}

func checkOrder(o Order, seen map[Order]bool) error {
	if _, err := OrderOf(o.Positions()); err != nil {
		return err
	}
	if seen[o] {
		return ErrDuplicateOrder
	}
	seen[o] = true
	return nil
}

// Default returns a forest with the standard shape: OGPS materialized,
// and SPOG, GPSO, POGS, GSPO, OSGP lazy. These six orders together cover
// every pattern shape (s?, p?, o?, g?) with an optimal prefix.
func Default[I Identifier]() *Forest[I] {
	f, err := New[I](
		[]Order{OGPS},
		[]Order{SPOG, GPSO, POGS, GSPO, OSGP},
	)
	if err != nil {
		panic(err)
	}
	return f
}

// NewAnti returns the default forest shape with one lazy index already
// materialized: the one scoring the lowest conformance for the pattern
// mask (s, p, o, g), ties going to the earliest. Higher layers use it to
// force index diversity away from a known query shape.
func NewAnti[I Identifier](s, p, o, g bool) *Forest[I] {
	f := Default[I]()
	bound := [4]bool{s, p, o, g}

	worst := -1
	worstScore := 0
	for i := f.defaults; i < len(f.sets); i++ {
		score := f.sets[i].order.IndexConformance(bound)
		if worst < 0 || score < worstScore {
			worst = i
			worstScore = score
		}
	}
	f.materialize(f.sets[worst])
	return f
}

// Insert adds a quad and reports whether it was new. A quad already
// present leaves the forest untouched. Lazy sets that are not yet
// materialized are unaffected.
func (f *Forest[I]) Insert(q Quad[I]) bool {
	wasNew, _ := f.sets[0].insert(q)
	if !wasNew {
		return false
	}
	for _, s := range f.sets[1:] {
		s.insert(q)
	}
	return true
}

// Delete removes a quad and reports whether it was present. A successful
// delete removes the quad from every materialized set.
func (f *Forest[I]) Delete(q Quad[I]) bool {
	wasPresent, _ := f.sets[0].delete(q)
	if !wasPresent {
		return false
	}
	for _, s := range f.sets[1:] {
		s.delete(q)
	}
	return true
}

// Contains reports whether the quad is in the forest.
func (f *Forest[I]) Contains(q Quad[I]) bool {
	return f.sets[0].contains(q)
}

// Len returns the number of quads in the forest.
func (f *Forest[I]) Len() int {
	return f.sets[0].size()
}

// Scan returns an iterator over the quads matching the pattern, served
// by the best-conformant index. If the best index is lazy and not yet
// materialized it is built first, from a full scan of the primary. The
// forest must not be mutated while the iterator is live.
func (f *Forest[I]) Scan(p Pattern[I]) *Iter[I] {
	best := f.bestIndex(p, true)
	if !best.exists() {
		f.materialize(best)
	}
	return best.scan(p)
}

// ScanUnamortized is Scan restricted to already materialized indexes: it
// never pays index-construction cost, at the price of a possibly less
// selective range.
func (f *Forest[I]) ScanUnamortized(p Pattern[I]) *Iter[I] {
	return f.bestIndex(p, false).scan(p)
}

// EnsureIndexFor materializes the best index for the pattern, if it is
// not built yet, without returning results.
func (f *Forest[I]) EnsureIndexFor(p Pattern[I]) {
	best := f.bestIndex(p, true)
	if !best.exists() {
		f.materialize(best)
	}
}

// MaterializedIndexCount returns the number of currently materialized
// sets. It is at least the number of defaults and grows as lazy indexes
// are built.
func (f *Forest[I]) MaterializedIndexCount() int {
	n := 0
	for _, s := range f.sets {
		if s.exists() {
			n++
		}
	}
	return n
}

// bestIndex picks the set with the highest index conformance for the
// pattern. With allowBuild, unmaterialized sets compete on their score;
// without it only materialized sets are candidates. Ties prefer a
// materialized set over an unmaterialized one, then the earliest set.
func (f *Forest[I]) bestIndex(p Pattern[I], allowBuild bool) *lazySet[I] {
	bound := p.mask()

	var best *lazySet[I]
	bestScore := -1
	for _, s := range f.sets {
		if !allowBuild && !s.exists() {
			continue
		}
		score := s.order.IndexConformance(bound)
		if score > bestScore || (score == bestScore && s.exists() && !best.exists()) {
			best = s
			bestScore = score
		}
	}
	return best
}

// materialize builds a lazy set from a snapshot of the primary.
func (f *Forest[I]) materialize(s *lazySet[I]) {
	s.materializeFrom(f.sets[0].scan(All[I]()))
}

// Orders returns the forest's orders, defaults first, primary at index 0.
func (f *Forest[I]) Orders() (defaults, lazies []Order) {
	for i, s := range f.sets {
		if i < f.defaults {
			defaults = append(defaults, s.order)
		} else {
			lazies = append(lazies, s.order)
		}
	}
	return defaults, lazies
}
