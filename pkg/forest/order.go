package forest

// Order is a permutation of the four quad component positions. A set
// sorted under an order keeps its keys in lexicographic order of the
// permuted components, so a pattern binding a prefix of the permutation
// reduces to a contiguous key range.
//
// Orders are named by concatenating the component letters in storage
// order: GSPO stores the graph name first, then subject, predicate and
// object, and corresponds to the position array [3, 0, 1, 2].
type Order struct {
	// perm[slot] is the SPOG position stored at that key slot.
	perm [4]uint8
	// inv[pos] is the key slot holding SPOG position pos.
	inv [4]uint8
}

// The six orders of the default forest. Together they cover every
// pattern shape (s?, p?, o?, g?) with an optimal prefix.
var (
	SPOG = mustOrder([4]int{Subject, Predicate, Object, Graph})
	OGPS = mustOrder([4]int{Object, Graph, Predicate, Subject})
	GPSO = mustOrder([4]int{Graph, Predicate, Subject, Object})
	POGS = mustOrder([4]int{Predicate, Object, Graph, Subject})
	GSPO = mustOrder([4]int{Graph, Subject, Predicate, Object})
	OSGP = mustOrder([4]int{Object, Subject, Graph, Predicate})
)

// OrderOf builds an Order from four SPOG positions given in storage
// order. It returns ErrNotPermutation unless each of the four positions
// appears exactly once.
func OrderOf(positions [4]int) (Order, error) {
	var seen [4]bool
	for _, p := range positions {
		if p < 0 || p > 3 || seen[p] {
			return Order{}, ErrNotPermutation
		}
		seen[p] = true
	}

	var o Order
	for slot, p := range positions {
		o.perm[slot] = uint8(p)
		o.inv[p] = uint8(slot)
	}
	return o, nil
}

func mustOrder(positions [4]int) Order {
	o, err := OrderOf(positions)
	if err != nil {
		panic(err)
	}
	return o
}

// AllOrders returns the 24 valid orders, SPOG first, in lexicographic
// order of their position arrays.
func AllOrders() []Order {
	orders := make([]Order, 0, 24)
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 4; c++ {
				d := 6 - a - b - c
				o, err := OrderOf([4]int{a, b, c, d})
				if err != nil {
					continue
				}
				orders = append(orders, o)
			}
		}
	}
	return orders
}

// Positions returns the SPOG position stored at each key slot.
func (o Order) Positions() [4]int {
	return [4]int{int(o.perm[0]), int(o.perm[1]), int(o.perm[2]), int(o.perm[3])}
}

// String returns the canonical four-letter name, e.g. "GSPO".
func (o Order) String() string {
	const letters = "SPOG"
	return string([]byte{
		letters[o.perm[0]],
		letters[o.perm[1]],
		letters[o.perm[2]],
		letters[o.perm[3]],
	})
}

// IndexConformance returns the length of the leading contiguous prefix of
// the order's permutation whose positions the pattern binds. It is the
// number of components a range scan under this order can pin exactly, so
// higher means better suited to answer the pattern.
func (o Order) IndexConformance(bound [4]bool) int {
	n := 0
	for _, pos := range o.perm {
		if !bound[pos] {
			break
		}
		n++
	}
	return n
}

// Compare compares two quads in the order's sense: lexicographically on
// the components visited in permutation sequence. It returns -1, 0 or 1.
func Compare[I Identifier](o Order, a, b Quad[I]) int {
	for _, pos := range o.perm {
		switch {
		case a[pos] < b[pos]:
			return -1
		case a[pos] > b[pos]:
			return 1
		}
	}
	return 0
}

// ToKey permutes a quad into the order's storage layout.
func ToKey[I Identifier](o Order, q Quad[I]) Key[I] {
	return Key[I]{
		q[o.perm[0]],
		q[o.perm[1]],
		q[o.perm[2]],
		q[o.perm[3]],
	}
}

// FromKey recovers the canonical SPOG quad from a key of this order.
func FromKey[I Identifier](o Order, k Key[I]) Quad[I] {
	return Quad[I]{
		k[o.inv[0]],
		k[o.inv[1]],
		k[o.inv[2]],
		k[o.inv[3]],
	}
}

// Range reduces a pattern to an inclusive key range plus a residual
// filter, both in this order's key layout. Bound positions forming a
// prefix of the permutation pin the corresponding key slots in both
// bounds; from the first wildcard on, low takes MIN and high takes MAX.
// Bound positions after the first wildcard cannot be encoded in the
// bounds and are kept in the residual, which every key in the range must
// still satisfy.
func Range[I Identifier](o Order, p Pattern[I]) (low, high Key[I], residual Key[I], residualBound [4]bool) {
	min, max := Limits[I]()
	low = Key[I]{min, min, min, min}
	high = Key[I]{max, max, max, max}

	prefix := true
	for slot, pos := range o.perm {
		v, bound := p[pos].Value()
		if prefix && bound {
			low[slot] = v
			high[slot] = v
			continue
		}
		prefix = false
		if bound {
			residual[slot] = v
			residualBound[slot] = true
		}
	}
	return low, high, residual, residualBound
}
