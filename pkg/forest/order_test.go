package forest

import "testing"

func TestOrderOfRejectsNonPermutations(t *testing.T) {
	bad := [][4]int{
		{0, 0, 1, 2},
		{0, 1, 2, 4},
		{-1, 1, 2, 3},
		{3, 3, 3, 3},
	}
	for _, positions := range bad {
		if _, err := OrderOf(positions); err != ErrNotPermutation {
			t.Errorf("OrderOf(%v): expected ErrNotPermutation, got %v", positions, err)
		}
	}

	if _, err := OrderOf([4]int{3, 0, 1, 2}); err != nil {
		t.Errorf("OrderOf(GSPO positions) failed: %v", err)
	}
}

func TestOrderNames(t *testing.T) {
	cases := map[string]Order{
		"SPOG": SPOG,
		"OGPS": OGPS,
		"GPSO": GPSO,
		"POGS": POGS,
		"GSPO": GSPO,
		"OSGP": OSGP,
	}
	for want, o := range cases {
		if got := o.String(); got != want {
			t.Errorf("expected name %s, got %s", want, got)
		}
	}

	if got := GSPO.Positions(); got != [4]int{3, 0, 1, 2} {
		t.Errorf("GSPO positions: expected [3 0 1 2], got %v", got)
	}
}

func TestAllOrdersEnumerates24(t *testing.T) {
	orders := AllOrders()
	if len(orders) != 24 {
		t.Fatalf("expected 24 orders, got %d", len(orders))
	}

	seen := make(map[Order]bool)
	for _, o := range orders {
		if seen[o] {
			t.Errorf("order %s listed twice", o)
		}
		seen[o] = true
	}
	if orders[0] != SPOG {
		t.Errorf("expected SPOG first, got %s", orders[0])
	}
}

func TestKeyRoundTrip(t *testing.T) {
	quads := []Quad[uint32]{
		{10, 20, 30, 40},
		{0, 0, 0, 0},
		{4294967295, 0, 4294967295, 1},
		{1, 2, 3, 4},
	}
	for _, o := range AllOrders() {
		for _, q := range quads {
			if got := FromKey(o, ToKey(o, q)); got != q {
				t.Errorf("%s: round trip of %v gave %v", o, q, got)
			}
		}
	}
}

func TestCompareAgreesWithKeyOrder(t *testing.T) {
	quads := []Quad[uint32]{
		{10, 20, 30, 40},
		{10, 20, 30, 41},
		{10, 21, 30, 40},
		{11, 20, 30, 40},
		{10, 20, 29, 40},
	}
	for _, o := range AllOrders() {
		for _, a := range quads {
			for _, b := range quads {
				ka, kb := ToKey(o, a), ToKey(o, b)
				var lex int
				switch {
				case ka.Less(kb):
					lex = -1
				case kb.Less(ka):
					lex = 1
				}
				if got := Compare(o, a, b); got != lex {
					t.Errorf("%s: Compare(%v, %v) = %d, key order says %d", o, a, b, got, lex)
				}
			}
		}
	}
}

func TestIndexConformance(t *testing.T) {
	cases := []struct {
		order Order
		bound [4]bool
		want  int
	}{
		{SPOG, [4]bool{true, true, true, true}, 4},
		{SPOG, [4]bool{true, true, false, true}, 2},
		{SPOG, [4]bool{false, true, true, true}, 0},
		{GSPO, [4]bool{true, false, false, true}, 2},
		{GSPO, [4]bool{true, true, true, false}, 0},
		{OGPS, [4]bool{false, false, true, true}, 2},
		{POGS, [4]bool{false, true, false, false}, 1},
	}
	for _, c := range cases {
		if got := c.order.IndexConformance(c.bound); got != c.want {
			t.Errorf("%s conformance for %v: expected %d, got %d", c.order, c.bound, c.want, got)
		}
	}
}

func TestRangeBoundsAndResidual(t *testing.T) {
	// P bound, G bound under GPSO: both are a prefix, no residual.
	p := PatternOf(Any[uint32](), Exactly[uint32](20), Any[uint32](), Exactly[uint32](41))
	low, high, _, residualBound := Range(GPSO, p)
	if low[0] != 41 || high[0] != 41 || low[1] != 20 || high[1] != 20 {
		t.Errorf("GPSO bounds do not pin the G,P prefix: low=%v high=%v", low, high)
	}
	if low[2] != 0 || high[2] != 4294967295 {
		t.Errorf("unbound slots should span MIN..MAX, got low=%v high=%v", low, high)
	}
	if residualBound != [4]bool{} {
		t.Errorf("expected empty residual, got bound mask %v", residualBound)
	}

	// Same pattern under SPOG: S is a wildcard, so P and G survive as
	// residual in their key slots.
	low, high, residual, residualBound := Range(SPOG, p)
	if low != (Key[uint32]{0, 0, 0, 0}) {
		t.Errorf("expected unrestricted low bound, got %v", low)
	}
	max := uint32(4294967295)
	if high != (Key[uint32]{max, max, max, max}) {
		t.Errorf("expected unrestricted high bound, got %v", high)
	}
	if residualBound != [4]bool{false, true, false, true} {
		t.Errorf("expected residual on the P and G slots, got %v", residualBound)
	}
	if residual[1] != 20 || residual[3] != 41 {
		t.Errorf("residual values wrong: %v", residual)
	}
}

func TestLimits(t *testing.T) {
	if min, max := Limits[uint32](); min != 0 || max != 4294967295 {
		t.Errorf("uint32 limits: got %d, %d", min, max)
	}
	if min, max := Limits[uint8](); min != 0 || max != 255 {
		t.Errorf("uint8 limits: got %d, %d", min, max)
	}
	if min, max := Limits[int8](); min != -128 || max != 127 {
		t.Errorf("int8 limits: got %d, %d", min, max)
	}
	if min, max := Limits[int32](); min != -2147483648 || max != 2147483647 {
		t.Errorf("int32 limits: got %d, %d", min, max)
	}
	if min, max := Limits[int64](); min != -9223372036854775808 || max != 9223372036854775807 {
		t.Errorf("int64 limits: got %d, %d", min, max)
	}
}
