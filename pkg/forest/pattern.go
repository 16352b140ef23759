package forest

// Match is a single position of a Pattern: either a concrete identifier
// or a wildcard. The zero value is a wildcard.
type Match[I Identifier] struct {
	value I
	bound bool
}

// Exactly matches only the given identifier.
func Exactly[I Identifier](v I) Match[I] {
	return Match[I]{value: v, bound: true}
}

// Any matches every identifier.
func Any[I Identifier]() Match[I] {
	return Match[I]{}
}

// Value returns the bound identifier, if any.
func (m Match[I]) Value() (I, bool) {
	return m.value, m.bound
}

// Pattern is a quad pattern in canonical SPOG positions. A wildcard
// position matches any identifier; a bound position matches exactly one.
type Pattern[I Identifier] [4]Match[I]

// All is the pattern with a wildcard in every position.
func All[I Identifier]() Pattern[I] {
	return Pattern[I]{}
}

// PatternOf builds a pattern from one Match per SPOG position.
func PatternOf[I Identifier](s, p, o, g Match[I]) Pattern[I] {
	return Pattern[I]{s, p, o, g}
}

// Matches reports whether the quad satisfies every bound position.
func (p Pattern[I]) Matches(q Quad[I]) bool {
	for i, m := range p {
		if m.bound && q[i] != m.value {
			return false
		}
	}
	return true
}

// mask reports which SPOG positions are bound.
func (p Pattern[I]) mask() [4]bool {
	var bound [4]bool
	for i, m := range p {
		bound[i] = m.bound
	}
	return bound
}
