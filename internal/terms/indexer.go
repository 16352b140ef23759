// Package terms maps RDF terms to the 32-bit identifiers the forest
// stores, and back. Interning is reference counted so identifiers can be
// recycled once no quad uses them.
package terms

import (
	"github.com/zeebo/xxh3"

	"github.com/aleksaelezovic/quadforest/pkg/rdf"
)

// DefaultGraphID is the identifier of the default graph. It is interned
// at construction and never released.
const DefaultGraphID uint32 = 0

// Indexer is a reference-counted interner for RDF terms. Terms are keyed
// by the 128-bit xxh3 hash of their canonical string form, so lookup
// never compares full term structures.
//
// The indexer is single-threaded, like the forest it feeds.
type Indexer struct {
	byHash map[xxh3.Uint128]uint32
	byID   map[uint32]*entry
	free   []uint32
	next   uint32
}

type entry struct {
	term rdf.Term
	hash xxh3.Uint128
	refs int
}

// NewIndexer creates an indexer with the default graph pre-interned as
// identifier 0.
func NewIndexer() *Indexer {
	idx := &Indexer{
		byHash: make(map[xxh3.Uint128]uint32),
		byID:   make(map[uint32]*entry),
		next:   DefaultGraphID + 1,
	}
	dg := rdf.NewDefaultGraph()
	idx.byHash[hashTerm(dg)] = DefaultGraphID
	idx.byID[DefaultGraphID] = &entry{term: dg, hash: hashTerm(dg), refs: 1}
	return idx
}

func hashTerm(t rdf.Term) xxh3.Uint128 {
	return xxh3.HashString128(t.String())
}

// Intern returns the identifier for a term, allocating one on first
// sight, and takes a reference on it.
func (idx *Indexer) Intern(t rdf.Term) uint32 {
	h := hashTerm(t)
	if id, ok := idx.byHash[h]; ok {
		idx.byID[id].refs++
		return id
	}

	var id uint32
	if n := len(idx.free); n > 0 {
		id = idx.free[n-1]
		idx.free = idx.free[:n-1]
	} else {
		id = idx.next
		idx.next++
	}
	idx.byHash[h] = id
	idx.byID[id] = &entry{term: t, hash: h, refs: 1}
	return id
}

// Lookup returns the identifier of an already interned term without
// taking a reference. A term never interned reports false, which lets
// queries for unknown terms short-circuit to an empty result.
func (idx *Indexer) Lookup(t rdf.Term) (uint32, bool) {
	id, ok := idx.byHash[hashTerm(t)]
	return id, ok
}

// Term returns the term behind an identifier.
func (idx *Indexer) Term(id uint32) (rdf.Term, bool) {
	e, ok := idx.byID[id]
	if !ok {
		return nil, false
	}
	return e.term, true
}

// Release drops one reference. When the count reaches zero the
// identifier is recycled for future terms. Releasing the default graph
// is a no-op.
func (idx *Indexer) Release(id uint32) {
	if id == DefaultGraphID {
		return
	}
	e, ok := idx.byID[id]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	delete(idx.byHash, e.hash)
	delete(idx.byID, id)
	idx.free = append(idx.free, id)
}

// Len returns the number of interned terms, the default graph included.
func (idx *Indexer) Len() int {
	return len(idx.byID)
}
