// Package dataset presents the identifier forest as a typed RDF quad
// store: terms go through a reference-counted interner on the way in and
// are translated back on the way out.
package dataset

import (
	"fmt"

	"github.com/aleksaelezovic/quadforest/internal/terms"
	"github.com/aleksaelezovic/quadforest/pkg/forest"
	"github.com/aleksaelezovic/quadforest/pkg/rdf"
)

// Dataset is an in-memory RDF quad store backed by a forest of lazily
// materialized indexes. It is single-threaded; a live Match iterator
// must be exhausted or closed before the dataset is mutated.
type Dataset struct {
	forest *forest.Forest[uint32]
	terms  *terms.Indexer
}

// New creates a dataset over the default forest shape.
func New() *Dataset {
	return NewWithForest(forest.Default[uint32]())
}

// NewWithForest creates a dataset over a caller-shaped forest. The
// forest must be empty.
func NewWithForest(f *forest.Forest[uint32]) *Dataset {
	return &Dataset{
		forest: f,
		terms:  terms.NewIndexer(),
	}
}

// graphOrDefault maps a nil graph to the default graph.
func graphOrDefault(g rdf.Term) rdf.Term {
	if g == nil {
		return rdf.NewDefaultGraph()
	}
	return g
}

// Insert adds a quad and reports whether it was new.
func (d *Dataset) Insert(quad *rdf.Quad) bool {
	ids := forest.Quad[uint32]{
		d.terms.Intern(quad.Subject),
		d.terms.Intern(quad.Predicate),
		d.terms.Intern(quad.Object),
		d.terms.Intern(graphOrDefault(quad.Graph)),
	}
	if d.forest.Insert(ids) {
		return true
	}
	// Already present: give back the references this attempt took.
	for _, id := range ids {
		d.terms.Release(id)
	}
	return false
}

// Delete removes a quad and reports whether it was present. References
// held by the quad's terms are released on success.
func (d *Dataset) Delete(quad *rdf.Quad) bool {
	ids, ok := d.lookup(quad)
	if !ok || !d.forest.Delete(ids) {
		return false
	}
	for _, id := range ids {
		d.terms.Release(id)
	}
	return true
}

// Contains reports whether the quad is in the dataset.
func (d *Dataset) Contains(quad *rdf.Quad) bool {
	ids, ok := d.lookup(quad)
	return ok && d.forest.Contains(ids)
}

// Len returns the number of quads.
func (d *Dataset) Len() int {
	return d.forest.Len()
}

// MaterializedIndexCount exposes the forest's current index count.
func (d *Dataset) MaterializedIndexCount() int {
	return d.forest.MaterializedIndexCount()
}

func (d *Dataset) lookup(quad *rdf.Quad) (forest.Quad[uint32], bool) {
	var ids forest.Quad[uint32]
	for i, t := range []rdf.Term{quad.Subject, quad.Predicate, quad.Object, graphOrDefault(quad.Graph)} {
		id, ok := d.terms.Lookup(t)
		if !ok {
			return ids, false
		}
		ids[i] = id
	}
	return ids, true
}

// Match returns an iterator over the quads matching the pattern. A nil
// term is a wildcard; the default graph is matched by passing it
// explicitly. A term the dataset has never seen yields an empty
// iterator. Matching may materialize a lazy index.
func (d *Dataset) Match(s, p, o, g rdf.Term) *Iterator {
	var pattern forest.Pattern[uint32]
	for i, t := range []rdf.Term{s, p, o, g} {
		if t == nil {
			continue
		}
		id, ok := d.terms.Lookup(t)
		if !ok {
			return &Iterator{}
		}
		pattern[i] = forest.Exactly(id)
	}
	return &Iterator{
		it:    d.forest.Scan(pattern),
		terms: d.terms,
	}
}

// Iterator yields matching quads. Consecutive quads often share
// component identifiers under the chosen index order, so the iterator
// caches the previously decoded term per position and reuses it when
// the identifier repeats.
type Iterator struct {
	it    *forest.Iter[uint32]
	terms *terms.Indexer

	prevID [4]uint32
	prev   [4]rdf.Term
	cur    forest.Quad[uint32]
}

// Next advances to the next quad.
func (it *Iterator) Next() bool {
	if it.it == nil {
		return false
	}
	if !it.it.Next() {
		return false
	}
	it.cur = it.it.Quad()
	return true
}

// Quad returns the quad at the current position.
func (it *Iterator) Quad() (*rdf.Quad, error) {
	var decoded [4]rdf.Term
	for i, id := range it.cur {
		if it.prev[i] != nil && it.prevID[i] == id {
			decoded[i] = it.prev[i]
			continue
		}
		term, ok := it.terms.Term(id)
		if !ok {
			return nil, fmt.Errorf("unknown identifier %d in position %d", id, i)
		}
		decoded[i] = term
		it.prev[i] = term
		it.prevID[i] = id
	}
	return rdf.NewQuad(decoded[0], decoded[1], decoded[2], decoded[3]), nil
}

// Close releases the underlying scan.
func (it *Iterator) Close() error {
	if it.it != nil {
		it.it.Close()
	}
	return nil
}
