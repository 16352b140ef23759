package terms

import (
	"testing"

	"github.com/aleksaelezovic/quadforest/pkg/rdf"
)

func TestDefaultGraphConvention(t *testing.T) {
	idx := NewIndexer()

	id, ok := idx.Lookup(rdf.NewDefaultGraph())
	if !ok || id != DefaultGraphID {
		t.Fatalf("expected default graph at id %d, got %d (ok=%v)", DefaultGraphID, id, ok)
	}

	// Releasing the default graph must never recycle it.
	idx.Release(DefaultGraphID)
	idx.Release(DefaultGraphID)
	if _, ok := idx.Term(DefaultGraphID); !ok {
		t.Error("default graph was released")
	}
}

func TestInternIsStableAndCounted(t *testing.T) {
	idx := NewIndexer()
	alice := rdf.NewNamedNode("http://example.org/alice")

	id1 := idx.Intern(alice)
	id2 := idx.Intern(rdf.NewNamedNode("http://example.org/alice"))
	if id1 != id2 {
		t.Fatalf("same term interned twice got ids %d and %d", id1, id2)
	}

	term, ok := idx.Term(id1)
	if !ok || !term.Equals(alice) {
		t.Fatalf("reverse lookup of %d gave %v", id1, term)
	}

	// Two references are held; the term survives one release.
	idx.Release(id1)
	if _, ok := idx.Term(id1); !ok {
		t.Fatal("term dropped while still referenced")
	}
	idx.Release(id1)
	if _, ok := idx.Term(id1); ok {
		t.Fatal("term survived its last release")
	}
	if _, ok := idx.Lookup(alice); ok {
		t.Error("released term still resolvable")
	}
}

func TestReleasedIdentifiersAreRecycled(t *testing.T) {
	idx := NewIndexer()

	id := idx.Intern(rdf.NewLiteral("ephemeral"))
	idx.Release(id)

	next := idx.Intern(rdf.NewLiteral("replacement"))
	if next != id {
		t.Errorf("expected recycled id %d, got %d", id, next)
	}
}

func TestDistinctTermsDistinctIdentifiers(t *testing.T) {
	idx := NewIndexer()

	ids := map[uint32]string{}
	for _, term := range []rdf.Term{
		rdf.NewNamedNode("http://example.org/a"),
		rdf.NewBlankNode("a"),
		rdf.NewLiteral("a"),
		rdf.NewLiteralWithLanguage("a", "en"),
		rdf.NewLiteralWithDatatype("a", rdf.XSDString),
	} {
		id := idx.Intern(term)
		if prev, dup := ids[id]; dup {
			t.Errorf("terms %s and %s share id %d", prev, term, id)
		}
		ids[id] = term.String()
	}
}
