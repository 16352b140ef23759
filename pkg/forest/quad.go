package forest

// Component positions of a quad in canonical SPOG layout.
const (
	Subject   = 0
	Predicate = 1
	Object    = 2
	Graph     = 3
)

// Quad is a four-component tuple of identifiers in canonical SPOG order:
// index 0 is the subject, 1 the predicate, 2 the object, 3 the graph name.
// The distinguished null-graph identifier is supplied by the term indexer
// and is an ordinary value to this package.
type Quad[I Identifier] [4]I
