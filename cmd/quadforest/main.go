package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aleksaelezovic/quadforest/internal/nquads"
	"github.com/aleksaelezovic/quadforest/pkg/dataset"
	"github.com/aleksaelezovic/quadforest/pkg/forest"
	"github.com/aleksaelezovic/quadforest/pkg/rdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: quadforest <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  demo                        - Run a demo with sample data")
		fmt.Println("  load <file> [s p o g]       - Load an N-Quads file and match a pattern")
		fmt.Println("                                (each of s p o g is a term or '?')")
		fmt.Println("  orders                      - Show the default index orders")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		runDemo()
	case "orders":
		runOrders()
	case "load":
		if len(os.Args) != 3 && len(os.Args) != 7 {
			fmt.Println("Usage: quadforest load <file> [s p o g]")
			os.Exit(1)
		}
		runLoad(os.Args[2], os.Args[3:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func runOrders() {
	defaults, lazies := forest.Default[uint32]().Orders()
	fmt.Println("Default-materialized orders:")
	for _, o := range defaults {
		fmt.Printf("  %s %v\n", o, o.Positions())
	}
	fmt.Println("Lazy orders:")
	for _, o := range lazies {
		fmt.Printf("  %s %v\n", o, o.Positions())
	}
}

func runDemo() {
	fmt.Println("=== Quadforest Demo ===")
	fmt.Println()

	ds := dataset.New()

	alice := rdf.NewNamedNode("http://example.org/alice")
	bob := rdf.NewNamedNode("http://example.org/bob")
	carol := rdf.NewNamedNode("http://example.org/carol")
	knows := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/knows")
	name := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/name")
	graph1 := rdf.NewNamedNode("http://example.org/graph1")

	quads := []*rdf.Quad{
		rdf.NewQuad(alice, name, rdf.NewLiteral("Alice"), rdf.NewDefaultGraph()),
		rdf.NewQuad(alice, knows, bob, rdf.NewDefaultGraph()),
		rdf.NewQuad(bob, name, rdf.NewLiteral("Bob"), rdf.NewDefaultGraph()),
		rdf.NewQuad(bob, knows, carol, rdf.NewDefaultGraph()),
		rdf.NewQuad(carol, name, rdf.NewLiteral("Carol"), graph1),
	}

	fmt.Println("Inserting sample data...")
	for _, quad := range quads {
		ds.Insert(quad)
		fmt.Printf("  ✓ %s\n", quad)
	}
	fmt.Printf("\nTotal quads stored: %d\n", ds.Len())
	fmt.Printf("Materialized indexes: %d\n", ds.MaterializedIndexCount())

	fmt.Println("\nWho does Alice know?")
	printMatches(ds, alice, knows, nil, nil)

	fmt.Println("\nAll names, any graph:")
	printMatches(ds, nil, name, nil, nil)

	fmt.Printf("\nMaterialized indexes after queries: %d\n", ds.MaterializedIndexCount())
	fmt.Println("\n=== Demo Complete ===")
}

func runLoad(path string, patternArgs []string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	quads, err := nquads.NewParser(string(data)).Parse()
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}

	ds := dataset.New()
	inserted := 0
	for _, quad := range quads {
		if ds.Insert(quad) {
			inserted++
		}
	}
	fmt.Printf("Loaded %d statements (%d distinct quads) from %s\n", len(quads), inserted, path)

	if len(patternArgs) == 0 {
		return
	}

	pattern := make([]rdf.Term, 4)
	for i, arg := range patternArgs {
		if arg == "?" {
			continue
		}
		term, err := nquads.ParseTerm(arg)
		if err != nil {
			log.Fatalf("Bad pattern term %q: %v", arg, err)
		}
		pattern[i] = term
	}

	fmt.Println("Matches:")
	printMatches(ds, pattern[0], pattern[1], pattern[2], pattern[3])
	fmt.Printf("Materialized indexes: %d\n", ds.MaterializedIndexCount())
}

func printMatches(ds *dataset.Dataset, s, p, o, g rdf.Term) {
	it := ds.Match(s, p, o, g)
	defer it.Close()

	count := 0
	for it.Next() {
		quad, err := it.Quad()
		if err != nil {
			log.Fatalf("Failed to decode quad: %v", err)
		}
		fmt.Printf("  %s\n", quad)
		count++
	}
	fmt.Printf("  (%d results)\n", count)
}
