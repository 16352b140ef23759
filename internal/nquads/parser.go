// Package nquads parses the N-Quads line format:
// <subject> <predicate> <object> [<graph>] .
// Statements without a graph term land in the default graph. The parser
// is strict N-Quads; it does not accept Turtle directives.
package nquads

import (
	"fmt"
	"strings"

	"github.com/aleksaelezovic/quadforest/pkg/rdf"
)

// Parser is an N-Quads parser over an in-memory document
type Parser struct {
	input  string
	pos    int
	length int
}

// NewParser creates a new N-Quads parser
func NewParser(input string) *Parser {
	return &Parser{
		input:  input,
		length: len(input),
	}
}

// Parse parses the whole document and returns its quads
func (p *Parser) Parse() ([]*rdf.Quad, error) {
	var quads []*rdf.Quad

	for {
		p.skipWhitespaceAndComments()
		if p.pos >= p.length {
			return quads, nil
		}
		quad, err := p.parseQuad()
		if err != nil {
			return nil, err
		}
		quads = append(quads, quad)
	}
}

// ParseTerm parses a single term in N-Quads syntax, e.g. "<http://a>",
// "_:b0" or "\"chat\"@fr".
func ParseTerm(s string) (rdf.Term, error) {
	p := NewParser(s)
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	p.skipWhitespaceAndComments()
	if p.pos < p.length {
		return nil, fmt.Errorf("trailing input after term at position %d", p.pos)
	}
	return term, nil
}

func (p *Parser) skipWhitespaceAndComments() {
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			p.pos++
			continue
		}
		if ch == '#' {
			for p.pos < p.length && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

// parseQuad parses one statement: subject predicate object [graph] .
func (p *Parser) parseQuad() (*rdf.Quad, error) {
	subject, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("error parsing subject: %w", err)
	}
	p.skipWhitespaceAndComments()

	predicate, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("error parsing predicate: %w", err)
	}
	p.skipWhitespaceAndComments()

	object, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("error parsing object: %w", err)
	}
	p.skipWhitespaceAndComments()

	graph := rdf.Term(rdf.NewDefaultGraph())
	if p.pos < p.length && (p.input[p.pos] == '<' || p.input[p.pos] == '_') {
		graph, err = p.parseTerm()
		if err != nil {
			return nil, fmt.Errorf("error parsing graph: %w", err)
		}
		p.skipWhitespaceAndComments()
	}

	if p.pos >= p.length || p.input[p.pos] != '.' {
		return nil, fmt.Errorf("expected '.' at end of statement, position %d", p.pos)
	}
	p.pos++

	return rdf.NewQuad(subject, predicate, object, graph), nil
}

func (p *Parser) parseTerm() (rdf.Term, error) {
	if p.pos >= p.length {
		return nil, fmt.Errorf("unexpected end of input")
	}

	switch p.input[p.pos] {
	case '<':
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return rdf.NewNamedNode(iri), nil
	case '_':
		return p.parseBlankNode()
	case '"':
		return p.parseLiteral()
	default:
		return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, p.input[p.pos])
	}
}

func (p *Parser) parseIRI() (string, error) {
	p.pos++ // skip '<'
	start := p.pos
	for p.pos < p.length && p.input[p.pos] != '>' {
		p.pos++
	}
	if p.pos >= p.length {
		return "", fmt.Errorf("unclosed IRI")
	}
	iri := p.input[start:p.pos]
	p.pos++ // skip '>'
	return iri, nil
}

func (p *Parser) parseBlankNode() (rdf.Term, error) {
	p.pos++ // skip '_'
	if p.pos >= p.length || p.input[p.pos] != ':' {
		return nil, fmt.Errorf("expected ':' after '_' in blank node")
	}
	p.pos++ // skip ':'

	start := p.pos
	for p.pos < p.length && !isTermBoundary(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("empty blank node label at position %d", p.pos)
	}
	return rdf.NewBlankNode(p.input[start:p.pos]), nil
}

func isTermBoundary(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '.' || ch == '<'
}

func (p *Parser) parseLiteral() (rdf.Term, error) {
	p.pos++ // skip opening '"'

	var value strings.Builder
	for p.pos < p.length && p.input[p.pos] != '"' {
		ch := p.input[p.pos]
		if ch == '\\' {
			p.pos++
			if p.pos >= p.length {
				return nil, fmt.Errorf("unexpected end of input in escape sequence")
			}
			switch p.input[p.pos] {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'r':
				value.WriteByte('\r')
			case '"':
				value.WriteByte('"')
			case '\\':
				value.WriteByte('\\')
			default:
				value.WriteByte(p.input[p.pos])
			}
			p.pos++
			continue
		}
		value.WriteByte(ch)
		p.pos++
	}
	if p.pos >= p.length {
		return nil, fmt.Errorf("unclosed string literal")
	}
	p.pos++ // skip closing '"'

	if p.pos < p.length && p.input[p.pos] == '@' {
		p.pos++
		start := p.pos
		for p.pos < p.length && !isTermBoundary(p.input[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			return nil, fmt.Errorf("empty language tag at position %d", p.pos)
		}
		return rdf.NewLiteralWithLanguage(value.String(), p.input[start:p.pos]), nil
	}

	if p.pos+1 < p.length && p.input[p.pos] == '^' && p.input[p.pos+1] == '^' {
		p.pos += 2
		if p.pos >= p.length || p.input[p.pos] != '<' {
			return nil, fmt.Errorf("expected IRI after '^^'")
		}
		datatypeIRI, err := p.parseIRI()
		if err != nil {
			return nil, fmt.Errorf("error parsing datatype: %w", err)
		}
		return rdf.NewLiteralWithDatatype(value.String(), rdf.NewNamedNode(datatypeIRI)), nil
	}

	return rdf.NewLiteral(value.String()), nil
}
