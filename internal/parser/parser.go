package parser

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-recipe/document"
	"github.com/KimNorgaard/go-recipe/internal/lexer"
	"github.com/KimNorgaard/go-recipe/internal/token"
)

// Parser holds the state of the parser.
type Parser struct {
	l        *lexer.Lexer
	errors   document.ParseErrors
	maxDepth int
	depth    int

	curToken  token.Token
	peekToken token.Token
}

// New creates a new parser. Children blocks nested deeper than maxDepth
// are reported as errors and skipped.
func New(l *lexer.Lexer, maxDepth int) *Parser {
	p := &Parser{
		l:        l,
		maxDepth: maxDepth,
	}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the errors encountered during parsing.
func (p *Parser) Errors() document.ParseErrors {
	return p.errors
}

// Parse parses a KDL document and returns its node tree. The tree is
// only meaningful when Errors is empty.
func (p *Parser) Parse() *document.Document {
	return &document.Document{Nodes: p.parseNodes(token.EOF)}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	for p.curTokenIs(token.COMMENT) {
		p.nextToken()
	}
}

// The contract for all parse functions is that they are entered with p.curToken
// being the first token of the construct, and they must return with p.curToken
// pointing to the token *after* the construct.

func (p *Parser) parseNodes(end token.Type) []*document.Node {
	var nodes []*document.Node
	for {
		p.skip(token.NEWLINE, token.SEMICOLON)
		if p.curTokenIs(end) || p.curTokenIs(token.EOF) {
			return nodes
		}
		if p.curTokenIs(token.RBRACE) {
			p.errorAt(p.curToken, "unexpected '}'")
			p.nextToken()
			continue
		}

		discard := false
		if p.curTokenIs(token.SLASHDASH) {
			discard = true
			p.nextToken()
			p.skip(token.NEWLINE)
		}

		node := p.parseNode()
		if node != nil && !discard {
			nodes = append(nodes, node)
		}
	}
}

func (p *Parser) parseNode() *document.Node {
	if !p.skipAnnotation() {
		p.recover()
		return nil
	}

	name, ok := p.parseName()
	if !ok {
		p.recover()
		return nil
	}
	node := &document.Node{Name: name}

	for {
		switch p.curToken.Type {
		case token.NEWLINE, token.SEMICOLON:
			p.nextToken()
			return node
		case token.EOF, token.RBRACE:
			return node
		case token.LBRACE:
			node.Children = p.parseChildren()
			for p.curTokenIs(token.SLASHDASH) && p.peekTokenIs(token.LBRACE) {
				p.nextToken()
				p.parseChildren()
			}
			switch p.curToken.Type {
			case token.NEWLINE, token.SEMICOLON:
				p.nextToken()
			case token.EOF, token.RBRACE:
			default:
				p.errorAt(p.curToken, "expected newline or ';' after children block, got %s", describe(p.curToken))
				p.recover()
				return nil
			}
			return node
		case token.SLASHDASH:
			p.nextToken()
			if p.curTokenIs(token.LBRACE) {
				p.parseChildren()
				continue
			}
			if _, ok := p.parseEntry(); !ok {
				p.recover()
				return nil
			}
		default:
			entry, ok := p.parseEntry()
			if !ok {
				p.recover()
				return nil
			}
			node.AddEntry(entry)
		}
	}
}

func (p *Parser) parseName() (string, bool) {
	tok := p.curToken
	switch tok.Type {
	case token.STRING:
		p.nextToken()
		return tok.Literal, true
	case token.IDENT:
		if !p.checkIdentifier(tok) {
			p.nextToken()
			return "", false
		}
		p.nextToken()
		return tok.Literal, true
	case token.ILLEGAL:
		p.errorAt(tok, "%s", tok.Literal)
		p.nextToken()
		return "", false
	}
	p.errorAt(tok, "expected node name, got %s", describe(tok))
	return "", false
}

func (p *Parser) parseEntry() (document.Entry, bool) {
	if !p.skipAnnotation() {
		return document.Entry{}, false
	}

	if (p.curTokenIs(token.IDENT) || p.curTokenIs(token.STRING)) && p.peekTokenIs(token.EQUALS) {
		key := p.curToken
		if key.Type == token.IDENT && !p.checkIdentifier(key) {
			return document.Entry{}, false
		}
		if key.Literal == "" {
			p.errorAt(key, "property key cannot be empty")
			return document.Entry{}, false
		}
		p.nextToken() // Consume key
		p.nextToken() // Consume '='
		if !p.skipAnnotation() {
			return document.Entry{}, false
		}
		v, ok := p.parseValue()
		return document.Entry{Name: key.Literal, Value: v}, ok
	}

	v, ok := p.parseValue()
	return document.Entry{Value: v}, ok
}

func (p *Parser) parseValue() (document.Value, bool) {
	tok := p.curToken
	switch tok.Type {
	case token.STRING:
		p.nextToken()
		return document.StringValue(tok.Literal), true
	case token.IDENT:
		p.nextToken()
		if !p.checkIdentifier(tok) {
			return document.Value{}, false
		}
		return document.StringValue(tok.Literal), true
	case token.INT:
		p.nextToken()
		v, err := parseInteger(tok.Literal)
		if err != nil {
			p.errorAt(tok, "could not parse %q as integer: %s", tok.Literal, err)
			return document.Value{}, false
		}
		return document.IntValue(v), true
	case token.FLOAT:
		p.nextToken()
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.Literal, "_", ""), 64)
		if err != nil {
			p.errorAt(tok, "could not parse %q as float: %s", tok.Literal, err)
			return document.Value{}, false
		}
		return document.FloatValue(v), true
	case token.TRUE, token.FALSE:
		p.nextToken()
		return document.BoolValue(tok.Type == token.TRUE), true
	case token.NULL:
		p.nextToken()
		return document.NullValue(), true
	case token.INF:
		p.nextToken()
		return document.FloatValue(math.Inf(1)), true
	case token.NEGINF:
		p.nextToken()
		return document.FloatValue(math.Inf(-1)), true
	case token.NAN:
		p.nextToken()
		return document.FloatValue(math.NaN()), true
	case token.ILLEGAL:
		p.nextToken()
		p.errorAt(tok, "%s", tok.Literal)
		return document.Value{}, false
	}
	p.errorAt(tok, "unexpected %s", describe(tok))
	return document.Value{}, false
}

// checkIdentifier reports an error for bare identifiers that are not
// allowed: malformed numbers and the reserved keyword spellings.
func (p *Parser) checkIdentifier(tok token.Token) bool {
	// If the lexer gives us an IDENT that starts like a number, it must
	// be a malformed one, because a valid number would have been
	// tokenized as INT or FLOAT.
	if lexer.LooksNumeric(tok.Literal) {
		p.errorAt(tok, "invalid number format: %s", tok.Literal)
		return false
	}
	if token.IsReserved(tok.Literal) {
		p.errorAt(tok, "identifier %s is reserved and must be quoted", tok.Literal)
		return false
	}
	return true
}

func (p *Parser) parseChildren() []*document.Node {
	open := p.curToken
	p.nextToken() // Consume '{'

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.errorAt(open, "maximum nesting depth of %d exceeded", p.maxDepth)
		p.skipBlock()
		return nil
	}

	children := p.parseNodes(token.RBRACE)
	if !p.curTokenIs(token.RBRACE) {
		p.errorAt(open, "unterminated children block, expected '}' got %s", describe(p.curToken))
		return children
	}
	p.nextToken() // Consume '}'
	return children
}

// skipBlock discards tokens up to and including the '}' closing the
// current block.
func (p *Parser) skipBlock() {
	depth := 1
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
			if depth == 0 {
				p.nextToken()
				return
			}
		}
		p.nextToken()
	}
}

// skipAnnotation consumes an optional "(type)" annotation. The type name
// is not retained.
func (p *Parser) skipAnnotation() bool {
	if !p.curTokenIs(token.LPAREN) {
		return true
	}
	open := p.curToken
	p.nextToken() // Consume '('
	if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.STRING) {
		p.errorAt(open, "malformed type annotation, expected name got %s", describe(p.curToken))
		return false
	}
	p.nextToken()
	if !p.curTokenIs(token.RPAREN) {
		p.errorAt(open, "malformed type annotation, expected ')' got %s", describe(p.curToken))
		return false
	}
	p.nextToken() // Consume ')'
	return true
}

// recover skips ahead to the end of the current node so parsing can
// continue with its next sibling.
func (p *Parser) recover() {
	depth := 0
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		case token.NEWLINE, token.SEMICOLON:
			if depth == 0 {
				p.nextToken()
				return
			}
		}
		p.nextToken()
	}
}

func parseInteger(lit string) (int64, error) {
	s := strings.ReplaceAll(lit, "_", "")
	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 10 {
			s = s[2:]
		}
	}
	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		if u > 1<<63 {
			return 0, strconv.ErrRange
		}
		return -int64(u), nil //nolint:gosec
	}
	if u > math.MaxInt64 {
		return 0, strconv.ErrRange
	}
	return int64(u), nil
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.NEWLINE:
		return "newline"
	}
	return fmt.Sprintf("%s ('%s')", tok.Type, tok.Literal)
}

func (p *Parser) errorAt(tok token.Token, format string, args ...any) {
	p.errors = append(p.errors, document.ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	})
}

func (p *Parser) skip(types ...token.Type) {
	for slices.Contains(types, p.curToken.Type) {
		p.nextToken()
	}
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}
