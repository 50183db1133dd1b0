package lexer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-recipe/internal/token"
)

// Lexer holds the state for tokenizing KDL source.
type Lexer struct {
	r      *bufio.Reader
	buf    bytes.Buffer
	ch     rune
	bad    bool // ch came from an invalid UTF-8 sequence
	line   int
	column int
}

// New creates and returns a new Lexer.
func New(r io.Reader) *Lexer {
	l := &Lexer{
		r:      bufio.NewReader(r),
		line:   1,
		column: 1,
	}
	l.readRune()
	if l.ch == '\uFEFF' {
		l.readRune()
	}
	return l
}

// NextToken scans the input and returns the next token. Block comments
// and line continuations are consumed as whitespace.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipWhitespace()
		switch {
		case l.ch == '/' && l.peekRune() == '*':
			tok := token.Token{Line: l.line, Column: l.column}
			if !l.skipBlockComment() {
				tok.Type = token.ILLEGAL
				tok.Literal = "unterminated block comment"
				return tok
			}
		case l.ch == '\\':
			tok := token.Token{Line: l.line, Column: l.column}
			if !l.skipLineContinuation() {
				tok.Type = token.ILLEGAL
				tok.Literal = "invalid line continuation"
				return tok
			}
		default:
			return l.scanToken()
		}
	}
}

func (l *Lexer) scanToken() token.Token { //nolint:gocognit
	tok := token.Token{Line: l.line, Column: l.column}
	switch l.ch {
	case '{', '}', '(', ')', '=', ';':
		tok.Type = token.Type(l.ch)
		tok.Literal = string(l.ch)
	case '\r':
		tok.Type = token.NEWLINE
		tok.Literal = "\r"
		if l.peekRune() == '\n' {
			l.advance()
			tok.Literal = "\r\n"
		}
	case '\n', '\u0085', '\u000C', '\u2028', '\u2029':
		tok.Type = token.NEWLINE
		tok.Literal = string(l.ch)
	case '/':
		switch l.peekRune() {
		case '/':
			tok.Type = token.COMMENT
			tok.Literal = l.readLineComment()
			return tok
		case '-':
			l.advance()
			tok.Type = token.SLASHDASH
			tok.Literal = "/-"
		default:
			tok.Type = token.ILLEGAL
			tok.Literal = "/"
		}
	case '"':
		lit, ok := l.readString()
		if !ok {
			tok.Type = token.ILLEGAL
		} else {
			tok.Type = token.STRING
		}
		tok.Literal = lit
		return tok
	case '#':
		lit := l.readKeyword()
		tok.Literal = lit
		tok.Type = token.LookupIdent(lit)
		if tok.Type == token.IDENT {
			tok.Type = token.ILLEGAL
			if l.ch == '"' || l.ch == '#' {
				tok.Literal = "raw strings are not supported"
			} else {
				tok.Literal = fmt.Sprintf("unknown keyword %s", lit)
			}
		}
		return tok
	case -1: // Corresponds to io.EOF
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	default:
		if isDigit(l.ch) || ((l.ch == '-' || l.ch == '+') && isDigit(l.peekRune())) {
			literal := l.readIdentifier()
			if typ, ok := ParseAsNumber(literal); ok {
				tok.Type = typ
			} else {
				tok.Type = token.IDENT
			}
			tok.Literal = literal
			return tok
		}
		if l.isIdentifierRune() {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		}
		tok.Type = token.ILLEGAL
		if l.bad {
			tok.Literal = "invalid utf-8"
		} else {
			tok.Literal = string(l.ch)
		}
	}
	l.advance()
	return tok
}

func (l *Lexer) readRune() {
	r, size, err := l.r.ReadRune()
	if err != nil {
		l.ch = -1
		l.bad = false
		return
	}
	l.ch = r
	l.bad = r == utf8.RuneError && size == 1
}

func (l *Lexer) advance() {
	if isNewline(l.ch) && (l.ch != '\r' || l.peekRune() != '\n') {
		l.line++
		l.column = 0
	}
	l.readRune()
	l.column++
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() bool {
	depth := 0
	for {
		switch {
		case l.ch == -1:
			return false
		case l.ch == '/' && l.peekRune() == '*':
			depth++
			l.advance()
			l.advance()
		case l.ch == '*' && l.peekRune() == '/':
			depth--
			l.advance()
			l.advance()
			if depth == 0 {
				return true
			}
		default:
			l.advance()
		}
	}
}

func (l *Lexer) skipLineContinuation() bool {
	l.advance() // consume backslash
	l.skipWhitespace()
	if l.ch == '/' && l.peekRune() == '/' {
		for !isNewline(l.ch) && l.ch != -1 {
			l.advance()
		}
	}
	if l.ch == -1 {
		return true
	}
	if !isNewline(l.ch) {
		return false
	}
	if l.ch == '\r' && l.peekRune() == '\n' {
		l.advance()
	}
	l.advance()
	return true
}

func (l *Lexer) readLineComment() string {
	l.advance() // consume first '/'
	l.advance() // consume second '/'
	for isWhitespace(l.ch) {
		l.advance() // consume leading whitespace
	}
	l.buf.Reset()
	for !isNewline(l.ch) && l.ch != -1 {
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	return l.buf.String()
}

func (l *Lexer) readKeyword() string {
	l.buf.Reset()
	l.buf.WriteRune(l.ch)
	l.advance() // consume '#'
	for l.isIdentifierRune() {
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	return l.buf.String()
}

func (l *Lexer) readIdentifier() string {
	l.buf.Reset()
	for l.isIdentifierRune() {
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	return l.buf.String()
}

func (l *Lexer) readString() (string, bool) {
	if l.peekRune() == '"' && l.peekNextRune() == '"' {
		// Skip the rest of the line so the parser can resume after it.
		for l.ch != -1 && !isNewline(l.ch) {
			l.advance()
		}
		return "multi-line strings are not supported", false
	}
	l.advance() // consume opening quote
	l.buf.Reset()
	for {
		switch {
		case l.ch == '"':
			l.advance() // consume closing quote
			return l.buf.String(), true
		case l.ch == -1 || isNewline(l.ch):
			return "unterminated string", false
		case l.ch == '\\':
			if msg, ok := l.readEscapeSequence(); !ok {
				return msg, false
			}
			continue
		case l.bad:
			return "invalid utf-8 sequence in string", false
		case isForbiddenControlChar(l.ch):
			return fmt.Sprintf("forbidden control character U+%04X in string", l.ch), false
		default:
			l.buf.WriteRune(l.ch)
		}
		l.advance()
	}
}

// readEscapeSequence consumes an escape starting at the backslash and
// writes its expansion to buf. On return l.ch is the rune after it.
func (l *Lexer) readEscapeSequence() (string, bool) {
	l.advance() // consume backslash
	switch l.ch {
	case 'b', 'f', 'n', 'r', 't', 's', '"', '\\', '/':
		l.buf.WriteRune(unescape(l.ch))
		l.advance()
		return "", true
	case 'u':
		l.advance()
		if l.ch != '{' {
			return "invalid unicode escape", false
		}
		var val rune
		digits := 0
		for {
			l.advance()
			if l.ch == '}' {
				break
			}
			d, ok := hexValue(l.ch)
			if !ok || digits == 6 {
				return "invalid unicode escape", false
			}
			val = val*16 + d
			digits++
		}
		if digits == 0 {
			return "invalid unicode escape", false
		}
		if (val >= 0xD800 && val <= 0xDFFF) || val > unicode.MaxRune {
			return "invalid unicode scalar value", false
		}
		l.buf.WriteRune(val)
		l.advance() // consume '}'
		return "", true
	default:
		if isWhitespace(l.ch) || isNewline(l.ch) {
			for isWhitespace(l.ch) || isNewline(l.ch) {
				l.advance()
			}
			return "", true
		}
		return fmt.Sprintf("invalid escape sequence \\%c", l.ch), false
	}
}

func (l *Lexer) peekRune() rune {
	// Prioritize the returned slice, as Peek can return both bytes and an error
	bytes, _ := l.r.Peek(utf8.UTFMax)
	if len(bytes) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(bytes)
	return r
}

func (l *Lexer) peekNextRune() rune {
	// Prioritize the returned slice, as Peek can return both bytes and an error
	bytes, _ := l.r.Peek(utf8.UTFMax * 2)
	if len(bytes) == 0 {
		return 0
	}

	_, firstRuneSize := utf8.DecodeRune(bytes)
	if len(bytes) <= firstRuneSize { // Not enough bytes for a second rune.
		return 0
	}

	r, _ := utf8.DecodeRune(bytes[firstRuneSize:])
	return r
}

// IsIdentifierRune reports whether r may appear in a bare identifier.
func IsIdentifierRune(r rune) bool {
	if r < 0x21 || r == 0x7F || r == '\uFEFF' || unicode.IsSpace(r) {
		return false
	}
	switch r {
	case '\\', '/', '(', ')', '{', '}', ';', '[', ']', '=', '"', '#':
		return false
	}
	return true
}

// isIdentifierRune is IsIdentifierRune for the current rune, which must
// also be valid UTF-8.
func (l *Lexer) isIdentifierRune() bool {
	return !l.bad && IsIdentifierRune(l.ch)
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\uFEFF' || (ch > 0x7F && unicode.Is(unicode.Zs, ch))
}

func isNewline(ch rune) bool {
	switch ch {
	case '\n', '\r', '\u0085', '\u000C', '\u2028', '\u2029':
		return true
	}
	return false
}

func isForbiddenControlChar(ch rune) bool {
	return (ch >= 0x00 && ch <= 0x08) || (ch >= 0x0A && ch <= 0x1F) || ch == 0x7F
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func hexValue(ch rune) (rune, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0', true
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10, true
	case 'A' <= ch && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}

func unescape(ch rune) rune {
	switch ch {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 's':
		return ' '
	}
	return ch
}
