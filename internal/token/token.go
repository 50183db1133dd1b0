package token

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unknown or invalid token
	EOF     Type = "EOF"     // End of file

	// Literals
	IDENT  Type = "IDENT"  // ingredient, All-Purpose, tbsp
	INT    Type = "INT"    // 12345, 0xff
	FLOAT  Type = "FLOAT"  // 123.45, 1e-3
	STRING Type = "STRING" // "hello world"

	// Delimiters
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LPAREN    Type = "("
	RPAREN    Type = ")"
	EQUALS    Type = "="
	SEMICOLON Type = ";"
	SLASHDASH Type = "/-"

	// Keywords
	TRUE   Type = "TRUE"
	FALSE  Type = "FALSE"
	NULL   Type = "NULL"
	INF    Type = "INF"
	NEGINF Type = "NEGINF"
	NAN    Type = "NAN"

	// Comments and Whitespace
	COMMENT Type = "COMMENT" // // a comment
	NEWLINE Type = "NEWLINE" // \n
)

var keywords = map[string]Type{
	"#true":  TRUE,
	"#false": FALSE,
	"#null":  NULL,
	"#inf":   INF,
	"#-inf":  NEGINF,
	"#nan":   NAN,
	// Unprefixed forms from KDL 1.
	"true":  TRUE,
	"false": FALSE,
	"null":  NULL,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsReserved reports whether s cannot be written as a bare identifier
// because it would read back as a keyword.
func IsReserved(s string) bool {
	switch s {
	case "true", "false", "null", "inf", "-inf", "nan":
		return true
	}
	return false
}
