// Package token defines the lexical tokens of the propositional logic
// language: the five connectives, parentheses, and identifiers.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT // p, q, rain_tomorrow

	// Connectives
	NOT     // ~
	AND     // &
	OR      // |
	IMPLIES // ->
	IFF     // <->

	// Grouping
	LPAREN // (
	RPAREN // )
)

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	IDENT:   "IDENT",
	NOT:     "~",
	AND:     "&",
	OR:      "|",
	IMPLIES: "->",
	IFF:     "<->",
	LPAREN:  "(",
	RPAREN:  ")",
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int32(t))
}

// Token is a single lexical token with its source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String returns a compact representation for error messages and debugging.
func (t Token) String() string {
	if t.Type == IDENT {
		return fmt.Sprintf("IDENT(%s)", t.Literal)
	}
	return t.Type.String()
}
