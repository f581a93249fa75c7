package parser

import (
	"fmt"

	"github.com/hermanshamus/Phil/pkg/token"
)

// LexError reports input containing a character sequence that matches no
// valid token pattern.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParseError reports a token stream that does not match the grammar.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// UnbalancedError reports parenthesis nesting that does not return to zero
// (or dips below zero) while splitting a statement into premises.
type UnbalancedError struct {
	Offset int // byte offset of the offending parenthesis, or end of input
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("unbalanced parentheses at offset %d", e.Offset)
}
