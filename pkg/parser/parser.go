// Package parser turns propositional logic text into logic.Expr trees.
//
// # Grammar
//
// Recursive descent with one grammar layer per precedence level, lowest
// binding first:
//
//	iff      → implies ( "<->" implies )*
//	implies  → or ( "->" or )*
//	or       → and ( "|" and )*
//	and      → not ( "&" not )*
//	not      → "~" not | atom
//	atom     → "(" iff ")" | IDENT
//
// All binary layers are left-associative; chained -> and <-> are accepted
// permissively and grouped left to right. ~ is right-associative through
// direct recursion, so ~~p parses as Not(Not(p)).
//
// The parser also provides SplitStatement, which partitions a raw statement
// into premises and an optional conclusion before individual formulas are
// parsed.
package parser

import (
	"fmt"

	"github.com/hermanshamus/Phil/pkg/logic"
	"github.com/hermanshamus/Phil/pkg/token"
)

// Parser parses a single formula into a logic.Expr.
type Parser struct {
	lexer *Lexer
	token token.Token // current token
	peek  token.Token // lookahead token
}

// NewParser creates a new parser for the given input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	// Read two tokens to initialize current and peek.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the input as one complete formula. Trailing tokens after the
// formula are an error, as is empty input.
func Parse(input string) (logic.Expr, error) {
	p := NewParser(input)
	expr, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if p.token.Type != token.EOF {
		if p.token.Type == token.ILLEGAL {
			return nil, p.lexErrorAtCurrent()
		}
		return nil, p.syntaxErrorf("unexpected token %s after formula", p.token)
	}
	return expr, nil
}

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.token.Type == t {
		p.nextToken()
		return true
	}
	return false
}

// syntaxErrorf builds a *ParseError at the current token's position.
func (p *Parser) syntaxErrorf(format string, args ...any) error {
	return &ParseError{Pos: p.token.Pos, Message: fmt.Sprintf(format, args...)}
}

// lexErrorAtCurrent builds a *LexError for the current ILLEGAL token.
func (p *Parser) lexErrorAtCurrent() error {
	return &LexError{
		Pos:     p.token.Pos,
		Message: fmt.Sprintf("unrecognized character %q", p.token.Literal),
	}
}

// parseIff parses the lowest-precedence layer: implies ( "<->" implies )*.
func (p *Parser) parseIff() (logic.Expr, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.match(token.IFF) {
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = &logic.Iff{Left: left, Right: right}
	}
	return left, nil
}

// parseImplies parses or ( "->" or )*.
func (p *Parser) parseImplies() (logic.Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.match(token.IMPLIES) {
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = &logic.Implies{Left: left, Right: right}
	}
	return left, nil
}

// parseOr parses and ( "|" and )*.
func (p *Parser) parseOr() (logic.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &logic.Or{Left: left, Right: right}
	}
	return left, nil
}

// parseAnd parses not ( "&" not )*.
func (p *Parser) parseAnd() (logic.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &logic.And{Left: left, Right: right}
	}
	return left, nil
}

// parseNot parses "~" not | atom. Negation is right-associative.
func (p *Parser) parseNot() (logic.Expr, error) {
	if p.match(token.NOT) {
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &logic.Not{Operand: operand}, nil
	}
	return p.parseAtom()
}

// parseAtom parses "(" iff ")" | IDENT. A parenthesized group recurses to
// the top-level rule so (p -> q) & r groups as expected.
func (p *Parser) parseAtom() (logic.Expr, error) {
	switch p.token.Type {
	case token.LPAREN:
		p.nextToken()
		expr, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if !p.match(token.RPAREN) {
			if p.token.Type == token.ILLEGAL {
				return nil, p.lexErrorAtCurrent()
			}
			return nil, p.syntaxErrorf("expected closing parenthesis, got %s", p.token)
		}
		return expr, nil

	case token.IDENT:
		v := &logic.Var{Name: p.token.Literal}
		p.nextToken()
		return v, nil

	case token.EOF:
		return nil, p.syntaxErrorf("unexpected end of input, expected formula")

	case token.ILLEGAL:
		return nil, p.lexErrorAtCurrent()

	default:
		return nil, p.syntaxErrorf("unexpected token %s, expected variable or parenthesized formula", p.token)
	}
}
