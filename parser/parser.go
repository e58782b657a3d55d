// Package parser builds an ast.Node tree from a pattern string via
// recursive descent, with precedence OR < concatenation < postfix
// (+, ?, {low,top}).
package parser

import (
	"fmt"

	"github.com/coregx/dfarx/ast"
	"github.com/coregx/dfarx/lexer"
)

// Parser consumes a lexer.Lexer's token stream one token of lookahead at a
// time, building ast.Node values via the ctx constructors.
type Parser struct {
	lex *lexer.Lexer
	ctx *ast.Context
	cur lexer.Token
}

// Parse compiles pattern into an ast.Node tree wrapped in ast.Root. Lexical
// and syntactic diagnostics are appended to ctx.Errors in the order they
// occur in the pattern; Parse always returns a usable tree even when
// ctx.Errors is non-empty, so callers that only want diagnostics don't need
// a separate error-only path.
func Parse(ctx *ast.Context, pattern string) ast.Node {
	p := &Parser{lex: lexer.New(pattern), ctx: ctx}
	p.advance()
	body := p.parseExpr()
	if p.cur.Kind != lexer.EOF {
		p.unexpected()
	}
	return ast.NewRoot(ctx, body)
}

// advance consumes the current token and fetches the next one, draining any
// lexical errors produced while scanning for it into ctx.Errors so
// diagnostics stay in source order relative to syntax errors.
func (p *Parser) advance() {
	before := len(p.lex.Errors)
	p.cur = p.lex.Next()
	for _, e := range p.lex.Errors[before:] {
		p.ctx.AddError(e)
	}
}

func (p *Parser) unexpected() {
	p.ctx.AddError(fmt.Sprintf("unexpexted token: %s", p.cur.String()))
}

func (p *Parser) expect(k lexer.Kind) {
	if p.cur.Kind != k {
		p.unexpected()
		return
	}
	p.advance()
}

// parseExpr is the OR level: term (OR term)*.
func (p *Parser) parseExpr() ast.Node {
	left := p.parseTerm()
	for p.cur.Kind == lexer.OR {
		p.advance()
		right := p.parseTerm()
		left = ast.NewOr(p.ctx, left, right)
	}
	return left
}

// parseTerm is the concatenation level: factor+, or Empty if no factor
// follows (e.g. the right side of "a|").
func (p *Parser) parseTerm() ast.Node {
	if !p.startsFactor() {
		return ast.NewEmpty(p.ctx)
	}
	left := p.parseFactor()
	for p.startsFactor() {
		left = ast.NewConcat(p.ctx, left, p.parseFactor())
	}
	return left
}

func (p *Parser) startsFactor() bool {
	switch p.cur.Kind {
	case lexer.SYMBOL, lexer.DOT, lexer.LRB, lexer.ID:
		return true
	default:
		return false
	}
}

// parseFactor is the postfix level: atom followed by any number of +, ?,
// or {low,top} operators, applied left to right.
func (p *Parser) parseFactor() ast.Node {
	node := p.parseAtom()
	for {
		switch p.cur.Kind {
		case lexer.PLUS:
			p.advance()
			node = ast.NewPositClos(p.ctx, node)
		case lexer.OPT:
			p.advance()
			node = ast.NewOpt(p.ctx, node)
		case lexer.REPIT:
			low, top := p.cur.Low, p.cur.Top
			p.advance()
			node = ast.NewRepit(p.ctx, node, low, top)
		default:
			return node
		}
	}
}

// parseAtom is a literal symbol, ".", a named-group reference or
// definition, or a parenthesized subexpression.
func (p *Parser) parseAtom() ast.Node {
	switch p.cur.Kind {
	case lexer.SYMBOL:
		ch := p.cur.Ch
		p.advance()
		return ast.NewSymbol(p.ctx, ch)
	case lexer.DOT:
		p.advance()
		return ast.NewAnySymbol(p.ctx)
	case lexer.ID:
		name := p.cur.Name
		p.advance()
		def, ok := p.ctx.Groups[name]
		if !ok {
			p.ctx.AddError(fmt.Sprintf("Undefined named capture group: %s", name))
			return ast.NewEmpty(p.ctx)
		}
		return ast.Copy(p.ctx, def)
	case lexer.LRB:
		return p.parseGroup()
	default:
		p.unexpected()
		p.advance() // skip the offending token so parsing can make progress
		return ast.NewEmpty(p.ctx)
	}
}

// parseGroup handles "(" already seen: either a named-group definition
// "(<name> reg)" or a plain grouping "(reg)".
func (p *Parser) parseGroup() ast.Node {
	p.advance() // consume LRB
	if p.cur.Kind == lexer.ID {
		name := p.cur.Name
		p.advance()
		inner := p.parseExpr()
		p.expect(lexer.RRB)
		if _, exists := p.ctx.Groups[name]; exists {
			p.ctx.AddError(fmt.Sprintf("Redefinition of named capture group:%s", name))
		} else {
			p.ctx.Groups[name] = inner
		}
		return ast.NewNCG(p.ctx, name, inner)
	}
	inner := p.parseExpr()
	p.expect(lexer.RRB)
	return inner
}
