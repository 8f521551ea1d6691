package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/token"
)

// parseExpr parses a number-expression per spec.md §4.2/§4.4: a left-
// associative chain of '+ - | &' over primaries. allowNot permits the
// textual NOT keyword inside a primary, which is only legal in
// style/exstyle fields (spec.md §4.2).
//
// Precondition: p.tok already holds the first token of the expression.
// Postcondition: p.tok holds the first token after the expression.
func (p *Parser) parseExpr(allowNot bool) *ast.Expr {
	left := p.parsePrimary(allowNot)
	for {
		var op ast.BinaryOp
		switch p.tok.Kind {
		case token.OpPlus:
			op = ast.OpAdd
		case token.OpMinus:
			op = ast.OpSub
		case token.OpOr:
			op = ast.OpOr
		case token.OpAnd:
			op = ast.OpAnd
		default:
			return left
		}
		p.next(lex.Normal) // first token of right operand
		right := p.parsePrimary(allowNot)
		left = &ast.Expr{Kind: ast.ExprBinary, Left: left, Op: op, Right: right, Span: left.Span}
	}
}

func (p *Parser) parsePrimary(allowNot bool) *ast.Expr {
	t := p.tok
	sp := p.span(t)

	switch t.Kind {
	case token.Number:
		n, ok := litr.ParseNumber(p.text(t))
		if !ok {
			p.mark(diag.ReasonExpectedToken, t, "number")
		}
		p.next(lex.NormalExpectOperator)
		return &ast.Expr{Kind: ast.ExprNumber, Number: n, Span: sp}

	case token.QuotedASCIIString:
		pair := p.cps.At(t.Line)
		input, _ := cpage.Lookup(pair.Input)
		output, _ := cpage.Lookup(pair.Output)
		data := litr.DecodeNarrowString(p.text(t), input, output, p.diags, sp)
		p.next(lex.NormalExpectOperator)
		return &ast.Expr{Kind: ast.ExprNarrowString, StringBytes: data, Span: sp}

	case token.QuotedWideString:
		pair := p.cps.At(t.Line)
		input, _ := cpage.Lookup(pair.Input)
		units := litr.DecodeWideString(p.text(t), input, p.diags, sp)
		p.next(lex.NormalExpectOperator)
		return &ast.Expr{Kind: ast.ExprWideString, StringUnits: units, Span: sp}

	case token.LParen:
		p.parenDepth++
		if p.parenDepth > maxParenNesting {
			p.markAt(diag.Error, diag.ReasonExpressionTooDeep, sp, "")
		}
		p.next(lex.Normal)
		inner := p.parseExpr(allowNot)
		closeTok := p.tok
		if closeTok.Kind == token.RParen {
			p.next(lex.NormalExpectOperator)
		} else {
			p.mark(diag.ReasonExpectedToken, closeTok, ")")
		}
		p.parenDepth--
		return &ast.Expr{Kind: ast.ExprGrouped, Operand: inner, Span: sp}

	case token.OpMinus, token.OpNot:
		// A bare '-'/'~' reaching parsePrimary (rather than folded into a
		// following number by the lexer/litr) happens only when the next
		// byte after it isn't a digit; treat the remainder as invalid.
		p.next(lex.NormalExpectOperator)
		return &ast.Expr{Kind: ast.ExprInvalid, Span: sp, ContextSpan: sp}

	case token.Literal:
		text := p.textString(t)
		if allowNot && text == "NOT" {
			p.next(lex.Normal)
			operand := p.parsePrimary(allowNot)
			return &ast.Expr{Kind: ast.ExprNot, Operand: operand, Span: sp}
		}
		p.next(lex.NormalExpectOperator)
		return &ast.Expr{Kind: ast.ExprIdent, IdentText: p.text(t), Span: sp}

	default:
		p.mark(diag.ReasonExpectedToken, t, "expression")
		p.next(lex.NormalExpectOperator)
		return &ast.Expr{Kind: ast.ExprInvalid, Span: sp, ContextSpan: sp}
	}
}
