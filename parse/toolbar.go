package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/token"
)

// parseToolbarBody parses the supplemental TOOLBAR resource body: a
// leading button width/height pair, then a brace-delimited list of
// "BUTTON <id>" / "SEPARATOR" statements (SPEC_FULL.md "Supplemental
// Features").
func (p *Parser) parseToolbarBody() *ast.Toolbar {
	tb := &ast.Toolbar{}
	tb.ButtonWidth = p.parseExpr(false)
	p.expect(token.Comma, lex.Normal)
	tb.ButtonHeight = p.parseExpr(false)

	if p.tok.Kind != token.LBrace {
		p.mark(diag.ReasonExpectedToken, p.tok, "{")
		return tb
	}
	p.next(lex.Normal)
	for p.tok.Kind == token.Literal {
		switch p.textString(p.tok) {
		case "BUTTON":
			p.next(lex.Normal)
			tb.Buttons = append(tb.Buttons, p.parseExpr(false))
		case "SEPARATOR":
			p.next(lex.Normal)
			tb.Buttons = append(tb.Buttons, nil)
		default:
			goto doneButtons
		}
	}
doneButtons:

	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}
	return tb
}
