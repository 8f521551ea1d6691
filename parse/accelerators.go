package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/token"
)

// parseAcceleratorsBody parses the body of an ACCELERATORS resource:
// a brace-delimited list of "event, id [, type] [, option]*" entries
// (spec.md §4.5).
func (p *Parser) parseAcceleratorsBody() []ast.AcceleratorEntry {
	if p.tok.Kind != token.LBrace {
		p.mark(diag.ReasonExpectedToken, p.tok, "{")
		return nil
	}
	p.next(lex.Normal)

	var entries []ast.AcceleratorEntry
	for p.tok.Kind != token.RBrace && p.tok.Kind != token.EOF {
		start := p.tok
		isString := p.tok.Kind == token.QuotedASCIIString || p.tok.Kind == token.QuotedWideString
		event := p.parseExpr(false)
		p.expect(token.Comma, lex.Normal)
		id := p.parseExpr(false)

		entry := ast.AcceleratorEntry{Event: event, IsString: isString, ID: id, Span: p.span(start)}
		for p.tok.Kind == token.Comma {
			p.next(lex.Normal)
			if p.tok.Kind != token.Literal {
				break
			}
			switch p.textString(p.tok) {
			case "ASCII":
				entry.ASCII = true
			case "VIRTKEY":
				entry.VirtKey = true
			case "NOINVERT":
				entry.NoInvert = true
			case "SHIFT":
				entry.Shift = true
			case "CONTROL":
				entry.Control = true
			case "ALT":
				entry.Alt = true
			}
			p.next(lex.Normal)
		}
		if entry.VirtKey && entry.ASCII {
			p.markAt(diag.Error, diag.ReasonInvalidAcceleratorKey, entry.Span, "VIRTKEY and ASCII are mutually exclusive")
		}
		entries = append(entries, entry)
		if p.tok.Kind == token.Comma {
			p.next(lex.Normal)
		}
	}
	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}
	return entries
}
