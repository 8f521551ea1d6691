package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/token"
)

// parseVersionInfoBody parses a VERSIONINFO statement's fixed fields
// followed by its brace-delimited BLOCK/VALUE tree (spec.md §4.5, §6).
func (p *Parser) parseVersionInfoBody() *ast.VersionInfo {
	vi := &ast.VersionInfo{}
	for p.tok.Kind == token.Literal {
		switch p.textString(p.tok) {
		case "FILEVERSION":
			p.next(lex.Normal)
			vi.FileVersionMS[0] = p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			vi.FileVersionMS[1] = p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			vi.FileVersionLS[0] = p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			vi.FileVersionLS[1] = p.parseExpr(false)
		case "PRODUCTVERSION":
			p.next(lex.Normal)
			vi.ProductVersionMS[0] = p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			vi.ProductVersionMS[1] = p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			vi.ProductVersionLS[0] = p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			vi.ProductVersionLS[1] = p.parseExpr(false)
		case "FILEFLAGSMASK":
			p.next(lex.Normal)
			vi.FileFlagsMask = p.parseExpr(true)
		case "FILEFLAGS":
			p.next(lex.Normal)
			vi.FileFlags = p.parseExpr(true)
		case "FILEOS":
			p.next(lex.Normal)
			vi.FileOS = p.parseExpr(true)
		case "FILETYPE":
			p.next(lex.Normal)
			vi.FileType = p.parseExpr(true)
		case "FILESUBTYPE":
			p.next(lex.Normal)
			vi.FileSubtype = p.parseExpr(true)
		default:
			goto doneFields
		}
	}
doneFields:

	if p.tok.Kind != token.LBrace {
		p.mark(diag.ReasonExpectedToken, p.tok, "{")
		return vi
	}
	p.next(lex.Normal)
	vi.Blocks = p.parseVersionBlockList(0)
	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}
	return vi
}

// parseVersionBlockList parses a sequence of BLOCK/VALUE statements up to
// (but not consuming) the closing brace (spec.md §4.5).
func (p *Parser) parseVersionBlockList(depth int) []*ast.VersionInfoBlock {
	if depth > maxVersionInfoNesting {
		p.markAt(diag.Error, diag.ReasonNestingTooDeep, p.span(p.tok), "VERSIONINFO")
		return nil
	}
	var blocks []*ast.VersionInfoBlock
	for p.tok.Kind == token.Literal {
		switch p.textString(p.tok) {
		case "BLOCK":
			blocks = append(blocks, p.parseVersionBlock(depth))
		case "VALUE":
			blocks = append(blocks, p.parseVersionValueAsBlock())
		default:
			return blocks
		}
	}
	return blocks
}

// parseVersionBlock parses "BLOCK "key" { ... }", recursing into nested
// BLOCK/VALUE statements (spec.md §4.5).
func (p *Parser) parseVersionBlock(depth int) *ast.VersionInfoBlock {
	p.next(lex.Normal) // consume BLOCK
	keyTok := p.tok
	keyExpr := p.parseExpr(false)
	b := &ast.VersionInfoBlock{Key: keyExprText(keyExpr), Span: p.span(keyTok)}

	if p.tok.Kind != token.LBrace {
		p.mark(diag.ReasonExpectedToken, p.tok, "{")
		return b
	}
	p.next(lex.Normal)
	for p.tok.Kind == token.Literal && p.textString(p.tok) == "VALUE" {
		v, _ := p.parseVersionValue()
		b.Values = append(b.Values, v)
	}
	b.Children = p.parseVersionBlockList(depth + 1)
	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}
	return b
}

// parseVersionValueAsBlock wraps a top-level (non-nested-in-BLOCK) VALUE
// statement in a synthetic block node so VersionInfo.Blocks stays a single
// uniform sequence; the emitter recognizes it by Key == nil && len(Children)
// == 0 && len(Values) == 1.
func (p *Parser) parseVersionValueAsBlock() *ast.VersionInfoBlock {
	v, sp := p.parseVersionValue()
	return &ast.VersionInfoBlock{Values: []ast.VersionInfoValue{v}, Span: sp}
}

// parseVersionValue parses one "VALUE "key", val, val, ..." statement. A
// string value after the key with no separating comma triggers the
// reference-compiler padding-miscompile warning (spec.md §4.5, §7); the
// values themselves may mix strings and numbers, which separately
// triggers the mixed-value-length warning at emit time.
func (p *Parser) parseVersionValue() (ast.VersionInfoValue, diag.Span) {
	start := p.tok
	p.next(lex.Normal) // consume VALUE
	keyExpr := p.parseExpr(false)
	v := ast.VersionInfoValue{Key: keyExprText(keyExpr)}

	if p.tok.Kind == token.QuotedASCIIString || p.tok.Kind == token.QuotedWideString {
		p.markAt(diag.Warning, diag.ReasonVersionInfoMissingCommaBeforeString, p.span(p.tok), "")
	}
	for p.tok.Kind == token.Comma {
		p.next(lex.Normal)
		e := p.parseExpr(false)
		if e.Kind == ast.ExprNarrowString || e.Kind == ast.ExprWideString {
			if v.Text == nil && len(v.Numbers) == 0 {
				v.Text = e
			} else {
				v.Numbers = append(v.Numbers, e)
				p.markAt(diag.Warning, diag.ReasonVersionInfoMixedValueLengths, p.span(p.tok), "")
			}
		} else {
			v.Numbers = append(v.Numbers, e)
			if v.Text != nil {
				p.markAt(diag.Warning, diag.ReasonVersionInfoMixedValueLengths, p.span(p.tok), "")
			}
		}
	}
	return v, p.span(start)
}

func keyExprText(e *ast.Expr) []byte {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case ast.ExprNarrowString:
		return e.StringBytes
	case ast.ExprIdent:
		return e.IdentText
	}
	return nil
}
