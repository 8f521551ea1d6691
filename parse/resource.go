package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/token"
)

// parseIDLedResourceStmt implements spec.md §4.3 steps 1–5 for the common
// "<id> <type> <attrs> <body>" statement form.
func (p *Parser) parseIDLedResourceStmt() *ast.Stmt {
	idTok := p.tok
	idSpan := p.span(idTok)
	idText := append([]byte(nil), p.text(idTok)...)

	typeTok := p.next(lex.WhitespaceDelimiterOnly)
	if typeTok.Kind == token.EOF {
		// A dangling identifier at end of file is tolerated, not an error
		// (spec.md §4.3 "Recovery").
		return &ast.Stmt{Kind: ast.StmtInvalid, Span: idSpan}
	}
	typeSpan := p.span(typeTok)
	typeText := append([]byte(nil), p.text(typeTok)...)
	kind, numeric, ordinal := resourceTypeKeyword(typeText)

	if numeric && ordinal == ast.RTString {
		p.markAt(diag.Error, diag.ReasonStringTypeForbidden, typeSpan, "")
	}

	if kind == ast.ResFont && (len(idText) == 0 || !isASCIIDigit(idText[0])) {
		p.markAt(diag.Error, diag.ReasonInvalidFontOrdinal, idSpan, string(idText))
	}

	p.dialogExClassOrdinal = false

	p.next(lex.Normal)
	attrs := p.parseCommonAttrs(kind)

	stmt := &ast.Stmt{
		Kind:        ast.StmtResourceRawData,
		Span:        idSpan,
		ID:          ast.ResourceID{Text: idText, Span: idSpan},
		Type:        kind,
		TypeOrdinal: ordinal,
		TypeIsName:  !numeric,
		TypeName:    typeText,
		Attrs:       attrs,
	}

	switch kind {
	case ast.ResAccelerators:
		stmt.Kind = ast.StmtAccelerators
		stmt.Accelerators = p.parseAcceleratorsBody()
	case ast.ResDialog, ast.ResDialogEx:
		stmt.Kind = ast.StmtDialog
		stmt.Dialog = p.parseDialogBody(kind == ast.ResDialogEx)
	case ast.ResMenu, ast.ResMenuEx:
		stmt.Kind = ast.StmtMenu
		stmt.Menu = p.parseMenuBody(kind == ast.ResMenuEx)
	case ast.ResVersionInfo:
		stmt.Kind = ast.StmtVersionInfo
		stmt.VersionInfo = p.parseVersionInfoBody()
	case ast.ResToolbar:
		stmt.Kind = ast.StmtToolbar
		stmt.Toolbar = p.parseToolbarBody()
	case ast.ResDlgInclude:
		stmt.Kind = ast.StmtDlgInclude
		stmt.DlgIncludeFile = p.parseExpr(false)
	default:
		p.parseGenericBody(stmt)
	}
	return stmt
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseCommonAttrs reads the contiguous run of memory-flag keywords
// between a resource's type keyword and its body (spec.md §4.3 step 4).
// Keywords apply as deltas on top of kind's predefined default flags
// (spec.md §3/§4.5), not starting from zero.
func (p *Parser) parseCommonAttrs(kind ast.ResourceKind) ast.CommonAttrs {
	attrs := ast.CommonAttrs{MemFlags: ast.DefaultMemFlags(kind)}
	for p.tok.Kind == token.Literal && ast.IsAttrKeyword(p.textString(p.tok)) {
		attrs.MemFlags = attrs.MemFlags.ApplyAttrKeyword(p.textString(p.tok))
		p.next(lex.Normal)
	}
	for p.tok.Kind == token.Literal {
		switch p.textString(p.tok) {
		case "LANGUAGE":
			p.next(lex.Normal)
			primary := p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			sub := p.parseExpr(false)
			lang := primary.Eval().Value | (sub.Eval().Value << 10)
			attrs.Language = &ast.Expr{Kind: ast.ExprNumber, Number: litr.Number{Value: lang}}
			continue
		case "CHARACTERISTICS":
			p.next(lex.Normal)
			attrs.Characteristics = p.parseExpr(false)
			continue
		case "VERSION":
			p.next(lex.Normal)
			attrs.Version = p.parseExpr(false)
			continue
		}
		break
	}
	return attrs
}

// parseGenericBody parses the "generic" body grammar: either a brace-
// delimited raw-data list, or a single filename expression for an
// external resource (spec.md §4.3 step 5, §4.5, §4.6). The brace form is
// scoped to RCDATA and user-defined types (spec.md §4.5 "Raw data
// (RCDATA and user-defined)", §7's semantic taxonomy); every other
// predefined kind reaching this generic dispatch (BITMAP, ICON, CURSOR,
// FONT, MESSAGETABLE, HTML, MANIFEST, ...) only accepts the filename form.
func (p *Parser) parseGenericBody(stmt *ast.Stmt) {
	if p.tok.Kind == token.LBrace {
		if stmt.Type != ast.ResRCData && stmt.Type != ast.ResUserDefined {
			p.markAt(diag.Error, diag.ReasonUserDefinedRawDataForbidden, p.span(p.tok), string(stmt.TypeName))
		}
		p.next(lex.Normal)
		stmt.Kind = ast.StmtResourceRawData
		stmt.RawData = p.parseRawDataList()
		return
	}
	stmt.Kind = ast.StmtResourceExternal
	stmt.Filename = p.parseExpr(false)
}

// parseRawDataList parses a comma-separated list of number/string
// expressions up to the closing brace (spec.md §4.5 "Raw data").
func (p *Parser) parseRawDataList() []*ast.Expr {
	var items []*ast.Expr
	for p.tok.Kind != token.RBrace && p.tok.Kind != token.EOF {
		items = append(items, p.parseExpr(false))
		if p.tok.Kind == token.Comma {
			p.next(lex.Normal)
		}
	}
	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}
	return items
}
