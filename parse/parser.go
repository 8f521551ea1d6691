// Package parse implements the recursive-descent parser of spec.md §4.3.
// It mirrors the teacher's orp.Parser in shape — a struct holding the
// scanner, a "current symbol" lookahead, and check/mark helpers — but the
// grammar itself has nothing in common with Oberon's: dispatch branches on
// the resource-type keyword discovered per statement (spec.md §4.3),
// exactly as spec.md §2 describes.
package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/token"
)

const (
	maxMenuNesting        = 512
	maxVersionInfoNesting = 512
	maxParenNesting       = 200
	maxDialogControls     = 65535
)

// Parser produces a syntax tree from a Lexer, per spec.md §4.3.
type Parser struct {
	lx     *lex.Lexer
	source []byte
	diags  *diag.List
	cps    *cpage.State

	tok       token.Token
	parenDepth int

	// dialogExClassOrdinal records, per-resource, whether a prior
	// CLASS/MENU value in the same DIALOGEX was classified as an
	// ordinal: once one is, subsequent CLASS/MENU statements in the same
	// resource are forced to be ordinals too (spec.md §4.3).
	dialogExClassOrdinal bool
}

// New creates a Parser over source, reporting diagnostics to diags and
// threading code-page changes through cps.
func New(source []byte, cps *cpage.State, diags *diag.List) *Parser {
	return &Parser{
		lx:     lex.New(source, cps, diags),
		source: source,
		diags:  diags,
		cps:    cps,
	}
}

func (p *Parser) next(mode lex.Mode) token.Token {
	p.tok = p.lx.Next(mode)
	return p.tok
}

func (p *Parser) text(t token.Token) []byte { return t.Text(p.source) }

func (p *Parser) textString(t token.Token) string { return string(p.text(t)) }

func (p *Parser) span(t token.Token) diag.Span {
	return diag.Span{Start: t.Start, End: t.End, Line: t.Line}
}

func (p *Parser) mark(reason diag.Reason, t token.Token, detail string) {
	d := diag.New(diag.Error, reason, p.span(t))
	if detail != "" {
		d = d.WithDetail(detail)
	}
	p.diags.Add(d)
}

func (p *Parser) markAt(kind diag.Kind, reason diag.Reason, sp diag.Span, detail string) {
	d := diag.New(kind, reason, sp)
	if detail != "" {
		d = d.WithDetail(detail)
	}
	p.diags.Add(d)
}

// expect consumes the current token if it matches kind, under mode for the
// *next* token; otherwise it marks ReasonExpectedToken and does not
// advance. It returns the (possibly stale) current token either way, as
// the teacher's orp.check does for ors.Sym.
func (p *Parser) expect(kind token.Kind, mode lex.Mode) token.Token {
	cur := p.tok
	if cur.Kind == kind {
		p.next(mode)
		return cur
	}
	p.mark(diag.ReasonExpectedToken, cur, kind.String())
	return cur
}

// Parse tokenizes and parses the entirety of source into a Root, per
// spec.md §3/§4.3. It stops at the first hard error (spec.md §4.3
// "Recovery": "The parser does not attempt recovery mid-statement; it
// reports the first hard error and returns"), except that a dangling
// identifier at end of file is folded into an Invalid statement rather
// than treated as an error, per the same section.
func Parse(source []byte, cps *cpage.State, diags *diag.List) *ast.Root {
	p := New(source, cps, diags)
	root := &ast.Root{}
	p.next(lex.Normal)
	for p.tok.Kind != token.EOF {
		if p.diags.HasErrors() {
			break
		}
		stmt := p.parseTopLevelStmt()
		if stmt == nil {
			break
		}
		root.Body = append(root.Body, stmt)
	}
	return root
}

func (p *Parser) parseTopLevelStmt() *ast.Stmt {
	if p.tok.Kind == token.Literal {
		switch p.textString(p.tok) {
		case "LANGUAGE":
			return p.parseLanguageStmt()
		case "VERSION", "CHARACTERISTICS":
			return p.parseTopLevelVersionOrCharacteristics()
		case "STRINGTABLE":
			return p.parseStringTableStmt(ast.CommonAttrs{})
		}
	}
	return p.parseIDLedResourceStmt()
}

func (p *Parser) parseLanguageStmt() *ast.Stmt {
	start := p.tok
	p.next(lex.Normal) // consume LANGUAGE
	primary := p.parseExpr(false)
	p.expect(token.Comma, lex.Normal)
	sub := p.parseExpr(false)
	return &ast.Stmt{Kind: ast.StmtLanguage, Span: p.span(start), LangPrimary: primary, LangSub: sub}
}

// parseTopLevelVersionOrCharacteristics handles a bare top-level VERSION or
// CHARACTERISTICS statement, which sets the compiler-wide default applied
// to any later resource statement that doesn't carry its own VERSION/
// CHARACTERISTICS attribute, mirroring LANGUAGE's file-default propagation
// (spec.md §8).
func (p *Parser) parseTopLevelVersionOrCharacteristics() *ast.Stmt {
	start := p.tok
	isVersion := p.textString(p.tok) == "VERSION"
	p.next(lex.Normal)
	value := p.parseExpr(false)
	return &ast.Stmt{
		Kind:                 ast.StmtDefaultAttr,
		Span:                 p.span(start),
		DefaultAttrIsVersion: isVersion,
		DefaultAttrValue:     value,
	}
}

// resourceTypeKeyword resolves a type keyword token into a ResourceKind,
// NameOrOrdinal classification for ordinal/user-defined types, per
// spec.md §3.
func resourceTypeKeyword(text []byte) (kind ast.ResourceKind, numeric bool, ordinal uint16) {
	switch string(text) {
	case "CURSOR":
		return ast.ResCursor, false, 0
	case "BITMAP":
		return ast.ResBitmap, false, 0
	case "ICON":
		return ast.ResIcon, false, 0
	case "MENU":
		return ast.ResMenu, false, 0
	case "MENUEX":
		return ast.ResMenuEx, false, 0
	case "DIALOG":
		return ast.ResDialog, false, 0
	case "DIALOGEX":
		return ast.ResDialogEx, false, 0
	case "FONT":
		return ast.ResFont, false, 0
	case "FONTDIR":
		return ast.ResFontDir, false, 0
	case "ACCELERATORS":
		return ast.ResAccelerators, false, 0
	case "RCDATA":
		return ast.ResRCData, false, 0
	case "MESSAGETABLE":
		return ast.ResMessageTable, false, 0
	case "VERSIONINFO":
		return ast.ResVersionInfo, false, 0
	case "DLGINCLUDE":
		return ast.ResDlgInclude, false, 0
	case "DLGINIT":
		return ast.ResDlgInit, false, 0
	case "TOOLBAR":
		return ast.ResToolbar, false, 0
	case "HTML":
		return ast.ResHTML, false, 0
	case "PLUGPLAY":
		return ast.ResPlugPlay, false, 0
	case "VXD":
		return ast.ResVxd, false, 0
	case "ANICURSOR":
		return ast.ResAniCursor, false, 0
	case "ANIICON":
		return ast.ResAniIcon, false, 0
	}
	n := litr.Classify(text)
	if n.IsOrdinal() {
		return ast.ClassifyResourceType(n.Ordinal), true, n.Ordinal
	}
	return ast.ResUserDefined, false, 0
}
