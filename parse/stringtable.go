package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/token"
)

// parseStringTableStmt parses a top-level "STRINGTABLE <attrs> { ... }"
// statement (spec.md §4.5). Language/version/characteristics attached to
// the statement partition bundles per-language, per the same section.
func (p *Parser) parseStringTableStmt(_ ast.CommonAttrs) *ast.Stmt {
	start := p.tok
	p.next(lex.Normal) // consume STRINGTABLE
	attrs := p.parseCommonAttrs(ast.ResString)

	if p.tok.Kind != token.LBrace {
		p.mark(diag.ReasonExpectedToken, p.tok, "{")
		return &ast.Stmt{Kind: ast.StmtInvalid, Span: p.span(start)}
	}
	p.next(lex.Normal)

	var entries []ast.StringTableEntry
	for p.tok.Kind != token.RBrace && p.tok.Kind != token.EOF {
		idTok := p.tok
		id := p.parseExpr(false)
		if p.tok.Kind == token.Comma {
			p.next(lex.Normal)
		}
		text := p.parseExpr(false)
		entries = append(entries, ast.StringTableEntry{ID: id, Text: text, Span: p.span(idTok)})
	}
	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}

	return &ast.Stmt{
		Kind:        ast.StmtStringTable,
		Span:        p.span(start),
		Attrs:       attrs,
		StringTable: &ast.StringTable{Entries: entries},
	}
}
