package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/token"
)

// parseMenuBody parses the body of a MENU/MENUEX statement: a brace-
// delimited tree of MENUITEM/POPUP nodes (spec.md §4.5).
func (p *Parser) parseMenuBody(isEx bool) *ast.Menu {
	m := &ast.Menu{IsEx: isEx}
	if p.tok.Kind != token.LBrace {
		p.mark(diag.ReasonExpectedToken, p.tok, "{")
		return m
	}
	p.next(lex.Normal)
	m.Items = p.parseMenuItemList(isEx, 0)
	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}
	if len(m.Items) == 0 {
		p.markAt(diag.Warning, diag.ReasonEmptyMenu, p.span(p.tok), "")
	}
	return m
}

// parseMenuItemList parses a sequence of MENUITEM/POPUP statements up to
// (but not consuming) the closing brace, per spec.md §4.5.
func (p *Parser) parseMenuItemList(isEx bool, depth int) []*ast.MenuItem {
	if depth > maxMenuNesting {
		p.markAt(diag.Error, diag.ReasonNestingTooDeep, p.span(p.tok), "MENU")
		return nil
	}
	var items []*ast.MenuItem
	for p.tok.Kind == token.Literal {
		switch p.textString(p.tok) {
		case "MENUITEM":
			items = append(items, p.parseMenuItemLeaf(isEx))
		case "POPUP":
			items = append(items, p.parseMenuPopup(isEx, depth))
		default:
			return items
		}
	}
	return items
}

// parseMenuItemLeaf parses a single "MENUITEM ..." statement, including
// the classic grammar's SEPARATOR spelling and its option-keyword list, or
// the MENUEX grammar's positional id/type/state fields (spec.md §4.5).
func (p *Parser) parseMenuItemLeaf(isEx bool) *ast.MenuItem {
	start := p.tok
	p.next(lex.Normal) // consume MENUITEM
	item := &ast.MenuItem{Span: p.span(start)}

	if p.tok.Kind == token.Literal && p.textString(p.tok) == "SEPARATOR" {
		p.next(lex.Normal)
		item.IsSeparator = true
		return item
	}

	item.Text = p.parseExpr(false)
	if isEx {
		if p.tok.Kind == token.Comma {
			p.next(lex.Normal)
			item.ID = p.parseExpr(false)
			if p.tok.Kind == token.Comma {
				p.next(lex.Normal)
				item.Type = p.parseExpr(false)
				if p.tok.Kind == token.Comma {
					p.next(lex.Normal)
					item.State = p.parseExpr(false)
				}
			}
		}
		return item
	}

	p.expect(token.Comma, lex.Normal)
	item.ID = p.parseExpr(false)
	for p.tok.Kind == token.Comma {
		p.next(lex.Normal)
		if p.tok.Kind != token.Literal {
			break
		}
		item.Flags |= menuOptionFlag(p.textString(p.tok))
		p.next(lex.Normal)
	}
	return item
}

// parseMenuPopup parses a "POPUP <text> [, options]* { items }" statement,
// recursing into its child item list (spec.md §4.5).
func (p *Parser) parseMenuPopup(isEx bool, depth int) *ast.MenuItem {
	start := p.tok
	p.next(lex.Normal) // consume POPUP
	item := &ast.MenuItem{IsPopup: true, Span: p.span(start)}
	item.Text = p.parseExpr(false)

	if isEx {
		if p.tok.Kind == token.Comma {
			p.next(lex.Normal)
			item.ID = p.parseExpr(false)
			if p.tok.Kind == token.Comma {
				p.next(lex.Normal)
				item.Type = p.parseExpr(false)
				if p.tok.Kind == token.Comma {
					p.next(lex.Normal)
					item.State = p.parseExpr(false)
					if p.tok.Kind == token.Comma {
						p.next(lex.Normal)
						item.HelpID = p.parseExpr(false)
					}
				}
			}
		}
	} else {
		for p.tok.Kind == token.Comma {
			p.next(lex.Normal)
			if p.tok.Kind != token.Literal {
				break
			}
			item.Flags |= menuOptionFlag(p.textString(p.tok))
			p.next(lex.Normal)
		}
	}

	if p.tok.Kind != token.LBrace {
		p.mark(diag.ReasonExpectedToken, p.tok, "{")
		return item
	}
	p.next(lex.Normal)
	item.Children = p.parseMenuItemList(isEx, depth+1)
	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}
	return item
}

// menuOptionFlag maps a classic-MENU item option keyword to its MF_* bit
// (spec.md §4.5, GLOSSARY).
func menuOptionFlag(kw string) uint16 {
	switch kw {
	case "CHECKED":
		return 0x0008
	case "GRAYED":
		return 0x0001
	case "HELP":
		return 0x4000
	case "INACTIVE":
		return 0x0002
	case "MENUBARBREAK":
		return 0x0020
	case "MENUBREAK":
		return 0x0040
	}
	return 0
}
