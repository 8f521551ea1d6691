package parse

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/token"
)

var controlPredefinedClass = map[string]string{
	"LTEXT": "STATIC", "CTEXT": "STATIC", "RTEXT": "STATIC", "ICON": "STATIC",
	"EDITTEXT":        "EDIT",
	"PUSHBUTTON":      "BUTTON", "DEFPUSHBUTTON": "BUTTON", "CHECKBOX": "BUTTON",
	"RADIOBUTTON":     "BUTTON", "GROUPBOX": "BUTTON", "PUSHBOX": "BUTTON",
	"AUTOCHECKBOX":    "BUTTON", "AUTORADIOBUTTON": "BUTTON", "AUTO3STATE": "BUTTON",
	"STATE3":          "BUTTON", "USERBUTTON": "BUTTON",
	"COMBOBOX":        "COMBOBOX",
	"LISTBOX":         "LISTBOX",
	"SCROLLBAR":       "SCROLLBAR",
}

// controlsWithoutText lists control keywords whose grammar has no leading
// text field (spec.md §4.5).
var controlsWithoutText = map[string]bool{
	"EDITTEXT": true, "COMBOBOX": true, "LISTBOX": true, "SCROLLBAR": true,
}

// parseDialogBody parses a DIALOG/DIALOGEX statement's body: the fixed
// header fields, optional statements (CAPTION/CLASS/STYLE/EXSTYLE/FONT/
// MENU), then the brace-delimited control list (spec.md §4.5, §6).
func (p *Parser) parseDialogBody(isEx bool) *ast.Dialog {
	d := &ast.Dialog{IsEx: isEx}
	d.X = p.parseExpr(false)
	p.expect(token.Comma, lex.Normal)
	d.Y = p.parseExpr(false)
	p.expect(token.Comma, lex.Normal)
	d.W = p.parseExpr(false)
	p.expect(token.Comma, lex.Normal)
	d.H = p.parseExpr(false)
	if isEx && p.tok.Kind == token.Comma {
		p.next(lex.Normal)
		d.HelpID = p.parseExpr(false)
	}

	for p.tok.Kind == token.Literal {
		switch p.textString(p.tok) {
		case "CAPTION":
			p.next(lex.Normal)
			d.Caption = p.parseExpr(false)
		case "CLASS":
			p.next(lex.Normal)
			d.ClassID = p.parseDialogExClassOrMenuValue()
		case "MENU":
			p.next(lex.Normal)
			d.MenuID = p.parseDialogExClassOrMenuValue()
		case "STYLE":
			p.next(lex.Normal)
			d.Style = p.parseExpr(true)
		case "EXSTYLE":
			p.next(lex.Normal)
			d.ExStyle = p.parseExpr(true)
		case "CHARACTERISTICS":
			p.next(lex.Normal)
			p.parseExpr(false)
		case "LANGUAGE":
			p.next(lex.Normal)
			p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			p.parseExpr(false)
		case "FONT":
			p.next(lex.Normal)
			d.HasFont = true
			d.FontSize = p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
			d.FontName = p.parseExpr(false)
			if isEx && p.tok.Kind == token.Comma {
				p.next(lex.Normal)
				d.FontWeight = p.parseExpr(false)
				if p.tok.Kind == token.Comma {
					p.next(lex.Normal)
					d.FontItalic = true // presence of a 3rd FONT arg marks italic per reference grammar
					p.parseExpr(false)
					if p.tok.Kind == token.Comma {
						p.next(lex.Normal)
						d.FontCharset = p.parseExpr(false)
					}
				}
			}
		default:
			goto doneOptionals
		}
	}
doneOptionals:

	if p.tok.Kind != token.LBrace {
		p.mark(diag.ReasonExpectedToken, p.tok, "{")
		return d
	}
	p.next(lex.Normal)
	for p.tok.Kind != token.RBrace && p.tok.Kind != token.EOF {
		if len(d.Controls) >= maxDialogControls {
			p.markAt(diag.Error, diag.ReasonTooManyControls, p.span(p.tok), "")
			break
		}
		ctrl := p.parseDialogControl(isEx)
		if ctrl == nil {
			break
		}
		d.Controls = append(d.Controls, ctrl)
	}
	if p.tok.Kind == token.RBrace {
		p.next(lex.Normal)
	} else {
		p.mark(diag.ReasonUnterminatedRawData, p.tok, "")
	}
	return d
}

// parseDialogExClassOrMenuValue implements the CLASS/MENU id-style scan of
// spec.md §4.3: if the value's first codepoint is a digit, the whole token
// is an ordinal via the quirky radix-10 algorithm; once one CLASS/MENU in
// a resource is an ordinal, later ones are forced to be ordinals too.
func (p *Parser) parseDialogExClassOrMenuValue() *ast.Expr {
	t := p.tok
	sp := p.span(t)
	text := p.text(t)
	forcedOrdinal := p.dialogExClassOrdinal
	if (len(text) > 0 && isASCIIDigit(text[0])) || forcedOrdinal {
		p.dialogExClassOrdinal = true
		v := quirkyOrdinalScan(text)
		p.next(lex.Normal)
		return &ast.Expr{Kind: ast.ExprNumber, Number: litr.Number{Value: uint32(v)}, Span: sp}
	}
	return p.parseExpr(false)
}

// quirkyOrdinalScan implements the "subtract '0' and multiply by radix 10
// with wrap" algorithm spec.md §4.3 calls out for DIALOGEX CLASS/MENU
// ordinal values: each decimal digit feeds value = value*10 + (d - '0'),
// wrapping modulo 2^16, stopping at the first non-digit.
func quirkyOrdinalScan(text []byte) uint16 {
	var v uint16
	for _, b := range text {
		if b < '0' || b > '9' {
			break
		}
		v = v*10 + uint16(b-'0')
	}
	return v
}

// parseDialogControl parses one control statement inside a DIALOG/
// DIALOGEX body (spec.md §4.5).
func (p *Parser) parseDialogControl(isEx bool) *ast.DialogControl {
	kindTok := p.tok
	if kindTok.Kind != token.Literal {
		p.mark(diag.ReasonExpectedToken, kindTok, "control keyword")
		return nil
	}
	kind := p.textString(kindTok)
	sp := p.span(kindTok)
	p.next(lex.Normal)

	ctrl := &ast.DialogControl{Kind: kind, Span: sp}

	if kind == "CONTROL" {
		ctrl.Text = p.parseExpr(false)
		p.expect(token.Comma, lex.Normal)
		ctrl.ID = p.parseExpr(false)
		p.expect(token.Comma, lex.Normal)
		ctrl.ClassID = p.parseExpr(false)
		p.expect(token.Comma, lex.Normal)
		ctrl.Style = p.parseExpr(true)
		p.expect(token.Comma, lex.Normal)
	} else {
		predefined, known := controlPredefinedClass[kind]
		if !known {
			predefined = "STATIC"
		}
		ctrl.ClassID = &ast.Expr{Kind: ast.ExprIdent, IdentText: []byte(predefined), Span: sp}
		if !controlsWithoutText[kind] {
			ctrl.Text = p.parseExpr(false)
			p.expect(token.Comma, lex.Normal)
		}
		ctrl.ID = p.parseExpr(false)
		p.expect(token.Comma, lex.Normal)
	}

	ctrl.X = p.parseExpr(false)
	p.expect(token.Comma, lex.Normal)
	ctrl.Y = p.parseExpr(false)
	p.expect(token.Comma, lex.Normal)
	ctrl.W = p.parseExpr(false)
	p.expect(token.Comma, lex.Normal)
	ctrl.H = p.parseExpr(false)

	if p.tok.Kind == token.Comma {
		p.next(lex.Normal)
		ctrl.Style = p.parseExpr(true)
		if p.tok.Kind == token.Comma {
			p.next(lex.Normal)
			ctrl.ExStyle = p.parseExpr(true)
			if isEx && p.tok.Kind == token.Comma {
				p.next(lex.Normal)
				ctrl.HelpID = p.parseExpr(false)
			}
		}
	} else if p.tok.Kind == token.Number || p.tok.Kind == token.Literal {
		// The reference compiler's grammar tolerates a missing comma
		// before the next control's position here and absorbs the
		// following tokens into this control's style field instead of
		// erroring; we decline to reproduce that silent miscompile and
		// instead warn and stop this control's field list (spec.md §4.3,
		// §7).
		p.markAt(diag.Warning, diag.ReasonStyleMissingComma, p.span(p.tok), "")
		ctrl.MissingComma = true
	}
	return ctrl
}
