package emit

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/resio"
)

const (
	wsChild   = 0x40000000
	wsVisible = 0x10000000
	dsSetFont = 0x40

	predefinedButton    = 0x80
	predefinedEdit      = 0x81
	predefinedStatic    = 0x82
	predefinedListbox   = 0x83
	predefinedScrollbar = 0x84
	predefinedCombobox  = 0x85

	wsTabstop = 0x00010000
	wsBorder  = 0x00800000
	wsVscroll = 0x00200000

	bsPushbutton      = 0x00000000
	bsDefpushbutton   = 0x00000001
	bsCheckbox        = 0x00000002
	bsAutocheckbox    = 0x00000003
	bsRadiobutton     = 0x00000004
	bs3state          = 0x00000005
	bsAuto3state      = 0x00000006
	bsGroupbox        = 0x00000007
	bsUserbutton      = 0x00000008
	bsAutoradiobutton = 0x00000009
	bsPushbox         = 0x0000000A

	esLeft = 0x00000000

	ssLeft   = 0x00000000
	ssCenter = 0x00000001
	ssRight  = 0x00000002
	ssIcon   = 0x00000003

	cbsSimple = 0x0001
	lbsNotify = 0x0001
	sbsHoriz  = 0x0000
)

// controlImplicitStyle gives each non-CONTROL control keyword its
// class-specific style bits, ORed into the control's style unconditionally
// (spec.md §4.5: "specific kinds add further flags" on top of the
// explicit/default WS_CHILD|WS_VISIBLE base). CONTROL itself carries no
// implicit bits; its style is whatever the statement spells out.
var controlImplicitStyle = map[string]uint32{
	"LTEXT":           ssLeft,
	"CTEXT":           ssCenter,
	"RTEXT":           ssRight,
	"ICON":            ssIcon,
	"EDITTEXT":        esLeft | wsBorder | wsTabstop,
	"PUSHBUTTON":      bsPushbutton | wsTabstop,
	"DEFPUSHBUTTON":   bsDefpushbutton | wsTabstop,
	"CHECKBOX":        bsCheckbox | wsTabstop,
	"AUTOCHECKBOX":    bsAutocheckbox | wsTabstop,
	"RADIOBUTTON":     bsRadiobutton | wsTabstop,
	"AUTORADIOBUTTON": bsAutoradiobutton | wsTabstop,
	"AUTO3STATE":      bsAuto3state | wsTabstop,
	"STATE3":          bs3state | wsTabstop,
	"GROUPBOX":        bsGroupbox,
	"PUSHBOX":         bsPushbox,
	"USERBUTTON":      bsUserbutton,
	"COMBOBOX":        cbsSimple | wsTabstop,
	"LISTBOX":         lbsNotify | wsBorder | wsVscroll,
	"SCROLLBAR":       sbsHoriz,
}

// EmitDialog implements spec.md §6's DIALOG/DIALOGEX on-disk layout and
// §4.5's control-emission rules.
func EmitDialog(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	d := stmt.Dialog
	payload := resio.NewWriter()

	style := uint32(0)
	if d.Style != nil {
		style = d.Style.Eval().Value
	}
	if d.HasFont {
		style |= dsSetFont
	}
	exstyle := uint32(0)
	if d.ExStyle != nil {
		exstyle = d.ExStyle.Eval().Value
	}

	if d.IsEx {
		payload.WriteU16(1)      // version
		payload.WriteU16(0xFFFF) // signature
		helpID := uint32(0)
		if d.HelpID != nil {
			helpID = d.HelpID.Eval().Value
		}
		payload.WriteU32(helpID)
		payload.WriteU32(exstyle)
		payload.WriteU32(style)
	} else {
		payload.WriteU32(style)
		payload.WriteU32(exstyle)
	}
	payload.WriteU16(uint16(len(d.Controls)))
	payload.WriteU16(uint16(d.X.Eval().Value))
	payload.WriteU16(uint16(d.Y.Eval().Value))
	payload.WriteU16(uint16(d.W.Eval().Value))
	payload.WriteU16(uint16(d.H.Eval().Value))

	writeDialogMenuOrClass(payload, d.MenuID)
	writeDialogMenuOrClass(payload, d.ClassID)
	writeDialogTitle(payload, d.Caption)

	if d.HasFont {
		payload.WriteU16(uint16(d.FontSize.Eval().Value))
		if d.IsEx {
			weight := uint16(0)
			if d.FontWeight != nil {
				weight = uint16(d.FontWeight.Eval().Value)
			}
			payload.WriteU16(weight)
			italic := byte(0)
			if d.FontItalic {
				italic = 1
			}
			payload.WriteByte(italic)
			charset := byte(1) // DEFAULT_CHARSET
			if d.FontCharset != nil {
				charset = byte(d.FontCharset.Eval().Value)
			}
			payload.WriteByte(charset)
		}
		writeUTF16NullTerminated(payload, exprToNameOrOrdinal(d.FontName))
	}

	payload.PadTo4()
	for _, ctrl := range d.Controls {
		emitDialogControl(payload, d.IsEx, ctrl)
	}

	writeHeaderAndData(ctx, w, stmt, payload.Bytes())
	return nil
}

// writeDialogMenuOrClass writes the MENU/CLASS field: absent becomes a
// zero-length Name (a single NUL code unit), per reference behavior.
func writeDialogMenuOrClass(w *resio.Writer, e *ast.Expr) {
	if e == nil {
		w.WriteU16(0)
		return
	}
	w.WriteNameOrOrdinal(exprToNameOrOrdinal(e))
}

func writeDialogTitle(w *resio.Writer, e *ast.Expr) {
	if e == nil {
		w.WriteU16(0)
		return
	}
	writeUTF16NullTerminated(w, exprToNameOrOrdinal(e))
}

// writeUTF16NullTerminated writes a NameOrOrdinal: a Name as its UTF-16
// code units followed by a single NUL, an Ordinal as 0xFFFF followed by
// its 16-bit value.
func writeUTF16NullTerminated(w *resio.Writer, n litr.NameOrOrdinal) {
	if n.IsOrdinal() {
		w.WriteU16(0xFFFF)
		w.WriteU16(n.Ordinal)
		return
	}
	for _, u := range n.Name {
		w.WriteU16(u)
	}
	w.WriteU16(0)
}

// exprToNameOrOrdinal classifies an already-evaluated Expr (already
// resolved by the parser's DIALOGEX CLASS/MENU ordinal-quirk handling,
// or a plain string/ident elsewhere) into a NameOrOrdinal for framing.
func exprToNameOrOrdinal(e *ast.Expr) litr.NameOrOrdinal {
	if e == nil {
		return litr.NameOrOrdinal{}
	}
	switch e.Kind {
	case ast.ExprNumber:
		return litr.Ordinal(e.Number.Low16())
	case ast.ExprNarrowString:
		return litr.Classify(e.StringBytes)
	case ast.ExprIdent:
		return litr.Classify(e.IdentText)
	}
	return litr.NameOrOrdinal{}
}

// emitDialogControl writes one control's fixed fields, NameOrOrdinal
// class/title, and creation-data blob, padded to a 4-byte boundary
// (spec.md §4.5).
func emitDialogControl(w *resio.Writer, isEx bool, c *ast.DialogControl) {
	style := uint32(wsChild | wsVisible | controlImplicitStyle[c.Kind])
	if c.Style != nil {
		style |= c.Style.Eval().Value
	}
	exstyle := uint32(0)
	if c.ExStyle != nil {
		exstyle = c.ExStyle.Eval().Value
	}

	if isEx {
		helpID := uint32(0)
		if c.HelpID != nil {
			helpID = c.HelpID.Eval().Value
		}
		w.WriteU32(helpID)
		w.WriteU32(exstyle)
		w.WriteU32(style)
	} else {
		w.WriteU32(style)
		w.WriteU32(exstyle)
	}
	w.WriteU16(uint16(c.X.Eval().Value))
	w.WriteU16(uint16(c.Y.Eval().Value))
	w.WriteU16(uint16(c.W.Eval().Value))
	w.WriteU16(uint16(c.H.Eval().Value))
	if isEx {
		w.WriteU32(c.ID.Eval().Value)
	} else {
		w.WriteU16(uint16(c.ID.Eval().Value))
	}

	w.WriteNameOrOrdinal(controlClassNameOrOrdinal(c.ClassID))
	if c.Text != nil {
		w.WriteNameOrOrdinal(exprToNameOrOrdinal(c.Text))
	} else {
		w.WriteU16(0)
	}

	if len(c.CreationData) > 0 {
		w.WriteU16(uint16(len(c.CreationData)))
		w.WriteBytes(c.CreationData)
	} else {
		w.WriteU16(0)
	}
	w.PadTo4()
}

// controlClassNameOrOrdinal maps a predefined class identifier to its
// 16-bit ordinal, per spec.md §4.5's table; any other class (CONTROL's
// explicit class, or a quoted class name) classifies as a regular
// NameOrOrdinal.
func controlClassNameOrOrdinal(e *ast.Expr) litr.NameOrOrdinal {
	if e == nil {
		return litr.NameOrOrdinal{}
	}
	if e.Kind == ast.ExprIdent {
		switch string(e.IdentText) {
		case "BUTTON":
			return litr.Ordinal(predefinedButton)
		case "EDIT":
			return litr.Ordinal(predefinedEdit)
		case "STATIC":
			return litr.Ordinal(predefinedStatic)
		case "LISTBOX":
			return litr.Ordinal(predefinedListbox)
		case "SCROLLBAR":
			return litr.Ordinal(predefinedScrollbar)
		case "COMBOBOX":
			return litr.Ordinal(predefinedCombobox)
		}
	}
	return exprToNameOrOrdinal(e)
}
