package emit

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/resio"
)

const (
	accFVirtKey  = 0x01
	accFNoInvert = 0x02
	accFShift    = 0x04
	accFControl  = 0x08
	accFAlt      = 0x10
	accFLast     = 0x80
)

// EmitAccelerators implements spec.md §4.5's ACCELERATORS payload: an
// array of 8-byte {flags, event, idvalue, pad=0} entries, with the final
// entry's flags carrying the 0x80 "last entry" bit.
func EmitAccelerators(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	payload := resio.NewWriter()
	entries := stmt.Accelerators
	for i, e := range entries {
		event, ok := acceleratorEventCode(ctx, e)
		if !ok {
			continue
		}
		flags := acceleratorFlags(e)
		if i == len(entries)-1 {
			flags |= accFLast
		}
		payload.WriteU16(flags)
		payload.WriteU16(event)
		payload.WriteU16(uint16(e.ID.Eval().Value))
		payload.WriteU16(0)
	}
	writeHeaderAndData(ctx, w, stmt, payload.Bytes())
	return nil
}

func acceleratorFlags(e ast.AcceleratorEntry) uint16 {
	var f uint16
	if e.VirtKey {
		f |= accFVirtKey
	}
	if e.NoInvert {
		f |= accFNoInvert
	}
	if e.Shift {
		f |= accFShift
	}
	if e.Control {
		f |= accFControl
	}
	if e.Alt {
		f |= accFAlt
	}
	return f
}

// acceleratorEventCode implements the accelerator-key algorithm of
// spec.md §4.5: a quoted "^X" control-key escape, a one- or two-codepoint
// string (optionally upper-cased for VIRTKEY), or a bare numeric key code.
func acceleratorEventCode(ctx *Context, e ast.AcceleratorEntry) (uint16, bool) {
	if !e.IsString {
		return uint16(e.Event.Eval().Value), true
	}
	runes := acceleratorStringRunes(e.Event)
	if len(runes) >= 3 && runes[2] == 0 {
		runes = runes[:2]
	}
	switch len(runes) {
	case 0:
		return 0, false
	case 1:
		r := runes[0]
		if e.VirtKey && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		return accCodepointToEvent(r), true
	case 2:
		if runes[0] == '^' {
			c := runes[1]
			if c == '^' {
				return uint16('^'), true
			}
			upper := c
			if upper >= 'a' && upper <= 'z' {
				upper -= 'a' - 'A'
			}
			if upper < 'A' || upper > 'Z' {
				ctx.Diags.Add(diag.New(diag.Error, diag.ReasonInvalidAcceleratorKey, e.Span).
					WithDetail("'^' escape must be followed by A-Z"))
				return 0, false
			}
			return uint16(upper) - 0x40, true
		}
		first, second := runes[0], runes[1]
		return (uint16(accCodepointToEvent(first)) << 8) | uint16(accCodepointToEvent(second)), true
	default:
		ctx.Diags.Add(diag.New(diag.Error, diag.ReasonInvalidAcceleratorKey, e.Span).
			WithDetail("accelerator string must be 1 or 2 codepoints"))
		return 0, false
	}
}

// accCodepointToEvent folds a codepoint >= 0x10000 through the reference's
// fixed surrogate-based transform (spec.md §4.5); codepoints in the BMP
// pass through unchanged.
func accCodepointToEvent(r rune) uint16 {
	if r < 0x10000 {
		return uint16(r)
	}
	v := r - 0x10000
	high := 0xD800 + (v >> 10)
	low := 0xDC00 + (v & 0x3FF)
	return uint16(high) ^ uint16(low)
}

func acceleratorStringRunes(e *ast.Expr) []rune {
	if e == nil {
		return nil
	}
	if e.Kind == ast.ExprWideString {
		runes := make([]rune, len(e.StringUnits))
		for i, u := range e.StringUnits {
			runes[i] = rune(u)
		}
		return runes
	}
	return []rune(string(e.StringBytes))
}
