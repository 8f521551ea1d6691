package emit

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/resio"
)

// EmitToolbar implements the supplemental TOOLBAR payload of
// SPEC_FULL.md: a version word, the button width/height pair, an item
// count, then one 16-bit id per button (0 for a SEPARATOR).
func EmitToolbar(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	tb := stmt.Toolbar
	payload := resio.NewWriter()
	payload.WriteU16(1) // version
	payload.WriteU16(uint16(tb.ButtonWidth.Eval().Value))
	payload.WriteU16(uint16(tb.ButtonHeight.Eval().Value))
	payload.WriteU16(uint16(len(tb.Buttons)))
	for _, b := range tb.Buttons {
		if b == nil {
			payload.WriteU16(0)
			continue
		}
		payload.WriteU16(uint16(b.Eval().Value))
	}
	writeHeaderAndData(ctx, w, stmt, payload.Bytes())
	return nil
}
