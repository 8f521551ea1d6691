package emit

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/resio"
)

const (
	mfPopup = 0x10
	mfEnd   = 0x80
)

// EmitMenu implements spec.md §4.5's MENU/MENUEX item-tree payload.
func EmitMenu(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	payload := resio.NewWriter()
	if stmt.Menu.IsEx {
		writeMenuExHeader(payload)
	}
	writeMenuItems(payload, stmt.Menu.IsEx, stmt.Menu.Items)
	writeHeaderAndData(ctx, w, stmt, payload.Bytes())
	return nil
}

// writeMenuExHeader writes the 4-byte MENUEX template header (version=1,
// offset=4) that precedes a MENUEX item list.
func writeMenuExHeader(w *resio.Writer) {
	w.WriteU16(1)
	w.WriteU16(4)
}

func writeMenuItems(w *resio.Writer, isEx bool, items []*ast.MenuItem) {
	for i, item := range items {
		last := i == len(items)-1
		if isEx {
			writeMenuExItem(w, item, last)
		} else {
			writeMenuClassicItem(w, item, last)
		}
	}
}

func writeMenuClassicItem(w *resio.Writer, item *ast.MenuItem, last bool) {
	flags := item.Flags
	if item.IsPopup {
		flags |= mfPopup
	}
	if last {
		flags |= mfEnd
	}
	if item.IsSeparator {
		w.WriteU16(flags)
		w.WriteU16(0)
		w.WriteU16(0) // empty null-terminated title
		return
	}
	w.WriteU16(flags)
	if !item.IsPopup {
		w.WriteU16(uint16(item.ID.Eval().Value))
	}
	writeUTF16NullTerminated(w, exprToNameOrOrdinal(item.Text))
	if item.IsPopup {
		writeMenuItems(w, false, item.Children)
	}
}

func writeMenuExItem(w *resio.Writer, item *ast.MenuItem, last bool) {
	typ := uint32(0)
	if item.Type != nil {
		typ = item.Type.Eval().Value
	}
	state := uint32(0)
	if item.State != nil {
		state = item.State.Eval().Value
	}
	id := uint32(0)
	if item.ID != nil {
		id = item.ID.Eval().Value
	}
	flags := item.Flags
	if item.IsPopup {
		flags |= mfPopup
	}
	if last {
		flags |= mfEnd
	}

	w.WriteU32(typ)
	w.WriteU32(state)
	w.WriteU32(id)
	w.WriteU16(flags)
	writeUTF16NullTerminated(w, exprToNameOrOrdinal(item.Text))
	w.PadTo4()
	if item.IsPopup {
		helpID := uint32(0)
		if item.HelpID != nil {
			helpID = item.HelpID.Eval().Value
		}
		w.WriteU32(helpID)
		writeMenuItems(w, true, item.Children)
	}
}
