package emit

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/resio"
)

// EmitDlgInclude implements SPEC_FULL.md's DLGINCLUDE rule: a single
// null-terminated ASCII string (the referenced header's path) as the
// entire payload, type ordinal RT_DLGINCLUDE = 17.
func EmitDlgInclude(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	path := exprAsFilename(stmt.DlgIncludeFile)
	payload := resio.NewWriter()
	payload.WriteBytes([]byte(path))
	payload.WriteByte(0)
	writeHeaderAndData(ctx, w, stmt, payload.Bytes())
	return nil
}
