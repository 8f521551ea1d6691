package emit

import (
	"fmt"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/resfmt"
	"github.com/fzipp/rcc/resio"
)

// EmitBitmap implements spec.md §4.5's BITMAP rule: strip the 14-byte
// BITMAPFILEHEADER and emit the remainder verbatim, refusing (rather
// than reproducing) the reference's oversized-palette over-read.
func EmitBitmap(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	filename := exprAsFilename(stmt.Filename)
	path, err := resfmt.ResolveFile(ctx.SourceDir, ctx.IncludeDirs, filename)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}
	data, err := resfmt.ReadFile(path)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}
	body, err := resfmt.TrimBitmapFileHeader(data)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}
	writeHeaderAndData(ctx, w, stmt, body)
	return nil
}
