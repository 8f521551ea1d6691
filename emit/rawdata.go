package emit

import (
	"fmt"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/resfmt"
	"github.com/fzipp/rcc/resio"
)

// EmitRawData implements the "RCDATA and user-defined" payload rule of
// spec.md §4.5: the concatenation of the evaluated raw-data list, padded
// to a 4-byte boundary.
func EmitRawData(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	payload := resio.NewWriter()
	writeNumberExprList(payload, stmt.RawData)
	writeHeaderAndData(ctx, w, stmt, payload.Bytes())
	return nil
}

// EmitExternal implements spec.md §4.6: resolve filename against the
// source directory then the include path, and stream the file's bytes
// verbatim as the resource payload, per spec.md §5's bounded-buffer
// guidance. BITMAP and the icon/cursor group kinds have their own
// emitters and never reach here; this handles RCDATA-from-file,
// user-defined-from-file, FONT, FONTDIR, HTML, MESSAGETABLE, MANIFEST and
// similar "generic external" resources (SPEC_FULL.md Supplemental
// Features 3, 4).
func EmitExternal(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	filename := exprAsFilename(stmt.Filename)
	path, err := resfmt.ResolveFile(ctx.SourceDir, ctx.IncludeDirs, filename)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}
	size, err := resfmt.StreamFileSize(path)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}

	h := resio.Header{
		Type:        resourceTypeNameOrOrdinal(stmt),
		Name:        nameOrOrdinalFromID(stmt.ID),
		MemoryFlags: uint16(memFlags(stmt)),
		LanguageID:  ctx.resolveLanguage(stmt.Attrs, nil),
	}
	if stmt.Attrs.Version != nil {
		h.Version = stmt.Attrs.Version.Eval().Value
	}
	if stmt.Attrs.Characteristics != nil {
		h.Characteristics = stmt.Attrs.Characteristics.Eval().Value
	}

	resio.WriteResourceHeader(w, h, size)
	n, err := resfmt.CopyFileTo(w, path)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}
	if n != size {
		return fmt.Errorf("emit: %s: file size changed from %d to %d bytes while reading", filename, size, n)
	}
	w.PadTo4()
	return nil
}

// exprAsFilename reduces a filename expression to its string
// representation without evaluating it numerically, per spec.md §4.6:
// "the expression is reduced to its string representation, including
// operator characters, without evaluation."
func exprAsFilename(e *ast.Expr) string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case ast.ExprNarrowString:
		return string(e.StringBytes)
	case ast.ExprWideString:
		b := make([]byte, len(e.StringUnits))
		for i, u := range e.StringUnits {
			b[i] = byte(u)
		}
		return string(b)
	case ast.ExprIdent:
		return string(e.IdentText)
	case ast.ExprBinary:
		op := "+"
		switch e.Op {
		case ast.OpSub:
			op = "-"
		case ast.OpOr:
			op = "|"
		case ast.OpAnd:
			op = "&"
		}
		return exprAsFilename(e.Left) + op + exprAsFilename(e.Right)
	case ast.ExprGrouped:
		return "(" + exprAsFilename(e.Operand) + ")"
	case ast.ExprNumber:
		return fmt.Sprintf("%d", e.Number.Value)
	}
	return ""
}

// writeHeaderAndData frames a resource built from stmt's id/type/attrs
// around an already-built payload, per spec.md §3/§6.
func writeHeaderAndData(ctx *Context, w *resio.Writer, stmt *ast.Stmt, data []byte) {
	h := resio.Header{
		Type:        resourceTypeNameOrOrdinal(stmt),
		Name:        nameOrOrdinalFromID(stmt.ID),
		MemoryFlags: uint16(memFlags(stmt)),
		LanguageID:  ctx.resolveLanguage(stmt.Attrs, nil),
	}
	if stmt.Attrs.Version != nil {
		h.Version = stmt.Attrs.Version.Eval().Value
	}
	if stmt.Attrs.Characteristics != nil {
		h.Characteristics = stmt.Attrs.Characteristics.Eval().Value
	}
	resio.WriteResource(w, h, data)
}
