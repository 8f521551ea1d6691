package emit

import (
	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/resio"
)

// EmitAll implements spec.md §2/§6's top-level data flow: a sentinel
// header, then one frame per resource statement in source order, with
// STRINGTABLE entries accumulated and flushed once at the end so bundles
// spanning multiple statements partition correctly (spec.md §4.5, §9).
func EmitAll(ctx *Context, root *ast.Root) ([]byte, error) {
	w := resio.NewWriter()
	resio.WriteSentinelHeader(w)

	var fileLang *uint16
	var fileVersion, fileChars *ast.Expr
	for _, stmt := range root.Body {
		switch stmt.Kind {
		case ast.StmtLanguage:
			lang := stmt.LangPrimary.Eval().Low16() | (stmt.LangSub.Eval().Low16() << 10)
			fileLang = &lang
			continue
		case ast.StmtDefaultAttr:
			if stmt.DefaultAttrIsVersion {
				fileVersion = stmt.DefaultAttrValue
			} else {
				fileChars = stmt.DefaultAttrValue
			}
			continue
		}
		if err := emitStmt(ctx, w, stmt, fileLang, fileVersion, fileChars); err != nil {
			return nil, err
		}
	}
	ctx.FlushStringTables(w)
	return w.Bytes(), nil
}

func emitStmt(ctx *Context, w *resio.Writer, stmt *ast.Stmt, fileLang *uint16, fileVersion, fileChars *ast.Expr) error {
	if stmt.Attrs.Language == nil && fileLang != nil {
		lang := *fileLang
		stmt.Attrs.Language = &ast.Expr{Kind: ast.ExprNumber}
		stmt.Attrs.Language.Number.Value = uint32(lang)
	}
	if stmt.Attrs.Version == nil && fileVersion != nil {
		stmt.Attrs.Version = fileVersion
	}
	if stmt.Attrs.Characteristics == nil && fileChars != nil {
		stmt.Attrs.Characteristics = fileChars
	}

	switch stmt.Kind {
	case ast.StmtResourceRawData:
		return EmitRawData(ctx, w, stmt)
	case ast.StmtResourceExternal:
		return emitExternalByType(ctx, w, stmt)
	case ast.StmtStringTable:
		ctx.CollectStringTable(stmt)
		return nil
	case ast.StmtAccelerators:
		return EmitAccelerators(ctx, w, stmt)
	case ast.StmtDialog:
		return EmitDialog(ctx, w, stmt)
	case ast.StmtMenu:
		return EmitMenu(ctx, w, stmt)
	case ast.StmtVersionInfo:
		return EmitVersionInfo(ctx, w, stmt)
	case ast.StmtToolbar:
		return EmitToolbar(ctx, w, stmt)
	case ast.StmtDlgInclude:
		return EmitDlgInclude(ctx, w, stmt)
	case ast.StmtInvalid:
		return nil
	}
	return nil
}

func emitExternalByType(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	switch stmt.Type {
	case ast.ResIcon, ast.ResCursor:
		return EmitIconOrCursorGroup(ctx, w, stmt)
	case ast.ResBitmap:
		return EmitBitmap(ctx, w, stmt)
	default:
		return EmitExternal(ctx, w, stmt)
	}
}
