package emit

import (
	"fmt"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/resfmt"
	"github.com/fzipp/rcc/resio"
)

const groupIconCursorMemFlags = 0x1010

// EmitIconOrCursorGroup implements spec.md §4.5's GROUP_ICON/GROUP_CURSOR
// emission: read the external .ico/.cur directory, emit one RT_ICON/
// RT_CURSOR sub-resource per entry using the shared global id counter,
// then emit the group resource whose payload mirrors the directory with
// 16-bit sub-resource ids in place of file offsets.
func EmitIconOrCursorGroup(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	filename := exprAsFilename(stmt.Filename)
	path, err := resfmt.ResolveFile(ctx.SourceDir, ctx.IncludeDirs, filename)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}
	data, err := resfmt.ReadFile(path)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}
	dir, err := resfmt.ParseIconDir(data)
	if err != nil {
		return fmt.Errorf("emit: %s: %w", filename, err)
	}

	isCursor := stmt.Type == ast.ResCursor
	subType := ast.RTIcon
	groupType := ast.RTGroupIcon
	if isCursor {
		subType = ast.RTCursor
		groupType = ast.RTGroupCursor
	}

	ids := make([]uint16, len(dir.Entries))
	for i, entry := range dir.Entries {
		imgData, err := dir.ImageData(data, entry)
		if err != nil {
			return fmt.Errorf("emit: %s: %w", filename, err)
		}
		id := ctx.nextSubResourceID()
		ids[i] = id
		h := resio.Header{
			Type:        litr.Ordinal(uint16(subType)),
			Name:        litr.Ordinal(id),
			MemoryFlags: groupIconCursorMemFlags,
			LanguageID:  ctx.resolveLanguage(stmt.Attrs, nil),
		}
		resio.WriteResource(w, h, imgData)
	}

	groupPayload := resio.NewWriter()
	groupPayload.WriteBytes(resfmt.WriteGroupDirHeader(dir.Type, uint16(len(dir.Entries))))
	for i, entry := range dir.Entries {
		groupPayload.WriteBytes(resfmt.WriteGroupDirEntry(entry, ids[i]))
	}

	// stmt.Attrs.MemFlags was merged against stmt.Type's (ICON/CURSOR's)
	// default at parse time, but the group record defaults differently
	// (GROUP_ICON/GROUP_CURSOR, spec.md §4.5's table), so the attribute
	// keywords' net effect is rebased onto the group's own default
	// rather than applied directly.
	groupMemFlags := stmt.Attrs.MemFlags.Rebase(ast.DefaultMemFlags(stmt.Type), ast.DefaultMemFlags(ast.ResGroupIcon))
	gh := resio.Header{
		Type:        litr.Ordinal(uint16(groupType)),
		Name:        nameOrOrdinalFromID(stmt.ID),
		MemoryFlags: uint16(groupMemFlags),
		LanguageID:  ctx.resolveLanguage(stmt.Attrs, nil),
	}
	resio.WriteResource(w, gh, groupPayload.Bytes())
	return nil
}
