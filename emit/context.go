// Package emit implements the per-resource-type code generators of
// spec.md §4.5: each function evaluates a resource statement's
// expressions, builds its binary payload, and frames it with the
// resource header via resio. Dispatch is a switch on ast.Stmt.Kind
// (spec.md §9: "tagged sum ... emitter dispatch is a match on the tag"),
// directly modeled on the teacher's org.Generator, which switches on
// orb.Object.Class to pick a code-generation path.
package emit

import (
	"log/slog"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/resio"
)

// Context threads the cross-statement mutable state spec.md §5/§9 allow:
// the icon/cursor sub-resource id counter and the code-page table. It is
// the direct analogue of the teacher's org.Generator holding a *orb.Scope
// and symbol table across a compilation unit.
type Context struct {
	CPS    *cpage.State
	Diags  *diag.List
	Logger *slog.Logger

	SourceDir   string
	IncludeDirs []string

	DefaultLanguageID uint16
	MaxStringCodeUnits int
	NullTerminateStringTableStrings bool

	// nextIconID is the shared global icon/cursor sub-resource id counter
	// (spec.md §4.5 "Sub-resource ids are assigned in file order and
	// increment once per emitted entry across the whole compilation").
	nextIconID uint16

	// stringBundles accumulates STRINGTABLE entries across every
	// statement in the compilation, keyed by (language id, bundle index),
	// flushed once at the end of Compile (spec.md §4.5, §9).
	stringBundles map[bundleKey]*bundle
	bundleOrder   []bundleKey
}

type bundleKey struct {
	language uint16
	index    uint16
}

type bundle struct {
	entries [16]*stringEntry
	version *ast.Expr
	chars   *ast.Expr
	memFlags ast.MemFlags
}

type stringEntry struct {
	units []uint16
}

// NewContext creates an emit Context with its icon id counter freshly
// seeded at 1, per spec.md §4.5 ("starts at 1").
func NewContext(cps *cpage.State, diags *diag.List, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		CPS:                cps,
		Diags:              diags,
		Logger:             logger,
		DefaultLanguageID:  0x0409,
		MaxStringCodeUnits: 4097,
		nextIconID:         1,
		stringBundles:      make(map[bundleKey]*bundle),
	}
}

// nextSubResourceID returns the next free icon/cursor sub-resource id and
// advances the counter.
func (c *Context) nextSubResourceID() uint16 {
	id := c.nextIconID
	c.nextIconID++
	return id
}

// resolveLanguage returns attrs.Language's evaluated value if present,
// otherwise the context default (spec.md §8 round-trip property:
// "LANGUAGE p, s followed by any resource without its own LANGUAGE emits
// language_id = p | (s<<10)").
func (c *Context) resolveLanguage(attrs ast.CommonAttrs, fileDefault *uint16) uint16 {
	if attrs.Language != nil {
		return attrs.Language.Eval().Low16()
	}
	if fileDefault != nil {
		return *fileDefault
	}
	return c.DefaultLanguageID
}

// nameOrOrdinalFromID classifies a resource's leading id text into a
// NameOrOrdinal, per spec.md §3.
func nameOrOrdinalFromID(id ast.ResourceID) litr.NameOrOrdinal {
	return litr.Classify(id.Text)
}

// resourceTypeNameOrOrdinal resolves a statement's type field to the
// NameOrOrdinal written to its resource header: a predefined type's
// reserved ordinal, a numeric user-defined ordinal, or a Name for a
// quoted/bare user-defined type keyword (spec.md §3).
func resourceTypeNameOrOrdinal(stmt *ast.Stmt) litr.NameOrOrdinal {
	if ord, ok := predefinedTypeOrdinal(stmt.Type); ok {
		return litr.Ordinal(ord)
	}
	if !stmt.TypeIsName {
		return litr.Ordinal(stmt.TypeOrdinal)
	}
	return litr.Classify(stmt.TypeName)
}

func predefinedTypeOrdinal(k ast.ResourceKind) (uint16, bool) {
	switch k {
	case ast.ResCursor:
		return ast.RTCursor, true
	case ast.ResBitmap:
		return ast.RTBitmap, true
	case ast.ResIcon:
		return ast.RTIcon, true
	case ast.ResMenu, ast.ResMenuEx:
		return ast.RTMenu, true
	case ast.ResDialog, ast.ResDialogEx:
		return ast.RTDialog, true
	case ast.ResString:
		return ast.RTString, true
	case ast.ResFontDir:
		return ast.RTFontDir, true
	case ast.ResFont:
		return ast.RTFont, true
	case ast.ResAccelerators:
		return ast.RTAccelerator, true
	case ast.ResRCData:
		return ast.RTRCData, true
	case ast.ResMessageTable:
		return ast.RTMessageTable, true
	case ast.ResGroupCursor:
		return ast.RTGroupCursor, true
	case ast.ResGroupIcon:
		return ast.RTGroupIcon, true
	case ast.ResVersionInfo:
		return ast.RTVersion, true
	case ast.ResDlgInclude:
		return ast.RTDlgInclude, true
	case ast.ResPlugPlay:
		return ast.RTPlugPlay, true
	case ast.ResVxd:
		return ast.RTVxd, true
	case ast.ResAniCursor:
		return ast.RTAniCursor, true
	case ast.ResAniIcon:
		return ast.RTAniIcon, true
	case ast.ResHTML:
		return ast.RTHTML, true
	case ast.ResManifest:
		return ast.RTManifest, true
	case ast.ResDlgInit:
		return ast.RTDlgInit, true
	case ast.ResToolbar:
		return ast.RTToolbar, true
	}
	return 0, false
}

// memFlags resolves a statement's effective memory flags. The parser
// seeds Attrs.MemFlags from the predefined default for the statement's
// kind and applies any attribute keywords on top of it, each setting or
// clearing its bits (spec.md §3/§4.5),
// so the merged value is already sitting in Attrs.MemFlags.
func memFlags(stmt *ast.Stmt) ast.MemFlags {
	return stmt.Attrs.MemFlags
}

// writeNumberExprList writes each expression in items as raw data: a
// number per is_long, a narrow string's transcoded bytes, or a wide
// string's UTF-16 code units, with no terminators (spec.md §4.5).
func writeNumberExprList(w *resio.Writer, items []*ast.Expr) {
	for _, e := range items {
		writeExprAsData(w, e)
	}
}

func writeExprAsData(w *resio.Writer, e *ast.Expr) {
	if e == nil {
		return
	}
	switch e.Kind {
	case ast.ExprNarrowString:
		w.WriteBytes(e.StringBytes)
	case ast.ExprWideString:
		for _, u := range e.StringUnits {
			w.WriteU16(u)
		}
	default:
		w.WriteNumber(e.Eval())
	}
}
