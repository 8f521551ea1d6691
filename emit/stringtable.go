package emit

import (
	"sort"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/resio"
)

// CollectStringTable accumulates one STRINGTABLE statement's entries into
// the context's cross-statement bundle map, per spec.md §4.5: "Strings
// are grouped into bundles of 16 by id>>4 ... Language ... attached to
// STRINGTABLE statements partition bundles." Actual emission is deferred
// to FlushStringTables so that every statement in the compilation has
// contributed before bundles are written (spec.md §9 "Emission iterates
// this map in sorted order").
func (c *Context) CollectStringTable(stmt *ast.Stmt) {
	lang := c.resolveLanguage(stmt.Attrs, nil)
	for _, entry := range stmt.StringTable.Entries {
		id := uint16(entry.ID.Eval().Value)
		key := bundleKey{language: lang, index: id >> 4}
		b := c.stringBundles[key]
		if b == nil {
			b = &bundle{}
			c.stringBundles[key] = b
			c.bundleOrder = append(c.bundleOrder, key)
		}
		slot := id & 0xF
		if b.entries[slot] != nil {
			c.Diags.Add(diag.New(diag.Error, diag.ReasonDuplicateStringID, entry.Span).
				WithDetail("duplicate STRINGTABLE id"))
			continue
		}
		units := stringExprUnits(entry.Text)
		if len(units) > c.MaxStringCodeUnits {
			c.Diags.Add(diag.New(diag.Error, diag.ReasonStringLiteralTooLong, entry.Span).
				WithDetail("exceeds configured maximum string length"))
		}
		b.entries[slot] = &stringEntry{units: units}
		if stmt.Attrs.Version != nil {
			b.version = stmt.Attrs.Version
		}
		if stmt.Attrs.Characteristics != nil {
			b.chars = stmt.Attrs.Characteristics
		}
		// stmt.Attrs.MemFlags was already merged against RT_STRING's own
		// default at parse time (parseCommonAttrs(ast.ResString)).
		b.memFlags = stmt.Attrs.MemFlags
	}
}

// FlushStringTables writes every accumulated STRINGTABLE bundle as its
// own RT_STRING resource, in sorted (language, bundle index) order
// (spec.md §4.5, §9).
func (c *Context) FlushStringTables(w *resio.Writer) {
	keys := append([]bundleKey(nil), c.bundleOrder...)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].language != keys[j].language {
			return keys[i].language < keys[j].language
		}
		return keys[i].index < keys[j].index
	})
	for _, k := range keys {
		b := c.stringBundles[k]
		payload := resio.NewWriter()
		for _, slot := range b.entries {
			if slot == nil {
				payload.WriteU16(0)
				continue
			}
			payload.WriteU16(uint16(len(slot.units)))
			for _, u := range slot.units {
				payload.WriteU16(u)
			}
			if c.NullTerminateStringTableStrings {
				payload.WriteU16(0)
			}
		}
		h := resio.Header{
			Type:        litr.Ordinal(ast.RTString),
			Name:        litr.Ordinal(k.index + 1),
			MemoryFlags: uint16(b.memFlags),
			LanguageID:  k.language,
		}
		if b.version != nil {
			h.Version = b.version.Eval().Value
		}
		if b.chars != nil {
			h.Characteristics = b.chars.Eval().Value
		}
		resio.WriteResource(w, h, payload.Bytes())
	}
}

func stringExprUnits(e *ast.Expr) []uint16 {
	if e == nil {
		return nil
	}
	if e.Kind == ast.ExprWideString {
		return e.StringUnits
	}
	units := make([]uint16, len(e.StringBytes))
	for i, x := range e.StringBytes {
		units[i] = uint16(x)
	}
	return units
}
