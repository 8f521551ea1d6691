package parse

import (
	"testing"

	"github.com/fzipp/rcc/ast"
)

func TestParseStringTableEntries(t *testing.T) {
	stmt := parseOneStmt(t, `STRINGTABLE
{
    1, "one"
    2 "two"
}
`)
	if stmt.Kind != ast.StmtStringTable {
		t.Fatalf("Kind = %v, want StmtStringTable", stmt.Kind)
	}
	entries := stmt.StringTable.Entries
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].ID.Eval().Value != 1 || entries[1].ID.Eval().Value != 2 {
		t.Errorf("entry IDs = %d, %d, want 1, 2", entries[0].ID.Eval().Value, entries[1].ID.Eval().Value)
	}
}

func TestParseStringTableWithLanguageAttr(t *testing.T) {
	stmt := parseOneStmt(t, "STRINGTABLE LANGUAGE 9, 1\n{\n    1, \"one\"\n}\n")
	if stmt.Attrs.Language == nil {
		t.Fatalf("Attrs.Language not set")
	}
}
