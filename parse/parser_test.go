package parse

import (
	"testing"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/lex"
)

func TestParseExprAddition(t *testing.T) {
	var diags diag.List
	p := New([]byte("1+2"), cpage.NewState(cpage.Windows1252), &diags)
	p.next(lex.Normal)
	e := p.parseExpr(false)
	if e.Kind != ast.ExprBinary || e.Op != ast.OpAdd {
		t.Fatalf("parseExpr(1+2) = %+v, want a binary Add expression", e)
	}
	if got := e.Eval().Value; got != 3 {
		t.Errorf("Eval() = %d, want 3", got)
	}
}

func TestParseRawDataResourceStatement(t *testing.T) {
	var diags diag.List
	root := Parse([]byte("1 RCDATA { 1, 2, 3L }\n"), cpage.NewState(cpage.Windows1252), &diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.All())
	}
	if len(root.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(root.Body))
	}
	stmt := root.Body[0]
	if stmt.Kind != ast.StmtResourceRawData {
		t.Fatalf("Kind = %v, want StmtResourceRawData", stmt.Kind)
	}
	if len(stmt.RawData) != 3 {
		t.Fatalf("len(RawData) = %d, want 3", len(stmt.RawData))
	}
}

func TestParseLanguageStatement(t *testing.T) {
	var diags diag.List
	root := Parse([]byte("LANGUAGE 9, 1\n1 RCDATA {1}\n"), cpage.NewState(cpage.Windows1252), &diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.All())
	}
	if len(root.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2", len(root.Body))
	}
	if root.Body[0].Kind != ast.StmtLanguage {
		t.Fatalf("Body[0].Kind = %v, want StmtLanguage", root.Body[0].Kind)
	}
}

func TestParseCommonAttrsKeywordAppliesOnTopOfTypeDefault(t *testing.T) {
	var diags diag.List
	root := Parse([]byte("1 RCDATA PRELOAD { 1 }\n"), cpage.NewState(cpage.Windows1252), &diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.All())
	}
	stmt := root.Body[0]
	// RCDATA's default is MOVEABLE|SHARED (0x30); PRELOAD (0x40) must OR
	// on top of that default, not replace it.
	want := ast.MemMoveable | ast.MemShared | ast.MemPreload
	if stmt.Attrs.MemFlags != want {
		t.Errorf("Attrs.MemFlags = %#x, want %#x", stmt.Attrs.MemFlags, want)
	}
}

func TestParseTopLevelVersionDefault(t *testing.T) {
	var diags diag.List
	root := Parse([]byte("VERSION 1\n1 RCDATA {1}\n"), cpage.NewState(cpage.Windows1252), &diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.All())
	}
	if root.Body[0].Kind != ast.StmtDefaultAttr || !root.Body[0].DefaultAttrIsVersion {
		t.Fatalf("Body[0] = %+v, want a VERSION default-attr statement", root.Body[0])
	}
}
