package parse

import (
	"testing"

	"github.com/fzipp/rcc/ast"
)

func TestParseMenuClassicFlat(t *testing.T) {
	stmt := parseOneStmt(t, `1 MENU
{
    MENUITEM "&Open", 100
    MENUITEM "&Save", 101, GRAYED
    MENUITEM SEPARATOR
}
`)
	if stmt.Kind != ast.StmtMenu {
		t.Fatalf("Kind = %v, want StmtMenu", stmt.Kind)
	}
	m := stmt.Menu
	if len(m.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(m.Items))
	}
	if m.Items[2].IsSeparator != true {
		t.Errorf("Items[2].IsSeparator = false, want true")
	}
	if m.Items[1].Flags&0x0001 == 0 {
		t.Errorf("GRAYED flag not set on Items[1]")
	}
}

func TestParseMenuClassicPopupNesting(t *testing.T) {
	stmt := parseOneStmt(t, `1 MENU
{
    POPUP "&File"
    {
        MENUITEM "&New", 200
        POPUP "&Recent"
        {
            MENUITEM "one.txt", 300
        }
    }
}
`)
	m := stmt.Menu
	if len(m.Items) != 1 || !m.Items[0].IsPopup {
		t.Fatalf("Items = %+v, want one popup", m.Items)
	}
	popup := m.Items[0]
	if len(popup.Children) != 2 {
		t.Fatalf("len(popup.Children) = %d, want 2", len(popup.Children))
	}
	nested := popup.Children[1]
	if !nested.IsPopup || len(nested.Children) != 1 {
		t.Fatalf("nested popup = %+v, want 1 child", nested)
	}
}

func TestParseMenuExPositionalFields(t *testing.T) {
	stmt := parseOneStmt(t, `1 MENUEX
{
    MENUITEM "&Open", 100, 0, 0
    POPUP "&File", 200, 1
    {
        MENUITEM "&New", 300
    }
}
`)
	m := stmt.Menu
	if !m.IsEx {
		t.Fatalf("IsEx = false, want true")
	}
	if m.Items[0].ID == nil || m.Items[0].ID.Eval().Value != 100 {
		t.Errorf("Items[0].ID = %v, want 100", m.Items[0].ID)
	}
	if m.Items[1].Type == nil || m.Items[1].Type.Eval().Value != 1 {
		t.Errorf("Items[1].Type = %v, want 1", m.Items[1].Type)
	}
}

func TestParseMenuEmptyWarns(t *testing.T) {
	stmt := parseOneStmtAllowingWarnings(t, "1 MENU\n{\n}\n")
	if len(stmt.Menu.Items) != 0 {
		t.Fatalf("expected an empty menu")
	}
}
