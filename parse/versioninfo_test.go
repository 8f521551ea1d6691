package parse

import (
	"testing"

	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
)

func TestParseVersionInfoFixedFields(t *testing.T) {
	stmt := parseOneStmt(t, `1 VERSIONINFO
FILEVERSION 1, 2, 3, 4
PRODUCTVERSION 1, 0, 0, 0
FILEFLAGSMASK 0x3FL
FILEFLAGS 0
FILEOS 0x40004L
FILETYPE 1
FILESUBTYPE 0
{
}
`)
	vi := stmt.VersionInfo
	if vi.FileVersionMS[0].Eval().Value != 1 || vi.FileVersionLS[1].Eval().Value != 4 {
		t.Errorf("FileVersion = %+v", vi)
	}
	if vi.FileType.Eval().Value != 1 {
		t.Errorf("FileType = %v, want 1", vi.FileType)
	}
}

func TestParseVersionInfoNestedBlocksAndValues(t *testing.T) {
	stmt := parseOneStmt(t, `1 VERSIONINFO
{
    BLOCK "StringFileInfo"
    {
        BLOCK "040904B0"
        {
            VALUE "CompanyName", "Acme Corp"
            VALUE "FileVersion", "1.0.0.0"
        }
    }
    BLOCK "VarFileInfo"
    {
        VALUE "Translation", 0x409, 1200
    }
}
`)
	vi := stmt.VersionInfo
	if len(vi.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, want 2", len(vi.Blocks))
	}
	sfi := vi.Blocks[0]
	if string(sfi.Key) != "StringFileInfo" {
		t.Errorf("Blocks[0].Key = %q, want StringFileInfo", sfi.Key)
	}
	lang := sfi.Children[0]
	if len(lang.Values) != 2 {
		t.Fatalf("len(lang.Values) = %d, want 2", len(lang.Values))
	}
	if string(lang.Values[0].Key) != "CompanyName" {
		t.Errorf("Values[0].Key = %q, want CompanyName", lang.Values[0].Key)
	}
	translation := vi.Blocks[1].Values[0]
	if len(translation.Numbers) != 2 {
		t.Errorf("Translation Numbers = %+v, want 2 entries", translation.Numbers)
	}
}

func TestParseVersionInfoTopLevelValue(t *testing.T) {
	stmt := parseOneStmt(t, `1 VERSIONINFO
{
    VALUE "Foo", 1
}
`)
	vi := stmt.VersionInfo
	if len(vi.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(vi.Blocks))
	}
	b := vi.Blocks[0]
	if b.Key != nil || len(b.Children) != 0 || len(b.Values) != 1 {
		t.Errorf("top-level VALUE block = %+v, want Key=nil, no children, 1 value", b)
	}
}

func TestParseVersionInfoMissingCommaBeforeStringWarns(t *testing.T) {
	var diags diag.List
	root := Parse([]byte("1 VERSIONINFO\n{\n    VALUE \"Foo\" \"bar\"\n}\n"), cpage.NewState(cpage.Windows1252), &diags)
	found := false
	for _, d := range diags.All() {
		if d.Reason == diag.ReasonVersionInfoMissingCommaBeforeString {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a ReasonVersionInfoMissingCommaBeforeString warning, got %v", diags.All())
	}
	_ = root
}

func TestParseVersionInfoMixedValueLengthsWarns(t *testing.T) {
	var diags diag.List
	root := Parse([]byte("1 VERSIONINFO\n{\n    VALUE \"Foo\", \"bar\", 1\n}\n"), cpage.NewState(cpage.Windows1252), &diags)
	found := false
	for _, d := range diags.All() {
		if d.Reason == diag.ReasonVersionInfoMixedValueLengths {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a ReasonVersionInfoMixedValueLengths warning, got %v", diags.All())
	}
	_ = root
}
