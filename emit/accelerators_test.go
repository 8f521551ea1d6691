package emit

import (
	"testing"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/diag"
)

func narrowStringExpr(s string) *ast.Expr {
	return &ast.Expr{Kind: ast.ExprNarrowString, StringBytes: []byte(s)}
}

func TestAcceleratorEventCodeControlEscape(t *testing.T) {
	ctx := testContext()
	entry := ast.AcceleratorEntry{Event: narrowStringExpr("^A"), IsString: true}
	got, ok := acceleratorEventCode(ctx, entry)
	if !ok {
		t.Fatalf("acceleratorEventCode ok = false")
	}
	if got != 1 { // 'A' - 0x40 = 1
		t.Errorf("got = %#x, want 1", got)
	}
}

func TestAcceleratorEventCodeCaretCaretIsLiteralCaret(t *testing.T) {
	ctx := testContext()
	entry := ast.AcceleratorEntry{Event: narrowStringExpr("^^"), IsString: true}
	got, ok := acceleratorEventCode(ctx, entry)
	if !ok || got != uint16('^') {
		t.Errorf("got = %#x, ok = %v, want '^'", got, ok)
	}
}

func TestAcceleratorEventCodeRejectsInvalidControlLetter(t *testing.T) {
	ctx := testContext()
	entry := ast.AcceleratorEntry{Event: narrowStringExpr("^1"), IsString: true, Span: diag.Span{}}
	_, ok := acceleratorEventCode(ctx, entry)
	if ok {
		t.Fatalf("expected ok = false for invalid control escape")
	}
	if !ctx.Diags.HasErrors() {
		t.Errorf("expected a diagnostic to be recorded")
	}
}

func TestAcceleratorEventCodeSingleCodepoint(t *testing.T) {
	ctx := testContext()
	entry := ast.AcceleratorEntry{Event: narrowStringExpr("a"), IsString: true, VirtKey: true}
	got, ok := acceleratorEventCode(ctx, entry)
	if !ok || got != uint16('A') {
		t.Errorf("got = %#x, ok = %v, want 'A' (VIRTKEY upper-cases)", got, ok)
	}
}

func TestAcceleratorEventCodeNumeric(t *testing.T) {
	ctx := testContext()
	entry := ast.AcceleratorEntry{Event: &ast.Expr{Kind: ast.ExprNumber, Number: numLit(65)}, IsString: false}
	got, ok := acceleratorEventCode(ctx, entry)
	if !ok || got != 65 {
		t.Errorf("got = %d, ok = %v, want 65", got, ok)
	}
}

func TestAccCodepointToEventSurrogatePair(t *testing.T) {
	// U+1F600 (grinning face) should fold through the surrogate XOR, not
	// pass through unchanged (it exceeds 16 bits).
	got := accCodepointToEvent(0x1F600)
	if int(got) == 0x1F600 {
		t.Errorf("accCodepointToEvent(0x1F600) passed through unchanged")
	}
}
