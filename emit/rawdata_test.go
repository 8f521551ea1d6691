package emit

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/litr"
)

func rawDataStmt(id string, items []*ast.Expr) *ast.Stmt {
	return &ast.Stmt{
		Kind:    ast.StmtResourceRawData,
		ID:      ast.ResourceID{Text: []byte(id)},
		Type:    ast.ResRCData,
		RawData: items,
	}
}

func TestEmitRawDataConcatenatesAndPads(t *testing.T) {
	ctx := testContext()
	w := testWriter()
	stmt := rawDataStmt("1", []*ast.Expr{
		{Kind: ast.ExprNumber, Number: litr.Number{Value: 1}},
		{Kind: ast.ExprNumber, Number: litr.Number{Value: 2, IsLong: true}},
	})
	if err := EmitRawData(ctx, w, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Len()%4 != 0 {
		t.Errorf("output length %d not 4-byte aligned", w.Len())
	}
	// data_size field is the first u32 in the header.
	dataSize := binary.LittleEndian.Uint32(w.Bytes()[0:4])
	// 2 bytes for the non-long number plus 4 bytes for the long number.
	if dataSize != 6 {
		t.Errorf("data_size = %d, want 6", dataSize)
	}
}

func TestEmitRawDataStringLiteralBytes(t *testing.T) {
	ctx := testContext()
	w := testWriter()
	stmt := rawDataStmt("1", []*ast.Expr{
		{Kind: ast.ExprNarrowString, StringBytes: []byte("AB")},
	})
	if err := EmitRawData(ctx, w, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dataSize := binary.LittleEndian.Uint32(w.Bytes()[0:4])
	if dataSize != 2 {
		t.Errorf("data_size = %d, want 2", dataSize)
	}
}

func TestEmitExternalStreamsFileContentsVerbatim(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	ctx.SourceDir = dir
	want := []byte("external resource payload")
	if err := os.WriteFile(filepath.Join(dir, "data.bin"), want, 0o644); err != nil {
		t.Fatal(err)
	}

	stmt := &ast.Stmt{
		Kind:     ast.StmtResourceExternal,
		ID:       ast.ResourceID{Text: []byte("1")},
		Type:     ast.ResRCData,
		Filename: &ast.Expr{Kind: ast.ExprNarrowString, StringBytes: []byte("data.bin")},
	}
	w := testWriter()
	if err := EmitExternal(ctx, w, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := w.Bytes()
	dataSize := binary.LittleEndian.Uint32(data[0:4])
	if int(dataSize) != len(want) {
		t.Fatalf("data_size = %d, want %d", dataSize, len(want))
	}
	headerSize := binary.LittleEndian.Uint32(data[4:8])
	payload := data[headerSize : headerSize+dataSize]
	if string(payload) != string(want) {
		t.Errorf("payload = %q, want %q", payload, want)
	}
	if len(data)%4 != 0 {
		t.Errorf("output length %d not 4-byte aligned", len(data))
	}
}
