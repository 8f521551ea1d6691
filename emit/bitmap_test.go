package emit

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/fzipp/rcc/ast"
)

func makeTestBMPFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bmp")
	data := make([]byte, 14+40+4) // file header + BITMAPINFOHEADER + 4 bytes pixel data
	binary.LittleEndian.PutUint32(data[14:], 40)  // biSize
	binary.LittleEndian.PutUint16(data[14+14:], 24) // biBitCount
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmitBitmapStripsFileHeader(t *testing.T) {
	ctx := testContext()
	ctx.SourceDir = filepath.Dir(makeTestBMPFile(t))
	w := testWriter()
	stmt := &ast.Stmt{
		Kind:     ast.StmtResourceExternal,
		ID:       ast.ResourceID{Text: []byte("1")},
		Type:     ast.ResBitmap,
		Filename: narrowStringExpr("test.bmp"),
	}
	if err := EmitBitmap(ctx, w, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dataSize := binary.LittleEndian.Uint32(w.Bytes()[0:4])
	if dataSize != 44 { // 40 (header) + 4 (pixel bytes)
		t.Errorf("data_size = %d, want 44", dataSize)
	}
}

func TestEmitBitmapMissingFileErrors(t *testing.T) {
	ctx := testContext()
	ctx.SourceDir = t.TempDir()
	w := testWriter()
	stmt := &ast.Stmt{
		Kind:     ast.StmtResourceExternal,
		ID:       ast.ResourceID{Text: []byte("1")},
		Type:     ast.ResBitmap,
		Filename: narrowStringExpr("missing.bmp"),
	}
	if err := EmitBitmap(ctx, w, stmt); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
