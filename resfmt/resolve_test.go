package resfmt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFilePrefersSourceDir(t *testing.T) {
	srcDir := t.TempDir()
	incDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "icon.ico"), []byte("src"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(incDir, "icon.ico"), []byte("inc"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ResolveFile(srcDir, []string{incDir}, "icon.ico")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(srcDir, "icon.ico") {
		t.Errorf("ResolveFile = %q, want the source-dir copy", got)
	}
}

func TestResolveFileFallsBackToIncludeDirs(t *testing.T) {
	srcDir := t.TempDir()
	incDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(incDir, "icon.ico"), []byte("inc"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ResolveFile(srcDir, []string{incDir}, "icon.ico")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(incDir, "icon.ico") {
		t.Errorf("ResolveFile = %q, want the include-dir copy", got)
	}
}

func TestResolveFileMissingIsError(t *testing.T) {
	srcDir := t.TempDir()
	if _, err := ResolveFile(srcDir, nil, "missing.ico"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestReadFileReturnsContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	want := []byte{1, 2, 3, 4}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("ReadFile = %v, want %v", got, want)
	}
}

func TestStreamFileSizeMatchesLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	want := []byte{1, 2, 3, 4, 5}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}
	size, err := StreamFileSize(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != int64(len(want)) {
		t.Errorf("StreamFileSize = %d, want %d", size, len(want))
	}
}

func TestCopyFileToStreamsFullContents(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "src.bin")
	want := make([]byte, 10000)
	for i := range want {
		want[i] = byte(i)
	}
	if err := os.WriteFile(srcPath, want, 0o644); err != nil {
		t.Fatal(err)
	}
	dstPath := filepath.Join(dir, "dst.bin")
	dst, err := os.Create(dstPath)
	if err != nil {
		t.Fatal(err)
	}
	n, err := CopyFileTo(dst, srcPath)
	dst.Close()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != int64(len(want)) {
		t.Errorf("CopyFileTo returned %d, want %d", n, len(want))
	}
	got, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Errorf("copied contents mismatch")
	}
}
