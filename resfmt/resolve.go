package resfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResolveFile implements spec.md §4.6: look up filename relative to the
// .rc source's directory first, then in each configured include directory
// in order. A missing file is a hard error.
func ResolveFile(sourceDir string, includeDirs []string, filename string) (string, error) {
	candidates := make([]string, 0, 1+len(includeDirs))
	candidates = append(candidates, filepath.Join(sourceDir, filename))
	for _, dir := range includeDirs {
		candidates = append(candidates, filepath.Join(dir, filename))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("resfmt: file not found: %s", filename)
}

// ReadFile reads the resolved file's full contents. Large resource files
// should instead be streamed via StreamFile, per spec.md §5's "bounded
// buffer (suggested 4 KiB)" guidance; ReadFile is for formats (icon/cursor
// directories, bitmap headers) that must be parsed as a whole.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resfmt: %w", err)
	}
	return data, nil
}

// StreamFileSize returns path's size without reading its contents, for
// callers that want to write a resource header's data_size before
// streaming the body (spec.md §5).
func StreamFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("resfmt: %w", err)
	}
	return info.Size(), nil
}

// CopyFileTo streams path's contents to dst in bounded chunks, per
// spec.md §5: "large resource files are streamed to the output through a
// bounded buffer (suggested 4 KiB) rather than loaded into memory."
func CopyFileTo(dst io.Writer, path string) (int64, error) {
	src, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("resfmt: %w", err)
	}
	defer src.Close()
	buf := make([]byte, 4096)
	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return total, err
		}
	}
	return total, nil
}
