package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteVideo creates a file under root at the given relative path, filled
// with size bytes of a repeating pattern, and pins its mtime so ordering
// assertions are deterministic.
func WriteVideo(t testing.TB, root, rel string, size int64, modTime time.Time) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	if size <= 0 {
		size = 1
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte('a' + i%26)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
	return path
}
