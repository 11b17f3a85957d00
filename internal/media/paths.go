package media

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var multiSlash = regexp.MustCompile(`/+`)

// NormalizeRelPath canonicalizes a slash-separated relative path: backslashes
// become forward slashes, repeated slashes collapse, and leading slashes are
// stripped. The result is suitable for use as an index key.
func NormalizeRelPath(rel string) string {
	rel = strings.ReplaceAll(rel, "\\", "/")
	rel = multiSlash.ReplaceAllString(rel, "/")
	return strings.TrimLeft(rel, "/")
}

// FolderOf returns the normalized parent folder of a relative path, with ""
// meaning the media root itself.
func FolderOf(rel string) string {
	folder := path.Dir(NormalizeRelPath(rel))
	if folder == "." || folder == "/" {
		return ""
	}
	return folder
}

// ResolveWithin joins a normalized relative path onto the root and verifies
// the result stays inside it. Traversal attempts return an error.
func ResolveWithin(root, rel string) (string, error) {
	target := filepath.Clean(filepath.Join(root, filepath.FromSlash(NormalizeRelPath(rel))))
	back, err := filepath.Rel(root, target)
	if err != nil {
		return "", fmt.Errorf("resolve %q under root: %w", rel, err)
	}
	if back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the media root", rel)
	}
	return target, nil
}

// HasExtension reports whether the filename carries one of the recognized
// extensions. Comparison is case-insensitive.
func HasExtension(filename string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
