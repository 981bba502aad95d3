package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Within returns path relative to root, failing if path lies outside root.
func Within(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%s is outside %s", path, root)
	}
	return rel, nil
}

// DirSlash returns a workspace-relative directory path in slash form with a
// trailing slash, the shape gitignore matching expects for directories.
func DirSlash(rel string) string {
	return strings.TrimSuffix(filepath.ToSlash(rel), "/") + "/"
}

// ConfigPath resolves p against root unless it is already absolute.
func ConfigPath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// VolumeRoot returns the filesystem root holding path: "/" on Unix, the
// volume name plus a separator on Windows.
func VolumeRoot(path string) string {
	return filepath.VolumeName(path) + string(filepath.Separator)
}
