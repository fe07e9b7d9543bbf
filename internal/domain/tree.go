package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NormalizeRoot cleans a root path so that "a/b" and "a/b/" resolve identically
func NormalizeRoot(root string) string {
	return filepath.Clean(root)
}

// RelativePath strips root and the following separator from path.
// The result satisfies filepath.Join(root, rel) == filepath.Clean(path).
func RelativePath(root, path string) (string, error) {
	root = NormalizeRoot(root)
	rel, err := filepath.Rel(root, filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve %s against %s: %w", path, root, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not below root %s", path, root)
	}
	return rel, nil
}

// MissingFile is a file found under the source root with no entry at the
// same relative path under the target root
type MissingFile struct {
	Rel    string
	Source string
}

// Destination describes where a missing file lands below the copy root
type Destination struct {
	File string
	Dir  string
}

// DestinationFor mirrors rel below copyRoot
func DestinationFor(copyRoot, rel string) Destination {
	file := filepath.Join(NormalizeRoot(copyRoot), rel)
	return Destination{
		File: file,
		Dir:  filepath.Dir(file),
	}
}
