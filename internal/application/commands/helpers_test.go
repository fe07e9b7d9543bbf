package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dircompare/internal/application"
)

// memTree is an in-memory ports.Tree. Files are listed in insertion order.
type memTree struct {
	files    map[string]string
	order    []string
	dirs     map[string]bool
	failCopy string

	mkdirs []string
	copies []string
}

func newMemTree() *memTree {
	return &memTree{
		files: map[string]string{},
		dirs:  map[string]bool{},
	}
}

func (m *memTree) addDir(dir string) {
	for d := filepath.Clean(dir); ; d = filepath.Dir(d) {
		m.dirs[d] = true
		if d == filepath.Dir(d) {
			return
		}
	}
}

func (m *memTree) addFile(path, content string) {
	path = filepath.Clean(path)
	if _, ok := m.files[path]; !ok {
		m.order = append(m.order, path)
	}
	m.files[path] = content
	m.addDir(filepath.Dir(path))
}

func (m *memTree) ValidateRoot(role, root string) error {
	if !m.dirs[root] {
		return &application.PathNotFoundError{Role: role, Path: root, Reason: "does not exist"}
	}
	return nil
}

func (m *memTree) ListFiles(root string) ([]string, error) {
	var out []string
	prefix := root + string(filepath.Separator)
	for _, p := range m.order {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memTree) Exists(path string) (bool, error) {
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	return m.dirs[path], nil
}

func (m *memTree) MkdirAll(dir string) error {
	m.mkdirs = append(m.mkdirs, dir)
	m.addDir(dir)
	return nil
}

func (m *memTree) CopyFile(src, dst string) error {
	if src == m.failCopy {
		return &application.FilesystemError{Op: "copy", Path: dst, Err: errors.New("disk full")}
	}
	content, ok := m.files[src]
	if !ok {
		return &application.FilesystemError{Op: "open", Path: src, Err: errors.New("no such file")}
	}
	if !m.dirs[filepath.Dir(dst)] {
		return &application.FilesystemError{Op: "create", Path: dst, Err: errors.New("no such directory")}
	}
	m.copies = append(m.copies, dst)
	m.addFile(dst, content)
	return nil
}

// recordingReporter captures reporter calls as printable lines
type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) Missing(rel string) {
	r.lines = append(r.lines, "missing "+rel)
}

func (r *recordingReporter) CreateDir(dir string, dryRun bool) {
	r.lines = append(r.lines, fmt.Sprintf("mkdir %s dry=%v", dir, dryRun))
}

func (r *recordingReporter) CopyFile(src, dst string, dryRun bool) {
	r.lines = append(r.lines, fmt.Sprintf("copy %s -> %s dry=%v", src, dst, dryRun))
}

func (r *recordingReporter) Separator() {
	r.lines = append(r.lines, "")
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
