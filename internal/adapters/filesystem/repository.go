package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"

	"dircompare/internal/application"
	"dircompare/internal/ports"
)

// Repository implements ports.Tree using the local filesystem
type Repository struct {
	log logrus.FieldLogger
}

// Ensure Repository implements Tree
var _ ports.Tree = (*Repository)(nil)

// NewRepository creates a new filesystem repository
func NewRepository(log logrus.FieldLogger) *Repository {
	return &Repository{log: log}
}

// ValidateRoot checks that root exists and is a directory
func (r *Repository) ValidateRoot(role, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &application.PathNotFoundError{Role: role, Path: root, Reason: "does not exist"}
		}
		return &application.PathNotFoundError{Role: role, Path: root, Reason: "cannot be accessed: " + err.Error()}
	}
	if !info.IsDir() {
		return &application.PathNotFoundError{Role: role, Path: root, Reason: "is not a directory"}
	}
	return nil
}

// ListFiles walks root and returns every file in walk order.
// Symlinked directories are not descended into; symlinks to anything
// else are listed like files.
func (r *Repository) ListFiles(root string) ([]string, error) {
	var files []string

	// WalkDir does not descend into a symlinked root unless it ends in a separator
	walkRoot := root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &application.FilesystemError{Op: "walk", Path: path, Err: err}
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				r.log.WithField("path", path).Debug("skipping symlinked directory")
				return nil
			}
		} else if !d.Type().IsRegular() {
			r.log.WithField("path", path).Debug("skipping irregular file")
			return nil
		}

		r.log.Debugf("File '%s' discovered", path)
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Exists reports whether anything is present at path. A path running
// through a regular file counts as absent.
func (r *Repository) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, &application.FilesystemError{Op: "stat", Path: path, Err: err}
	}
}

// MkdirAll creates dir and any missing parents
func (r *Repository) MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &application.FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// CopyFile copies the bytes of src to dst, truncating dst if present.
// Copying a file onto itself is refused.
func (r *Repository) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &application.FilesystemError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	// Opening dst with O_TRUNC would empty src before it is read
	srcInfo, err := in.Stat()
	if err != nil {
		return &application.FilesystemError{Op: "stat", Path: src, Err: err}
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return &application.FilesystemError{Op: "copy", Path: dst, Err: fmt.Errorf("%s and %s are the same file", src, dst)}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &application.FilesystemError{Op: "create", Path: dst, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return &application.FilesystemError{Op: "copy", Path: dst, Err: fmt.Errorf("from %s: %w", src, err)}
	}
	if err := out.Close(); err != nil {
		return &application.FilesystemError{Op: "close", Path: dst, Err: err}
	}
	return nil
}
