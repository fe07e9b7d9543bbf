package ports

// TreeReader defines the read side of filesystem access used by a comparison
type TreeReader interface {
	// ValidateRoot fails with a PathNotFoundError when root is missing or not a directory
	ValidateRoot(role, root string) error

	// ListFiles returns every non-directory entry below root in walk order
	ListFiles(root string) ([]string, error)

	// Exists reports whether any entry is present at path
	Exists(path string) (bool, error)
}

// TreeWriter defines the mutations performed in copy mode
type TreeWriter interface {
	MkdirAll(dir string) error
	CopyFile(src, dst string) error
}

// Tree combines read and write access
type Tree interface {
	TreeReader
	TreeWriter
}

// Reporter receives the line-oriented notices of a reconcile run
type Reporter interface {
	Missing(rel string)
	CreateDir(dir string, dryRun bool)
	CopyFile(src, dst string, dryRun bool)
	Separator()
}
