package domain

// CreatedDirs records destination directories already announced during a
// dry run. It never reflects the real filesystem.
type CreatedDirs map[string]struct{}

// NewCreatedDirs returns an empty record
func NewCreatedDirs() CreatedDirs {
	return make(CreatedDirs)
}

// Add records dir and reports whether it was not recorded before
func (c CreatedDirs) Add(dir string) bool {
	if _, ok := c[dir]; ok {
		return false
	}
	c[dir] = struct{}{}
	return true
}
