package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"dircompare/internal/application"
	"dircompare/internal/domain"
	"dircompare/internal/ports"
)

// DiffResult contains the outcome of comparing two trees
type DiffResult struct {
	FirstDir  string
	SecondDir string
	Scanned   int
	Missing   []domain.MissingFile
}

// Paths returns the missing relative paths in walk order
func (r *DiffResult) Paths() []string {
	paths := make([]string, len(r.Missing))
	for i, m := range r.Missing {
		paths[i] = m.Rel
	}
	return paths
}

// DiffCommand lists files under FirstDir with no entry at the same
// relative path under SecondDir
type DiffCommand struct {
	tree      ports.TreeReader
	log       logrus.FieldLogger
	FirstDir  string
	SecondDir string
}

// NewDiffCommand creates a new DiffCommand
func NewDiffCommand(tree ports.TreeReader, log logrus.FieldLogger, firstDir, secondDir string) *DiffCommand {
	return &DiffCommand{
		tree:      tree,
		log:       log,
		FirstDir:  firstDir,
		SecondDir: secondDir,
	}
}

// Validate checks if both roots were given
func (c *DiffCommand) Validate() error {
	if err := application.ValidateRequired("first_dir", c.FirstDir); err != nil {
		return err
	}
	return application.ValidateRequired("second_dir", c.SecondDir)
}

// Execute runs the comparison
func (c *DiffCommand) Execute(ctx context.Context) (*DiffResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	first := domain.NormalizeRoot(c.FirstDir)
	second := domain.NormalizeRoot(c.SecondDir)

	if err := c.tree.ValidateRoot("first directory", first); err != nil {
		return nil, err
	}
	if err := c.tree.ValidateRoot("second directory", second); err != nil {
		return nil, err
	}

	files, err := c.tree.ListFiles(first)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", first, err)
	}

	result := &DiffResult{
		FirstDir:  first,
		SecondDir: second,
		Scanned:   len(files),
	}

	for _, file := range files {
		rel, err := domain.RelativePath(first, file)
		if err != nil {
			return nil, err
		}
		c.log.Debugf("File '%s', relative path '%s'", file, rel)

		target := filepath.Join(second, rel)
		exists, err := c.tree.Exists(target)
		if err != nil {
			return nil, err
		}
		c.log.WithField("present", exists).Debugf("Checked '%s'", target)
		if exists {
			continue
		}

		result.Missing = append(result.Missing, domain.MissingFile{Rel: rel, Source: file})
	}

	c.log.WithFields(logrus.Fields{
		"scanned": result.Scanned,
		"missing": len(result.Missing),
	}).Debug("comparison finished")

	return result, nil
}
