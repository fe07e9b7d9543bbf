package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"dircompare/internal/domain"
	"dircompare/internal/ports"
)

// ReconcileResult contains the counts of a reconcile run. In a dry run
// Created and Copied count the announced actions.
type ReconcileResult struct {
	Reported int
	Created  int
	Copied   int
	DryRun   bool
}

// ReconcileCommand reports missing files and, with a copy root, copies
// them there mirroring their relative path
type ReconcileCommand struct {
	tree     ports.Tree
	reporter ports.Reporter
	FirstDir string
	CopyDir  string
	DryRun   bool
	Missing  []domain.MissingFile
}

// NewReconcileCommand creates a new ReconcileCommand
func NewReconcileCommand(tree ports.Tree, reporter ports.Reporter, firstDir, copyDir string, dryRun bool, missing []domain.MissingFile) *ReconcileCommand {
	return &ReconcileCommand{
		tree:     tree,
		reporter: reporter,
		FirstDir: firstDir,
		CopyDir:  copyDir,
		DryRun:   dryRun,
		Missing:  missing,
	}
}

// Execute reports and copies every missing file in order. It stops at the
// first filesystem failure; files copied before it stay in place.
func (c *ReconcileCommand) Execute(ctx context.Context) (*ReconcileResult, error) {
	result := &ReconcileResult{DryRun: c.DryRun}
	announced := domain.NewCreatedDirs()

	for _, m := range c.Missing {
		c.reporter.Missing(m.Rel)
		result.Reported++

		if c.CopyDir == "" {
			continue
		}

		src := m.Source
		if src == "" {
			src = filepath.Join(domain.NormalizeRoot(c.FirstDir), m.Rel)
		}
		dst := domain.DestinationFor(c.CopyDir, m.Rel)

		dirExists, err := c.tree.Exists(dst.Dir)
		if err != nil {
			return result, err
		}

		if c.DryRun {
			if !dirExists && announced.Add(dst.Dir) {
				c.reporter.CreateDir(dst.Dir, true)
				result.Created++
			}
			c.reporter.CopyFile(src, dst.File, true)
			result.Copied++
		} else {
			if !dirExists {
				c.reporter.CreateDir(dst.Dir, false)
				if err := c.tree.MkdirAll(dst.Dir); err != nil {
					return result, fmt.Errorf("failed to create directory for %s: %w", m.Rel, err)
				}
				result.Created++
			}
			c.reporter.CopyFile(src, dst.File, false)
			if err := c.tree.CopyFile(src, dst.File); err != nil {
				return result, fmt.Errorf("failed to copy %s: %w", m.Rel, err)
			}
			result.Copied++
		}

		c.reporter.Separator()
	}

	return result, nil
}
