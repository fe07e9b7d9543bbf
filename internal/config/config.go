package config

import (
	"os"
	"path/filepath"
	"strings"

	"dircompare/internal/application"
)

const (
	Name        = "dircompare"
	Version     = "1.0.0"
	Description = "Directory comparison."
)

// Config holds the options of a single run. It is built once from the
// command line and never modified afterwards.
type Config struct {
	FirstDir     string
	SecondDir    string
	CopyDir      string
	Copy         bool
	PreserveTree bool
	Debug        bool
	Interactive  bool
}

// Validate checks that both roots were given
func (c Config) Validate() error {
	if err := application.ValidateRequired("first_dir", c.FirstDir); err != nil {
		return err
	}
	return application.ValidateRequired("second_dir", c.SecondDir)
}

// Normalized returns a copy with ~ expanded and every directory cleaned
func (c Config) Normalized() Config {
	c.FirstDir = ExpandPath(c.FirstDir)
	c.SecondDir = ExpandPath(c.SecondDir)
	if c.CopyDir != "" {
		c.CopyDir = ExpandPath(c.CopyDir)
	}
	return c
}

// DryRun reports whether the copy phase only prints intended actions
func (c Config) DryRun() bool {
	return !c.Copy
}

// Warnings lists flag combinations that are accepted but have no effect
func (c Config) Warnings() []string {
	var warnings []string
	if c.Copy && c.CopyDir == "" {
		warnings = append(warnings, "--copy has no effect without --copy-dir")
	}
	if c.PreserveTree && c.CopyDir == "" {
		warnings = append(warnings, "--preserve-tree has no effect without --copy-dir")
	}
	return warnings
}

// ExpandPath expands a leading ~ to the home directory and cleans the result
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(path)
}
