package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"dircompare/internal/adapters/tui/styles"
	"dircompare/internal/ports"
)

// Reporter prints reconcile notices one per line. Colors are only emitted
// when w is a terminal.
type Reporter struct {
	w io.Writer

	missing lipgloss.Style
	create  lipgloss.Style
	copy    lipgloss.Style
	planned lipgloss.Style
}

// Ensure Reporter implements ports.Reporter
var _ ports.Reporter = (*Reporter)(nil)

// NewReporter creates a reporter bound to w
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:       w,
		missing: r.NewStyle().Foreground(styles.Warning).Bold(true),
		create:  r.NewStyle().Foreground(styles.Secondary),
		copy:    r.NewStyle().Foreground(styles.Primary),
		planned: r.NewStyle().Foreground(styles.Muted).Italic(true),
	}
}

// Missing prints the missing-file notice
func (r *Reporter) Missing(rel string) {
	fmt.Fprintf(r.w, "%s '%s'\n", r.missing.Render("Missing file:"), rel)
}

// CreateDir prints a directory creation notice
func (r *Reporter) CreateDir(dir string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(r.w, "%s '%s'\n", r.planned.Render("Would create directory"), dir)
		return
	}
	fmt.Fprintf(r.w, "%s '%s' ...\n", r.create.Render("Creating directory"), dir)
}

// CopyFile prints a file copy notice
func (r *Reporter) CopyFile(src, dst string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(r.w, "%s '%s' to '%s'\n", r.planned.Render("Would copy file"), src, dst)
		return
	}
	fmt.Fprintf(r.w, "%s '%s' to '%s' ...\n", r.copy.Render("Copying file"), src, dst)
}

// Separator prints the blank line that closes each missing file's block
func (r *Reporter) Separator() {
	fmt.Fprintln(r.w)
}
