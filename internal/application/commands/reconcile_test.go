package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"dircompare/internal/application"
	"dircompare/internal/domain"
)

func missingFiles(root string, rels ...string) []domain.MissingFile {
	out := make([]domain.MissingFile, len(rels))
	for i, rel := range rels {
		out[i] = domain.MissingFile{Rel: rel, Source: filepath.Join(root, rel)}
	}
	return out
}

func TestReconcileCommand_ReportOnly(t *testing.T) {
	tree := newMemTree()
	reporter := &recordingReporter{}

	cmd := NewReconcileCommand(tree, reporter, "/a", "", true, missingFiles("/a", "x.txt", "sub/y.txt"))
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []string{"missing x.txt", "missing sub/y.txt"}
	if len(reporter.lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, reporter.lines)
	}
	for i := range want {
		if reporter.lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, reporter.lines[i], want[i])
		}
	}
	if result.Reported != 2 || result.Copied != 0 || result.Created != 0 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestReconcileCommand_DryRunAnnouncesEachDirectoryOnce(t *testing.T) {
	tree := newMemTree()
	tree.addFile("/a/x.txt", "x")
	tree.addFile("/a/sub/y.txt", "y")
	tree.addFile("/a/sub/z.txt", "z")
	reporter := &recordingReporter{}

	cmd := NewReconcileCommand(tree, reporter, "/a", "/d", true, missingFiles("/a", "x.txt", "sub/y.txt", "sub/z.txt"))
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []string{
		"missing x.txt",
		"mkdir /d dry=true",
		"copy /a/x.txt -> /d/x.txt dry=true",
		"",
		"missing sub/y.txt",
		"mkdir /d/sub dry=true",
		"copy /a/sub/y.txt -> /d/sub/y.txt dry=true",
		"",
		"missing sub/z.txt",
		"copy /a/sub/z.txt -> /d/sub/z.txt dry=true",
		"",
	}
	if len(reporter.lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(reporter.lines), reporter.lines)
	}
	for i := range want {
		if reporter.lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, reporter.lines[i], want[i])
		}
	}

	if len(tree.mkdirs) != 0 || len(tree.copies) != 0 {
		t.Errorf("dry run touched the tree: mkdirs=%v copies=%v", tree.mkdirs, tree.copies)
	}
	if result.Created != 2 || result.Copied != 3 || !result.DryRun {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestReconcileCommand_DryRunSkipsExistingDirectory(t *testing.T) {
	tree := newMemTree()
	tree.addFile("/a/sub/y.txt", "y")
	tree.addDir("/d/sub")
	reporter := &recordingReporter{}

	cmd := NewReconcileCommand(tree, reporter, "/a", "/d", true, missingFiles("/a", "sub/y.txt"))
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, line := range reporter.lines {
		if contains(line, "mkdir") {
			t.Errorf("unexpected directory notice %q", line)
		}
	}
}

func TestReconcileCommand_CopyMode(t *testing.T) {
	tree := newMemTree()
	tree.addFile("/a/a/b/c.txt", "payload")
	tree.addFile("/a/a/b/d.txt", "second")
	reporter := &recordingReporter{}

	cmd := NewReconcileCommand(tree, reporter, "/a", "/d", false, missingFiles("/a", "a/b/c.txt", "a/b/d.txt"))
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(tree.mkdirs) != 1 || tree.mkdirs[0] != "/d/a/b" {
		t.Errorf("expected a single mkdir of /d/a/b, got %v", tree.mkdirs)
	}
	if tree.files["/d/a/b/c.txt"] != "payload" || tree.files["/d/a/b/d.txt"] != "second" {
		t.Errorf("files not copied: %v", tree.copies)
	}
	if result.Created != 1 || result.Copied != 2 || result.DryRun {
		t.Errorf("unexpected result %+v", result)
	}
	if reporter.lines[1] != "mkdir /d/a/b dry=false" {
		t.Errorf("expected creation notice before copy, got %q", reporter.lines[1])
	}
}

func TestReconcileCommand_CopyFailureStopsRun(t *testing.T) {
	tree := newMemTree()
	tree.addFile("/a/one.txt", "1")
	tree.addFile("/a/two.txt", "2")
	tree.addFile("/a/three.txt", "3")
	tree.addDir("/d")
	tree.failCopy = "/a/two.txt"
	reporter := &recordingReporter{}

	cmd := NewReconcileCommand(tree, reporter, "/a", "/d", false, missingFiles("/a", "one.txt", "two.txt", "three.txt"))
	result, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrFilesystemOperation) {
		t.Fatalf("expected ErrFilesystemOperation, got %v", err)
	}
	if !contains(err.Error(), "two.txt") {
		t.Errorf("expected failing path in error, got %q", err.Error())
	}

	if _, ok := tree.files["/d/one.txt"]; !ok {
		t.Error("file copied before the failure should remain")
	}
	if _, ok := tree.files["/d/three.txt"]; ok {
		t.Error("run should stop at the failing file")
	}
	if result.Copied != 1 {
		t.Errorf("expected 1 copied file, got %d", result.Copied)
	}
}

func TestReconcileCommand_DryRunAndCopyReportSameFiles(t *testing.T) {
	build := func() *memTree {
		tree := newMemTree()
		tree.addFile("/a/x.txt", "x")
		tree.addFile("/a/sub/y.txt", "y")
		return tree
	}
	missing := missingFiles("/a", "x.txt", "sub/y.txt")

	dry := &recordingReporter{}
	if _, err := NewReconcileCommand(build(), dry, "/a", "/d", true, missing).Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	copied := &recordingReporter{}
	if _, err := NewReconcileCommand(build(), copied, "/a", "/d", false, missing).Execute(context.Background()); err != nil {
		t.Fatal(err)
	}

	if countPrefix(dry.lines, "missing") != countPrefix(copied.lines, "missing") {
		t.Error("dry run and copy mode should report the same missing files")
	}
	if countPrefix(dry.lines, "copy") != countPrefix(copied.lines, "copy") {
		t.Error("dry run and copy mode should report the same copies")
	}
}

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if len(l) >= len(prefix) && l[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
