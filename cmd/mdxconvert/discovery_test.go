package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverFilesSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "page.mdx")
	writeFile(t, input, "# Hi\n")

	files, err := discoverFiles(input, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("discoverFiles() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	f := files[0]
	if f.InputPath != input {
		t.Errorf("InputPath = %q, want %q", f.InputPath, input)
	}
	if want := filepath.Join(dir, "out", "page.pdf"); f.PDFPath != want {
		t.Errorf("PDFPath = %q, want %q", f.PDFPath, want)
	}
	if want := filepath.Join(dir, "out", "page.docx"); f.DOCXPath != want {
		t.Errorf("DOCXPath = %q, want %q", f.DOCXPath, want)
	}
}

func TestDiscoverFilesWrongExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "notes.md")
	writeFile(t, input, "# Hi\n")

	_, err := discoverFiles(input, dir)
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("discoverFiles() error = %v, want ErrInvalidExtension", err)
	}
}

func TestDiscoverFilesMissingInput(t *testing.T) {
	t.Parallel()

	_, err := discoverFiles(filepath.Join(t.TempDir(), "nope.mdx"), t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("discoverFiles() error = %v, want os.ErrNotExist", err)
	}
}

func TestDiscoverFilesDirectoryRecursive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mdx"), "# A\n")
	writeFile(t, filepath.Join(dir, "sub", "b.mdx"), "# B\n")
	writeFile(t, filepath.Join(dir, "sub", "deep", "c.MDX"), "# C\n")
	writeFile(t, filepath.Join(dir, "readme.md"), "ignored\n")
	writeFile(t, filepath.Join(dir, "style.css"), "ignored\n")

	files, err := discoverFiles(dir, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("discoverFiles() error: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f.InputPath))
	}
	sort.Strings(names)

	want := []string{"a.mdx", "b.mdx", "c.MDX"}
	if len(names) != len(want) {
		t.Fatalf("discovered %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("discovered %v, want %v", names, want)
			break
		}
	}

	// Nested sources flatten into the output directory.
	for _, f := range files {
		if filepath.Dir(f.PDFPath) != filepath.Join(dir, "out") {
			t.Errorf("PDFPath %q not flattened into output dir", f.PDFPath)
		}
	}
}

func TestDiscoverFilesEmptyDirectory(t *testing.T) {
	t.Parallel()

	files, err := discoverFiles(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("discoverFiles() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}
