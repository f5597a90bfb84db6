package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// sourceExtension is the recognized MDX file extension.
const sourceExtension = ".mdx"

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension = errors.New("file must have .mdx extension")
	ErrNoInput          = errors.New("no input specified")
)

// FileToConvert represents a single file to process. Output paths are
// derived from the source base name inside the output directory.
type FileToConvert struct {
	InputPath string
	PDFPath   string
	DOCXPath  string
}

// discoverFiles finds all MDX files to convert. A file path must have
// the .mdx extension; a directory is walked recursively. Outputs are
// flattened into outputDir regardless of source nesting.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{newFileToConvert(inputPath, outputDir)}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), sourceExtension) {
			return nil
		}
		files = append(files, newFileToConvert(path, outputDir))
		return nil
	})

	return files, err
}

// newFileToConvert resolves output paths for a source file.
func newFileToConvert(inputPath, outputDir string) FileToConvert {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return FileToConvert{
		InputPath: inputPath,
		PDFPath:   filepath.Join(outputDir, base+".pdf"),
		DOCXPath:  filepath.Join(outputDir, base+".docx"),
	}
}

// validateExtension checks that the file has the .mdx extension.
func validateExtension(path string) error {
	if !strings.EqualFold(filepath.Ext(path), sourceExtension) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
