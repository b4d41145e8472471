package main

import (
	"fmt"
	"path/filepath"

	simplex2docx "github.com/alnah/go-simplex2docx"
	"github.com/alnah/go-simplex2docx/internal/fileutil"
)

// documentExtension is appended to output names.
const documentExtension = ".docx"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the reports directly inside inputDir, sorted by name,
// and pairs each with its document path.
func discoverFiles(inputDir, outputDir, prefix string) ([]FileToConvert, error) {
	paths, err := fileutil.ListFiles(inputDir, simplex2docx.ReportExtension)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputDir, err)
	}

	files := make([]FileToConvert, 0, len(paths))
	for _, p := range paths {
		files = append(files, FileToConvert{
			InputPath:  p,
			OutputPath: resolveOutputPath(p, outputDir, prefix),
		})
	}
	return files, nil
}

// resolveOutputPath returns <outputDir>/<prefix><base>.docx for a report.
func resolveOutputPath(inputPath, outputDir, prefix string) string {
	base := fileutil.TrimExt(filepath.Base(inputPath))
	return filepath.Join(outputDir, prefix+base+documentExtension)
}
