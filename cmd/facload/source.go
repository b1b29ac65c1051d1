package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gyeh/facilitystats/internal/normalize"
)

// sampleCSV is a bundled slice of the facility export, used when --file is
// omitted so every command works out of the box.
//
//go:embed sample_facilities.csv
var sampleCSV string

// loadSource returns the source name, CSV text, and content hash for the
// configured input file, falling back to the embedded sample.
func loadSource(filePath string) (name, text, sha string, err error) {
	if filePath == "" {
		return "sample_facilities.csv", sampleCSV, normalize.TextHash(sampleCSV), nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", "", "", fmt.Errorf("read input file: %w", err)
	}
	text = string(data)
	return filepath.Base(filePath), text, normalize.TextHash(text), nil
}
