package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/facilitystats/internal/export"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("sheets:\n  - Summary\n  - Region Analysis\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(c.Sheets))
	}
	if c.Sheets[0] != "Summary" || c.Sheets[1] != "Region Analysis" {
		t.Errorf("unexpected sheets: %v", c.Sheets)
	}
}

func TestLoadFromFile_UnknownSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("sheets:\n  - Summary\n  - Bogus Sheet\n"), 0644)

	var c Config
	err := c.LoadFromFile(path)
	if err == nil {
		t.Fatal("expected error for unknown sheet")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("sheets: []\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Sheets) != len(export.AllSheets) {
		t.Errorf("expected all %d default sheets, got %d: %v",
			len(export.AllSheets), len(c.Sheets), c.Sheets)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	err := c.LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	var c Config
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when --file is missing")
	}

	c.FilePath = "/nonexistent/facilities.csv"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for inaccessible file")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "facilities.csv")
	os.WriteFile(path, []byte("name\nA\n"), 0644)
	c.FilePath = path
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error when DSN is empty")
	}
	c.DSN = "postgresql://localhost/facilities"
	if err := c.ValidateWithDSN(); err != nil {
		t.Fatalf("ValidateWithDSN: %v", err)
	}
}
