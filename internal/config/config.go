package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/facilitystats/internal/export"
)

// Config holds all runtime configuration for a facload run.
type Config struct {
	DSN        string
	FilePath   string
	LogFormat  string // "text" or "json"
	OutPath    string
	Format     string // export format: "xlsx" or "parquet"
	ListenAddr string
	Force      bool
	KeepBatch  bool
	Sheets     []string `yaml:"sheets"` // subset of export.AllSheets to render
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Sheets []string `yaml:"sheets"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Sheets = yc.Sheets
	return c.validateSheets()
}

// validateSheets checks that every entry in Sheets is a known workbook
// sheet. If Sheets is empty, it defaults to all of them.
func (c *Config) validateSheets() error {
	if len(c.Sheets) == 0 {
		c.Sheets = append([]string(nil), export.AllSheets...)
		return nil
	}
	for _, name := range c.Sheets {
		if !export.ValidSheet(name) {
			return fmt.Errorf("unknown sheet %q in config", name)
		}
	}
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
